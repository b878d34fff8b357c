package cli

import (
	"PartitionSplitter/split"
	"log"

	"github.com/spf13/cobra"
)

func CommandSplit() *cobra.Command {

	// Setup flags
	var cfg split.Config
	var lenient bool

	cmdSplit := &cobra.Command{
		Use:   "split -p <partitions directory> -v <validation directory> -t <test directory> [--val-ratio <ratio>] [--test-ratio <ratio>] [-r <random seed>] [-m <manifest file>]",
		Short: "Splits a directory of graph partitions into train, validation and test sets",
		Long: "Splits a directory of graph partitions into train, validation and test sets \n" +
			"The <partitions directory> is expected to contain every 'graph_partitions_<N>.bin' file before the run. " +
			"Files picked for validation and test are moved to the <validation directory> and <test directory>, " +
			"which are created if they do not exist. The remaining files stay in place and form the training set. \n" +
			"The optional ratios are fractions between 0 and 1 and default to 0.1 each. " +
			"Directories, ratios and seed can also be set through the environment variables " +
			envPartitionsPath + ", " + envValidationPath + ", " + envTestPath + ", " +
			envValRatio + ", " + envTestRatio + " and " + envSeed + ".",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {

			errE := resolveConfig(cmd, &cfg)
			if errE != nil {
				return errE
			}
			cfg.StrictRatios = !lenient

			log.Println("Processing partitions directory: ", cfg.PartitionsPath)
			log.Println("Validation directory: ", cfg.ValidationPath)
			log.Println("Test directory: ", cfg.TestPath)
			log.Println("Validation ratio: ", cfg.ValRatio, " test ratio: ", cfg.TestRatio, " seed: ", cfg.Seed)

			_, errE = split.Split(cfg, cmd.OutOrStdout())
			if errE != nil {
				return errE
			}
			return nil
		},
	}

	cmdSplit.Flags().StringVarP(&cfg.PartitionsPath, flagPartitions, "p", "", "Path to the directory holding all partitions (the training set after the split)")
	cmdSplit.Flags().StringVarP(&cfg.ValidationPath, flagValidation, "v", "", "Path to the validation directory")
	cmdSplit.Flags().StringVarP(&cfg.TestPath, flagTest, "t", "", "Path to the test directory")
	cmdSplit.Flags().Float64Var(&cfg.ValRatio, flagValRatio, split.DefaultValRatio, "Fraction of the partitions moved to the validation set")
	cmdSplit.Flags().Float64Var(&cfg.TestRatio, flagTestRatio, split.DefaultTestRatio, "Fraction of the partitions moved to the test set")
	cmdSplit.Flags().Int64VarP(&cfg.Seed, flagSeed, "r", split.DefaultSeed, "Random seed for shuffling the partitions")
	cmdSplit.Flags().StringVarP(&cfg.ManifestPath, "manifest", "m", "", "Optional path of a tsv file recording the group of every partition")
	cmdSplit.Flags().BoolVar(&lenient, "lenient", false, "Apply ratios outside [0,1] or summing above 1 instead of rejecting them")

	for _, name := range []string{flagPartitions, flagValidation, flagTest} {
		err := cmdSplit.MarkFlagDirname(name)
		if err != nil {
			log.Panicln(err)
		}
	}
	err := cmdSplit.MarkFlagFilename("manifest", "tsv")
	if err != nil {
		log.Panicln(err)
	}

	return cmdSplit
}

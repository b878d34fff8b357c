package cli

import (
	"PartitionSplitter/split"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const (
	flagPartitions = "partitions"
	flagValidation = "validation"
	flagTest       = "test"
	flagValRatio   = "val-ratio"
	flagTestRatio  = "test-ratio"
	flagSeed       = "seed"

	envPartitionsPath = "PARTITIONS_PATH"
	envValidationPath = "VALIDATION_PARTITIONS_PATH"
	envTestPath       = "TEST_PARTITIONS_PATH"
	envValRatio       = "VAL_RATIO"
	envTestRatio      = "TEST_RATIO"
	envSeed           = "SPLIT_SEED"
)

// resolveConfig fills every flag the user did not set from its environment
// variable, if that variable is present. Flags always win.
func resolveConfig(cmd *cobra.Command, cfg *split.Config) errors.E {
	flags := cmd.Flags()

	lookup := func(flag, env string) (string, bool) {
		if flags.Changed(flag) {
			return "", false
		}
		return os.LookupEnv(env)
	}

	for _, s := range []struct {
		flag, env string
		target    *string
	}{
		{flagPartitions, envPartitionsPath, &cfg.PartitionsPath},
		{flagValidation, envValidationPath, &cfg.ValidationPath},
		{flagTest, envTestPath, &cfg.TestPath},
	} {
		if value, ok := lookup(s.flag, s.env); ok {
			*s.target = value
		}
	}

	for _, f := range []struct {
		flag, env string
		target    *float64
	}{
		{flagValRatio, envValRatio, &cfg.ValRatio},
		{flagTestRatio, envTestRatio, &cfg.TestRatio},
	} {
		value, ok := lookup(f.flag, f.env)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			errE := errors.WithMessage(err, "parsing environment variable")
			errors.Details(errE)["variable"] = f.env
			return errE
		}
		*f.target = parsed
	}

	if value, ok := lookup(flagSeed, envSeed); ok {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			errE := errors.WithMessage(err, "parsing environment variable")
			errors.Details(errE)["variable"] = envSeed
			return errE
		}
		cfg.Seed = parsed
	}

	return nil
}

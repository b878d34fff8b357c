package main

import (
	"PartitionSplitter/cli"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "partitionsplitter",
		Short:         "Prepares graph partition datasets for training",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cli.CommandSplit())

	if err := rootCmd.Execute(); err != nil {
		// %+v includes the stack trace and details of tozd errors
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/internal"
)

var log = internal.GetLogger()

var (
	cfgFile     string
	showVersion bool
	dumpConfig  bool
	pointers    []string
)

var cmd = &cobra.Command{
	Use:   "pdffacts",
	Short: "pdffacts answers natural-language pointers against uploaded documents",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for the pdffacts configuration file",
	Example: "pdffacts json-schema > pdffacts_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze <file>",
	Short:   "Analyzes a local document and prints the results as JSON",
	Example: `pdffacts analyze contract.pdf --pointer "Who signed?" --pointer "Total contract value?"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// keep stdout for the JSON result
		log.SetOutput(os.Stderr)
		return analyzeFile(cmd.Context(), cmd.OutOrStdout(), args[0], pointers)
	},
}

func init() {
	cmd.AddCommand(dumpJsonSchemaCmd)
	cmd.AddCommand(analyzeCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")

	analyzeCmd.Flags().
		StringArrayVarP(&pointers, "pointer", "p", nil, "pointer to answer, repeatable (default pointers if unset)")
}

// Execute executes the root cobra command.
func Execute() {
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}

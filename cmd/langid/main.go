/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Language Identifier.
Provides comprehensive command-line options, configuration management, and
beautiful user interface for identifying the language of text input.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-langid/cmd/langid/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Detector configuration
	modelsDir      string
	languages      []string
	preload        bool
	minInputLength int

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64

	// Output configuration
	noColor bool

	// Batch configuration
	batchFile   string
	batchReport string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "langid",
		Short: "Akaylee LangID - Layered natural language identification engine",
		Long: `Akaylee LangID identifies the natural language of text from a fixed set of
supported languages. Detection layers cheap script and distinctive-character
rules over a character n-gram probabilistic scorer, so unambiguous input is
decided instantly and everything else is ranked by summed log-likelihoods
against per-language frequency models.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Add detector flags
	rootCmd.PersistentFlags().StringVar(&modelsDir, "models-dir", "./models", "Directory containing language model resources")
	rootCmd.PersistentFlags().StringSliceVar(&languages, "languages", []string{}, "ISO 639-1 codes to enable (empty = all supported)")
	rootCmd.PersistentFlags().BoolVar(&preload, "preload", false, "Decode all models at startup instead of lazily")
	rootCmd.PersistentFlags().IntVar(&minInputLength, "min-input-length", 0, "Minimum letter count before probabilistic scoring")

	// Add output flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("models_dir", rootCmd.PersistentFlags().Lookup("models-dir"))
	viper.BindPFlag("languages", rootCmd.PersistentFlags().Lookup("languages"))
	viper.BindPFlag("preload", rootCmd.PersistentFlags().Lookup("preload"))
	viper.BindPFlag("min_input_length", rootCmd.PersistentFlags().Lookup("min-input-length"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Add detect command
	detectCmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Identify the language of text",
		Long: `Identify the language of the given text. Arguments are joined with spaces;
with no arguments the text is read from standard input.`,
		RunE: commands.RunDetect,
	}

	// Add batch command
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Identify the language of every line of a file",
		Long: `Run detection over every line of the input file (or standard input) and
print one result per line with a summary at the end.`,
		RunE: commands.RunBatch,
	}
	batchCmd.Flags().StringVar(&batchFile, "file", "", "Input file (default: standard input)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "Write a JSON report of per-line results to this path")
	viper.BindPFlag("batch_file", batchCmd.Flags().Lookup("file"))
	viper.BindPFlag("batch_report", batchCmd.Flags().Lookup("report"))

	// Add page command
	pageCmd := &cobra.Command{
		Use:   "page [url|file]",
		Short: "Identify the language of an HTML page",
		Long: `Fetch an HTML page by URL or read it from a file, extract its visible text,
and identify its language.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunPage,
	}

	// Add languages command
	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		RunE:  commands.RunLanguages,
	}

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(languagesCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

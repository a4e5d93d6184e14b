/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee LangID commands. Provides common
configuration loading, logging setup, detector construction, and colored result
output used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kleascm/akaylee-langid/pkg/core"
	"github.com/kleascm/akaylee-langid/pkg/interfaces"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from viper settings. Logs go to
// a timestamped file under the log directory so detection results stay clean
// on standard output.
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    !viper.GetBool("no_color"),
		Console:   false,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// createDetectorConfig builds the detector configuration from viper settings
func createDetectorConfig() *interfaces.DetectorConfig {
	return &interfaces.DetectorConfig{
		Languages:      viper.GetStringSlice("languages"),
		ModelsDir:      viper.GetString("models_dir"),
		Preload:        viper.GetBool("preload"),
		MinInputLength: viper.GetInt("min_input_length"),
	}
}

// buildDetector assembles a detector from the loaded configuration
func buildDetector(logger *logging.Logger) (*core.Detector, error) {
	detector, err := core.NewBuilder().
		WithConfig(createDetectorConfig()).
		WithLogger(logger.GetLogger()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build detector: %w", err)
	}
	return detector, nil
}

// printResult renders one detection result
func printResult(text string, lang language.Language) {
	if viper.GetBool("no_color") {
		color.NoColor = true
	}

	if lang == language.Unknown {
		color.New(color.FgYellow).Printf("unknown")
		fmt.Printf("\t%s\n", truncate(text, 60))
		return
	}

	color.New(color.FgGreen, color.Bold).Printf("%s", lang)
	color.New(color.FgCyan).Printf(" [%s]", lang.IsoCode())
	fmt.Printf("\t%s\n", truncate(text, 60))
}

// truncate shortens s for display
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

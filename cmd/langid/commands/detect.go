/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Detect command implementation for the Akaylee LangID CLI. Identifies
the language of text passed as arguments or read from standard input.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// RunDetect executes the detect command
func RunDetect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	detector, err := buildDetector(logger)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		text = string(data)
	}

	result, err := detector.Detect(text)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	printResult(text, result)
	return nil
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch command implementation for the Akaylee LangID CLI. Runs
detection over every line of a file or standard input, prints a per-line
result plus a summary, and optionally writes a JSON report.
*/

package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-langid/pkg/interfaces"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunBatch executes the batch command
func RunBatch(cmd *cobra.Command, args []string) error {
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

	texts, err := readBatchInput()
	if err != nil {
		return err
	}

	batchID := uuid.New().String()
	start := time.Now()

	results := make([]interfaces.DetectionResult, 0, len(texts))
	unknown := 0
	for _, text := range texts {
		itemStart := time.Now()
		result, err := detector.Detect(text)
		if err != nil {
			return fmt.Errorf("batch detection failed: %w", err)
		}
		if result == language.Unknown {
			unknown++
		}

		printResult(text, result)
		results = append(results, interfaces.DetectionResult{
			Text:     text,
			Language: result.String(),
			Duration: time.Since(itemStart),
		})
	}

	logger.LogBatch(batchID, len(results), unknown, time.Since(start), nil)

	if reportPath := viper.GetString("batch_report"); reportPath != "" {
		if err := writeBatchReport(reportPath, results); err != nil {
			return err
		}
	}

	fmt.Printf("\n%d texts, %d identified, %d unknown (%s)\n",
		len(results), len(results)-unknown, unknown, time.Since(start).Round(time.Millisecond))
	return nil
}

// readBatchInput collects the lines of the batch file or standard input
func readBatchInput() ([]string, error) {
	var input io.Reader = os.Stdin
	if file := viper.GetString("batch_file"); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()
		input = f
	}

	var texts []string
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return texts, nil
}

// writeBatchReport writes the per-item results as a JSON report
func writeBatchReport(path string, results []interfaces.DetectionResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write batch report: %w", err)
	}
	return nil
}

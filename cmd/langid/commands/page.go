/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: page.go
Description: Page command implementation for the Akaylee LangID CLI. Fetches an
HTML page by URL or reads it from a file, extracts the visible text, and
identifies its language.
*/

package commands

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

// pageFetchTimeout bounds the HTTP fetch of a remote page
const pageFetchTimeout = 30 * time.Second

// RunPage executes the page command
func RunPage(cmd *cobra.Command, args []string) error {
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

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	text := extractVisibleText(doc)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("page contains no visible text")
	}

	result, err := detector.Detect(text)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	printResult(text, result)
	return nil
}

// loadDocument parses an HTML document from a URL or a local file
func loadDocument(source string) (*goquery.Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: pageFetchTimeout}
		resp, err := client.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch page: status %d", resp.StatusCode)
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open page file: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// extractVisibleText collects the rendered text of a page, skipping script
// and style content
func extractVisibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	var builder strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		builder.WriteString(sel.Text())
		builder.WriteString("\n")
	})

	// Pages without an explicit body still carry text at the document root
	if builder.Len() == 0 {
		builder.WriteString(doc.Text())
	}

	return builder.String()
}

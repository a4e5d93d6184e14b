/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: languages.go
Description: Languages command implementation for the Akaylee LangID CLI. Lists
every supported language with its ISO 639-1 code and script.
*/

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLanguages executes the languages command
func RunLanguages(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	if viper.GetBool("no_color") {
		color.NoColor = true
	}

	for _, lang := range language.All() {
		color.New(color.FgGreen, color.Bold).Printf("%-12s", lang)
		color.New(color.FgCyan).Printf(" %s", lang.IsoCode())
		for _, alphabet := range lang.Alphabets() {
			fmt.Printf("  %s", alphabet)
		}
		fmt.Println()
	}

	fmt.Printf("\n%d languages supported\n", len(language.All()))
	return nil
}

/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nkrane/internal/detector"
)

var detectInput string

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of a text",
	Long: `Detect the language of the given text (or of a file with --input) and
print its ISO 639-1 code.

Example:
  nkrane detect "Bonjour tout le monde"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case detectInput != "":
			data, err := os.ReadFile(detectInput)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		case len(args) == 1:
			text = args[0]
		default:
			return fmt.Errorf("provide text as an argument or with --input")
		}

		code, confidence, ok := detector.New().Confidence(text)
		if !ok {
			return fmt.Errorf("could not determine the language")
		}

		fmt.Printf("%s (confidence %.2f)\n", code, confidence)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectInput, "input", "i", "", "Input file to analyse")
}

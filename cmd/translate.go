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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nkrane/internal/orchestrator"
	"nkrane/internal/terminology"
	"nkrane/internal/validator"
)

var (
	translateSource   string
	translateTarget   string
	translateDomain   string
	translateInput    string
	translateOutput   string
	translateValidate bool
	translateVerbose  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text with terminology control",
	Long: `Translate text, protecting domain terminology through the engine.

With --domain, glossary terms for the (domain, target language) pair are
replaced with numeric markers before the engine call and restored to their
curated translations afterwards. Without --domain the text is translated
as-is.

Text is taken from the argument, or from a file with --input.

Examples:
  nkrane translate "I grow cocoa" -t twi -d agric
  nkrane translate -i report.txt -o report_twi.txt -t twi -d agric --engine mymemory`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case translateInput != "":
			data, err := os.ReadFile(translateInput)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		case len(args) == 1:
			text = args[0]
		default:
			return fmt.Errorf("provide text as an argument or with --input")
		}

		engine, err := buildEngine(viper.GetString("engine"))
		if err != nil {
			return err
		}

		// The catalog is only needed for domain-tagged requests; a plain
		// translation must work without a glossary directory.
		var store *terminology.Store
		if translateDomain != "" {
			store, err = openStore()
			if err != nil {
				return err
			}
		}

		orch := orchestrator.New(store, engine)
		result, err := orch.Translate(context.Background(), orchestrator.Request{
			Text:       text,
			SourceLang: translateSource,
			TargetLang: translateTarget,
			Domain:     translateDomain,
		})
		if err != nil {
			var engErr *orchestrator.EngineError
			if errors.As(err, &engErr) {
				return fmt.Errorf("translation failed: %w", err)
			}
			return err
		}

		if translateDomain != "" {
			fmt.Fprintf(os.Stderr, "Protected %d terms\n", result.TermsReplaced)
			if n := len(result.LostMarkers); n > 0 {
				fmt.Fprintf(os.Stderr, "Warning: engine dropped %d markers (%s); those terms were not restored\n",
					n, strings.Join(result.LostMarkers, " "))
			}
		}
		if translateVerbose {
			fmt.Fprintf(os.Stderr, "Preprocessed: %s\n", result.Preprocessed)
			fmt.Fprintf(os.Stderr, "Engine output: %s\n", result.EngineText)
		}

		if translateValidate {
			if err := validator.New().Check(result.Text, translateTarget); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: output language check failed: %v\n", err)
			}
		}

		if translateOutput != "" {
			if dir := filepath.Dir(translateOutput); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(translateOutput, []byte(result.Text), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Successfully translated %s to %s\n", result.SourceLang, result.TargetLang)
			return nil
		}

		fmt.Println(result.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateSource, "source", "s", "en", "Source language code (\"auto\" to detect)")
	translateCmd.Flags().StringVarP(&translateTarget, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().StringVarP(&translateDomain, "domain", "d", "", "Glossary domain (e.g. agric); empty disables terminology control")
	translateCmd.Flags().StringVarP(&translateInput, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "Output file (default stdout)")
	translateCmd.Flags().BoolVar(&translateValidate, "validate", false, "Warn when the output does not look like the target language")
	translateCmd.Flags().BoolVarP(&translateVerbose, "verbose", "v", false, "Print intermediate pipeline stages to stderr")

	translateCmd.MarkFlagRequired("target")
}

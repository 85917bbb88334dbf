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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nkrane/internal/orchestrator"
	"nkrane/internal/terminology"
)

var (
	batchSource string
	batchTarget string
	batchDomain string
	batchInput  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Translate a file line by line",
	Long: `Translate each line of the input file independently.

Lines are translated in order. A line that fails keeps its source text in
the output and the failure is reported on stderr; the batch never aborts.
Empty lines are passed through without an engine call.

Example:
  nkrane batch -i sentences.txt -o sentences_twi.txt -t twi -d agric`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchInput == batchOutput {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		data, err := os.ReadFile(batchInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

		var texts []string
		var indices []int
		for i, line := range lines {
			if strings.TrimSpace(line) != "" {
				texts = append(texts, line)
				indices = append(indices, i)
			}
		}

		engine, err := buildEngine(viper.GetString("engine"))
		if err != nil {
			return err
		}

		var store *terminology.Store
		if batchDomain != "" {
			store, err = openStore()
			if err != nil {
				return err
			}
		}

		orch := orchestrator.New(store, engine)
		items := orch.TranslateBatch(context.Background(), texts, batchSource, batchTarget, batchDomain)

		out := make([]string, len(lines))
		copy(out, lines)
		failed := 0
		for i, item := range items {
			if item.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "line %d: %v\n", indices[i]+1, item.Err)
				continue
			}
			out[indices[i]] = item.Result.Text
		}

		if dir := filepath.Dir(batchOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(batchOutput, []byte(strings.Join(out, "\n")+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Translated %d/%d lines\n", len(items)-failed, len(items))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchSource, "source", "s", "en", "Source language code")
	batchCmd.Flags().StringVarP(&batchTarget, "target", "t", "", "Target language code (required)")
	batchCmd.Flags().StringVarP(&batchDomain, "domain", "d", "", "Glossary domain; empty disables terminology control")
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input file, one text per line (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output file (required)")

	batchCmd.MarkFlagRequired("target")
	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}

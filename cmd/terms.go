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
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nkrane/internal/terminology"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Inspect and extend the terminology glossaries",
	Long: `List available domains, languages and (domain, language) pairs, show a
glossary's terms, and add new entries.

Glossaries ensure that domain-specific terms are always translated to their
curated target-language form instead of whatever the engine guesses.`,
}

var termsDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List available glossary domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		for _, d := range store.Domains() {
			fmt.Println(d)
		}
		return nil
	},
}

var termsLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List available target languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		for _, l := range store.Languages() {
			fmt.Println(l)
		}
		return nil
	},
}

var termsPairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List available (domain, language) pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		pairs := store.Pairs()
		if len(pairs) == 0 {
			fmt.Println("No glossaries loaded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tLANGUAGE\tTERMS")
		for _, p := range pairs {
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.Domain, p.Language, len(store.TermsFor(p.Domain, p.Language)))
		}
		return w.Flush()
	},
}

var termsListCmd = &cobra.Command{
	Use:   "list <domain> <language>",
	Short: "Show the glossary for a (domain, language) pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		domain, language := args[0], args[1]
		if !store.HasPair(domain, language) {
			return fmt.Errorf("no glossary for domain %q and language %q", domain, language)
		}

		table := store.TermsFor(domain, language)
		terms := make([]terminology.Term, 0, len(table))
		for _, t := range table {
			terms = append(terms, t)
		}
		sort.Slice(terms, func(i, j int) bool { return terms[i].ID < terms[j].ID })

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTERM\tTRANSLATION")
		for _, t := range terms {
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Term, t.Translation)
		}
		return w.Flush()
	},
}

var termsAddCmd = &cobra.Command{
	Use:   "add <domain> <language> <term> <translation>",
	Short: "Add a glossary entry and write the glossary file back",
	Long: `Add a term to the (domain, language) glossary. The id is assigned
automatically, continuing from the glossary's highest id. The glossary CSV
file is rewritten; a new file is created when the pair did not exist yet.

Example:
  nkrane terms add agric twi "cocoa" "kookoo"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		domain, language := args[0], args[1]
		added := store.AddTerms(domain, language, []terminology.NewTerm{
			{Term: args[2], Translation: args[3]},
		})
		if err := store.Save(domain, language); err != nil {
			return fmt.Errorf("failed to save glossary: %w", err)
		}

		t := added[0]
		fmt.Printf("Added: [%s/%s] #%d %q → %q\n", domain, language, t.ID, t.Term, t.Translation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)

	termsCmd.AddCommand(termsDomainsCmd)
	termsCmd.AddCommand(termsLanguagesCmd)
	termsCmd.AddCommand(termsPairsCmd)
	termsCmd.AddCommand(termsListCmd)
	termsCmd.AddCommand(termsAddCmd)
}

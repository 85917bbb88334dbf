// Package placeholder protects glossary terms during machine translation by
// replacing them with numeric markers (<7>, <12>, …) that a translation
// engine passes through untouched. After translation, Restore substitutes
// each marker with the term's curated translation.
package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"nkrane/internal/terminology"
)

// marker reference in engine output
var reMarker = regexp.MustCompile(`<(\d+)>`)

// Token returns the marker that stands in for the term with the given id.
// The marker alphabet (digits between angle brackets) is disjoint from
// natural-language glossary terms, so a marker can never be re-matched as a
// term on a later substitution pass.
func Token(id int) string {
	return fmt.Sprintf("<%d>", id)
}

// Mapping relates the markers inserted by Protect to their terms. It lives
// for a single translate call: produced by Protect, consumed by Restore,
// never shared across requests.
type Mapping map[string]terminology.Term

// Protect replaces every case-insensitive whole-word occurrence of a
// table's terms in text with its marker and records the marker→term pair.
// Terms are substituted longest first so compound terms ("cocoa pod") win
// over their own fragments ("cocoa"); ties break lexicographically so runs
// are deterministic. The table is not mutated. An empty table yields the
// text unchanged and an empty mapping.
func Protect(text string, table terminology.Table) (string, Mapping) {
	terms := make([]terminology.Term, 0, len(table))
	for _, t := range table {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i].Term) != len(terms[j].Term) {
			return len(terms[i].Term) > len(terms[j].Term)
		}
		return terms[i].Term < terms[j].Term
	})

	mapping := make(Mapping)
	for _, term := range terms {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term.Term) + `\b`)
		marker := Token(term.ID)

		matched := false
		text = re.ReplaceAllStringFunc(text, func(string) string {
			matched = true
			return marker
		})
		if matched {
			mapping[marker] = term
		}
	}

	return text, mapping
}

// Restore substitutes each marker in text with its term's curated
// translation using literal replacement. Markers absent from text are
// skipped; Restore never fails.
func Restore(text string, mapping Mapping) string {
	for marker, term := range mapping {
		text = strings.ReplaceAll(text, marker, term.Translation)
	}
	return text
}

// Missing returns the markers from mapping that no longer appear in text,
// sorted by term id. A non-empty result means the engine dropped or
// corrupted markers and the corresponding terms could not be restored.
func Missing(text string, mapping Mapping) []string {
	var missing []string
	for marker := range mapping {
		if !strings.Contains(text, marker) {
			missing = append(missing, marker)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return mapping[missing[i]].ID < mapping[missing[j]].ID
	})
	return missing
}

// InstructionHint returns a short sentence to append to an LLM prompt so the
// model knows to leave markers intact.
func InstructionHint() string {
	return "Preserve all <n> numeric markers exactly as they appear; do not translate, move, or remove them."
}

// ContainsMarker reports whether text carries at least one marker.
func ContainsMarker(text string) bool {
	return reMarker.MatchString(text)
}

// Package terminology loads and indexes domain glossaries.
//
// A glossary is a flat CSV table named <domain>_terms_<language>.csv with
// id, term and translation columns, one file per (domain, language) pair.
// The catalog is built once at construction and is safe for concurrent
// lookups; AddTerms is the only mutator and takes the write lock.
package terminology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// ErrDirectoryNotFound is returned (wrapped) by NewStore when the glossary
// directory does not exist.
var ErrDirectoryNotFound = errors.New("terminology directory not found")

// Term is a single glossary entry. The Term field is the case-folded,
// trimmed match key; Translation keeps its original casing.
type Term struct {
	ID          int
	Term        string
	Translation string
	Domain      string
	Language    string
}

// Pair identifies one glossary: a domain translated into a target language.
type Pair struct {
	Domain   string
	Language string
}

// Table maps folded term strings to their entries for one (domain, language)
// pair.
type Table map[string]Term

// NewTerm is the input shape for AddTerms; ids are assigned by the store.
type NewTerm struct {
	Term        string
	Translation string
}

// glossary files: <domain>_terms_<language>.csv
var fileNamePattern = regexp.MustCompile(`^(.+)_terms_(.+)\.csv$`)

var caseFolder = cases.Fold()

// Key returns the case-folded, trimmed form of term used as a Table key.
func Key(term string) string {
	return caseFolder.String(strings.TrimSpace(term))
}

// Store is the in-memory glossary catalog.
type Store struct {
	dir string

	mu     sync.RWMutex
	tables map[Pair]Table
}

// NewStore scans dir for glossary files and builds the catalog. Files that
// fail to parse or lack the required columns are skipped with a logged
// diagnostic; only a missing directory is fatal (the error matches
// ErrDirectoryNotFound via errors.Is). Running against an absent directory
// would make every later domain-tagged request fail with a less actionable
// error, so the path problem is surfaced here instead.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat terminology directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	s := &Store{dir: dir, tables: make(map[Pair]Table)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminology directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := fileNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		domain, language := m[1], m[2]

		table, err := loadTable(filepath.Join(dir, entry.Name()), domain, language)
		if err != nil {
			log.Printf("terminology: skipping %s: %v", entry.Name(), err)
			continue
		}
		s.tables[Pair{Domain: domain, Language: language}] = table
	}

	return s, nil
}

// loadTable parses one glossary CSV. The header row is required; column
// order is free and extra columns are ignored. Rows with an unparsable id
// or an empty term are skipped with a diagnostic. When the same folded term
// appears twice, the later row wins.
func loadTable(path, domain, language string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "term", "translation"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	table := make(Table)
	name := filepath.Base(path)
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if len(record) <= col["id"] || len(record) <= col["term"] || len(record) <= col["translation"] {
			log.Printf("terminology: %s line %d: too few columns, skipping row", name, line)
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[col["id"]]))
		if err != nil {
			log.Printf("terminology: %s line %d: bad id %q, skipping row", name, line, record[col["id"]])
			continue
		}

		key := Key(record[col["term"]])
		if key == "" {
			log.Printf("terminology: %s line %d: empty term, skipping row", name, line)
			continue
		}

		table[key] = Term{
			ID:          id,
			Term:        key,
			Translation: strings.TrimSpace(record[col["translation"]]),
			Domain:      domain,
			Language:    language,
		}
	}

	return table, nil
}

// TermsFor returns a copy of the table for (domain, language), or an empty
// table when the pair is unknown. It never fails; use HasPair to tell an
// empty glossary from an absent one.
func (s *Store) TermsFor(domain, language string) Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table := s.tables[Pair{Domain: domain, Language: language}]
	out := make(Table, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// HasPair reports whether a glossary (possibly empty) exists for the pair.
func (s *Store) HasPair(domain, language string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tables[Pair{Domain: domain, Language: language}]
	return ok
}

// Domains returns the sorted, deduplicated domains in the catalog.
func (s *Store) Domains() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var domains []string
	for p := range s.tables {
		if !seen[p.Domain] {
			seen[p.Domain] = true
			domains = append(domains, p.Domain)
		}
	}
	sort.Strings(domains)
	return domains
}

// Languages returns the sorted, deduplicated target languages in the catalog.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var languages []string
	for p := range s.tables {
		if !seen[p.Language] {
			seen[p.Language] = true
			languages = append(languages, p.Language)
		}
	}
	sort.Strings(languages)
	return languages
}

// Pairs returns every (domain, language) pair in the catalog, sorted by
// domain then language.
func (s *Store) Pairs() []Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]Pair, 0, len(s.tables))
	for p := range s.tables {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Domain != pairs[j].Domain {
			return pairs[i].Domain < pairs[j].Domain
		}
		return pairs[i].Language < pairs[j].Language
	})
	return pairs
}

// AddTerms appends entries to the (domain, language) glossary, creating it
// if absent. Ids continue from the table's current maximum (starting at 1),
// incrementing per entry in input order. An entry whose folded term already
// exists overwrites the previous one. The added terms are returned in input
// order.
func (s *Store) AddTerms(domain, language string, entries []NewTerm) []Term {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair := Pair{Domain: domain, Language: language}
	table, ok := s.tables[pair]
	if !ok {
		table = make(Table)
		s.tables[pair] = table
	}

	next := 0
	for _, t := range table {
		if t.ID > next {
			next = t.ID
		}
	}

	added := make([]Term, 0, len(entries))
	for _, e := range entries {
		next++
		t := Term{
			ID:          next,
			Term:        Key(e.Term),
			Translation: strings.TrimSpace(e.Translation),
			Domain:      domain,
			Language:    language,
		}
		table[t.Term] = t
		added = append(added, t)
	}
	return added
}

// Save writes the (domain, language) glossary back to its CSV file in the
// store directory, rows sorted by id. It fails when the pair is unknown.
func (s *Store) Save(domain, language string) error {
	s.mu.RLock()
	table, ok := s.tables[Pair{Domain: domain, Language: language}]
	if !ok {
		s.mu.RUnlock()
		return fmt.Errorf("no glossary for domain %q and language %q", domain, language)
	}
	terms := make([]Term, 0, len(table))
	for _, t := range table {
		terms = append(terms, t)
	}
	s.mu.RUnlock()

	sort.Slice(terms, func(i, j int) bool { return terms[i].ID < terms[j].ID })

	path := filepath.Join(s.dir, fmt.Sprintf("%s_terms_%s.csv", domain, language))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "term", "translation"}); err != nil {
		return err
	}
	for _, t := range terms {
		if err := w.Write([]string{strconv.Itoa(t.ID), t.Term, t.Translation}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

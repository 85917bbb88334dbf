package terminology

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeGlossary(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\n7,cocoa,kookoo\n9,cocoa pod,kookoo aba\n")
	writeGlossary(t, dir, "science_terms_ewe.csv",
		"id,term,translation\n1,atom,atomu\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return s
}

func TestNewStore_MissingDirectory(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestNewStore_EmptyDirectory(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pairs := s.Pairs(); len(pairs) != 0 {
		t.Errorf("expected no pairs, got %v", pairs)
	}
}

func TestNewStore_LoadsTables(t *testing.T) {
	s := newTestStore(t)

	table := s.TermsFor("agric", "twi")
	if len(table) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(table))
	}

	term, ok := table["cocoa"]
	if !ok {
		t.Fatal("expected term \"cocoa\" in table")
	}
	if term.ID != 7 {
		t.Errorf("expected id 7, got %d", term.ID)
	}
	if term.Translation != "kookoo" {
		t.Errorf("expected translation \"kookoo\", got %q", term.Translation)
	}
	if term.Domain != "agric" || term.Language != "twi" {
		t.Errorf("unexpected domain/language: %s/%s", term.Domain, term.Language)
	}
}

func TestNewStore_FoldsAndTrimsTerms(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\n1,  Cocoa Pod ,  kookoo aba \n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	term, ok := s.TermsFor("agric", "twi")["cocoa pod"]
	if !ok {
		t.Fatal("expected folded key \"cocoa pod\"")
	}
	if term.Translation != "kookoo aba" {
		t.Errorf("expected trimmed translation, got %q", term.Translation)
	}
}

func TestNewStore_TrimsHeaderNames(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		" id , term , translation \n1,cocoa,kookoo\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.TermsFor("agric", "twi")["cocoa"]; !ok {
		t.Error("expected term loaded despite padded header names")
	}
}

func TestNewStore_SkipsFileMissingColumns(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\n7,cocoa,kookoo\n")
	writeGlossary(t, dir, "health_terms_twi.csv",
		"id,term\n1,fever\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("expected load to continue past malformed file, got %v", err)
	}
	if s.HasPair("health", "twi") {
		t.Error("malformed glossary should not be loaded")
	}
	if !s.HasPair("agric", "twi") {
		t.Error("valid glossary should still be loaded")
	}
}

func TestNewStore_SkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\nnot-a-number,maize,aburo\n7,cocoa,kookoo\n8,,empty\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := s.TermsFor("agric", "twi")
	if len(table) != 1 {
		t.Fatalf("expected 1 term after skipping bad rows, got %d", len(table))
	}
	if _, ok := table["cocoa"]; !ok {
		t.Error("expected valid row to survive")
	}
}

func TestNewStore_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\n7,cocoa,kookoo\n")
	writeGlossary(t, dir, "notes.txt", "not a glossary")
	writeGlossary(t, dir, "terms.csv", "id,term,translation\n1,x,y\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(s.Pairs()); got != 1 {
		t.Errorf("expected 1 pair, got %d: %v", got, s.Pairs())
	}
}

func TestNewStore_LastWriteWinsOnDuplicateTerm(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation\n1,cocoa,old\n2,cocoa,new\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	term := s.TermsFor("agric", "twi")["cocoa"]
	if term.Translation != "new" || term.ID != 2 {
		t.Errorf("expected later row to win, got id %d translation %q", term.ID, term.Translation)
	}
}

func TestNewStore_ExtraColumnsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "agric_terms_twi.csv",
		"id,term,translation,notes\n7,cocoa,kookoo,a cash crop\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.TermsFor("agric", "twi")["cocoa"]; !ok {
		t.Error("expected term loaded despite extra column")
	}
}

func TestTermsFor_AbsentPairIsEmptyNotNil(t *testing.T) {
	s := newTestStore(t)

	table := s.TermsFor("nope", "fr")
	if table == nil {
		t.Fatal("expected non-nil table")
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d terms", len(table))
	}
}

func TestTermsFor_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)

	table := s.TermsFor("agric", "twi")
	delete(table, "cocoa")

	if _, ok := s.TermsFor("agric", "twi")["cocoa"]; !ok {
		t.Error("mutating the returned table must not affect the catalog")
	}
}

func TestQueries_SortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeGlossary(t, dir, "science_terms_twi.csv", "id,term,translation\n1,atom,atom\n")
	writeGlossary(t, dir, "agric_terms_twi.csv", "id,term,translation\n1,cocoa,kookoo\n")
	writeGlossary(t, dir, "agric_terms_ewe.csv", "id,term,translation\n1,cocoa,koko\n")

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := s.Domains(), []string{"agric", "science"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Domains() = %v, want %v", got, want)
	}
	if got, want := s.Languages(), []string{"ewe", "twi"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
	want := []Pair{
		{Domain: "agric", Language: "ewe"},
		{Domain: "agric", Language: "twi"},
		{Domain: "science", Language: "twi"},
	}
	if got := s.Pairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
}

func TestAddTerms_StartsAtOneOnEmptyBucket(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added := s.AddTerms("agric", "twi", []NewTerm{
		{Term: "Cocoa", Translation: "kookoo"},
		{Term: "maize", Translation: "aburo"},
	})

	if len(added) != 2 {
		t.Fatalf("expected 2 added terms, got %d", len(added))
	}
	if added[0].ID != 1 || added[1].ID != 2 {
		t.Errorf("expected ids 1 and 2 in input order, got %d and %d", added[0].ID, added[1].ID)
	}
	if added[0].Term != "cocoa" {
		t.Errorf("expected folded term key, got %q", added[0].Term)
	}
	if !s.HasPair("agric", "twi") {
		t.Error("expected pair to be created")
	}
}

func TestAddTerms_ContinuesFromMaxID(t *testing.T) {
	s := newTestStore(t)

	added := s.AddTerms("agric", "twi", []NewTerm{{Term: "maize", Translation: "aburo"}})
	if added[0].ID != 10 {
		t.Errorf("expected id 10 (max 9 + 1), got %d", added[0].ID)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.AddTerms("agric", "twi", []NewTerm{
		{Term: "cocoa", Translation: "kookoo"},
		{Term: "maize", Translation: "aburo"},
	})
	if err := s.Save("agric", "twi"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	table := reopened.TermsFor("agric", "twi")
	if len(table) != 2 {
		t.Fatalf("expected 2 terms after reload, got %d", len(table))
	}
	if table["maize"].ID != 2 {
		t.Errorf("expected id 2 for maize, got %d", table["maize"].ID)
	}
}

func TestSave_UnknownPair(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("nope", "fr"); err == nil {
		t.Error("expected error for unknown pair")
	}
}

package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const testCSVHeader = "category,key_words,word1,word2,word3,word4,word5,difficulty\n"

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzles.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func mustZone(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		t.Fatalf("failed to load reference zone: %v", err)
	}
	return zone
}

// TestLoadPuzzleStore checks a valid table parses fully
func TestLoadPuzzleStore(t *testing.T) {
	path := writeTestCSV(t, testCSVHeader+
		"Felines,cat; cats ;,Whiskers,Purr,Litter,Tabby,Siamese,55\n"+
		"Citrus Fruits,citrus;citrus fruit,Lemon,Lime,Grapefruit,Tangerine,Yuzu,58\n")

	store, err := LoadPuzzleStore(path)
	if err != nil {
		t.Fatalf("LoadPuzzleStore returned error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	rec := store.Records[0]
	if rec.Category != "Felines" {
		t.Errorf("Category = %q, want Felines", rec.Category)
	}
	if !reflect.DeepEqual(rec.Keywords, []string{"cat", "cats"}) {
		t.Errorf("Keywords = %v, want normalized without empties", rec.Keywords)
	}
	if len(rec.Clues) != ClueCount {
		t.Errorf("Clues has %d entries, want %d", len(rec.Clues), ClueCount)
	}
	if rec.SuccessRate != 55 {
		t.Errorf("SuccessRate = %v, want 55", rec.SuccessRate)
	}
}

// TestLoadPuzzleStoreRejectsMalformed checks fail-fast on bad tables
func TestLoadPuzzleStoreRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "category,keywords,a,b,c,d,e,difficulty\nX,x,1,2,3,4,5,10\n"},
		{"no data rows", testCSVHeader},
		{"missing clue", testCSVHeader + "Felines,cat,Whiskers,,Litter,Tabby,Siamese,55\n"},
		{"missing column", testCSVHeader + "Felines,cat,Whiskers,Purr,Litter,Tabby,55\n"},
		{"empty category", testCSVHeader + ",cat,Whiskers,Purr,Litter,Tabby,Siamese,55\n"},
		{"empty keywords", testCSVHeader + "Felines,; ;,Whiskers,Purr,Litter,Tabby,Siamese,55\n"},
		{"bad difficulty", testCSVHeader + "Felines,cat,Whiskers,Purr,Litter,Tabby,Siamese,often\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestCSV(t, tt.content)
			if _, err := LoadPuzzleStore(path); !errors.Is(err, ErrBadPuzzleData) {
				t.Errorf("LoadPuzzleStore error = %v, want ErrBadPuzzleData", err)
			}
		})
	}
}

// TestParseKeywords checks keyword normalization
func TestParseKeywords(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"cat;cats", []string{"cat", "cats"}},
		{" Cat ; CATS ", []string{"cat", "cats"}},
		{"cat;;", []string{"cat"}},
		{"board game", []string{"board game"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := parseKeywords(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("parseKeywords(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseKeywords(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}

func storeOfSize(n int) *PuzzleStore {
	records := make([]PuzzleRecord, n)
	for i := range records {
		records[i] = PuzzleRecord{
			Category:    "Category",
			Keywords:    []string{"keyword"},
			Clues:       []string{"A", "B", "C", "D", "E"},
			SuccessRate: 50,
		}
	}
	return &PuzzleStore{Records: records, Source: "test"}
}

// TestSelectPracticeBounds checks 1-based practice addressing
func TestSelectPracticeBounds(t *testing.T) {
	store := storeOfSize(10)

	if _, err := store.SelectPractice(0); !errors.Is(err, ErrPuzzleNotFound) {
		t.Errorf("SelectPractice(0) error = %v, want ErrPuzzleNotFound", err)
	}
	if _, err := store.SelectPractice(11); !errors.Is(err, ErrPuzzleNotFound) {
		t.Errorf("SelectPractice(11) error = %v, want ErrPuzzleNotFound", err)
	}
	if _, err := store.SelectPractice(1); err != nil {
		t.Errorf("SelectPractice(1) error = %v, want nil", err)
	}
	if _, err := store.SelectPractice(10); err != nil {
		t.Errorf("SelectPractice(10) error = %v, want nil", err)
	}
}

// TestListPracticeIDs checks the full 1..n enumeration
func TestListPracticeIDs(t *testing.T) {
	store := storeOfSize(3)
	if got := store.ListPracticeIDs(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("ListPracticeIDs() = %v, want [1 2 3]", got)
	}
}

// TestRandomPracticeID checks the random pick stays in range
func TestRandomPracticeID(t *testing.T) {
	store := storeOfSize(5)
	for i := 0; i < 20; i++ {
		id := store.RandomPracticeID()
		if id < 1 || id > 5 {
			t.Fatalf("RandomPracticeID() = %d, out of range 1..5", id)
		}
	}
}

// TestSelectDailyDeterministic checks instants in the same reference-zone
// calendar day always pick the same row, regardless of UTC date.
func TestSelectDailyDeterministic(t *testing.T) {
	zone := mustZone(t)
	store := storeOfSize(366)

	// All three are January 2nd in Los Angeles; the last is already
	// January 3rd in UTC.
	instants := []time.Time{
		time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 6, 0, 0, 0, time.UTC),
	}

	for _, instant := range instants {
		_, ordinal, err := store.SelectDaily(instant, zone)
		if err != nil {
			t.Fatalf("SelectDaily(%v) returned error: %v", instant, err)
		}
		if ordinal != 2 {
			t.Errorf("SelectDaily(%v) ordinal = %d, want 2", instant, ordinal)
		}
	}
}

// TestSelectDailyOutOfRange checks exhausted tables fail cleanly
func TestSelectDailyOutOfRange(t *testing.T) {
	zone := mustZone(t)
	store := storeOfSize(3)

	instant := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	if _, _, err := store.SelectDaily(instant, zone); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SelectDaily on exhausted table error = %v, want ErrOutOfRange", err)
	}
}

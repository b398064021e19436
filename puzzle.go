package main

import (
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// PuzzleRecord is one row of a puzzle table.
type PuzzleRecord struct {
	Category    string   `json:"category"`    // the hidden answer
	Keywords    []string `json:"keywords"`    // normalized accepted answers
	Clues       []string `json:"clues"`       // five clue words, in reveal order
	SuccessRate float64  `json:"successRate"` // historical solve percentage, display only
}

// PuzzleStore holds every record of one puzzle table in row order.
type PuzzleStore struct {
	Records []PuzzleRecord
	Source  string
}

var puzzleColumns = []string{"category", "key_words", "word1", "word2", "word3", "word4", "word5", "difficulty"}

// LoadPuzzleStore reads and validates a puzzle CSV. Any malformed row
// fails the whole load so a bad table is caught at startup rather than
// mid-session.
func LoadPuzzleStore(path string) (*PuzzleStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(puzzleColumns)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadPuzzleData, path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrBadPuzzleData, path)
	}

	header := lo.Map(rows[0], func(col string, _ int) string {
		return strings.ToLower(strings.TrimSpace(col))
	})
	if !slices.Equal(header, puzzleColumns) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", ErrBadPuzzleData, path, header)
	}

	records := make([]PuzzleRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parsePuzzleRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}

	return &PuzzleStore{Records: records, Source: path}, nil
}

func parsePuzzleRow(row []string) (PuzzleRecord, error) {
	category := strings.TrimSpace(row[0])
	if category == "" {
		return PuzzleRecord{}, fmt.Errorf("%w: empty category", ErrBadPuzzleData)
	}

	keywords := parseKeywords(row[1])
	if len(keywords) == 0 {
		return PuzzleRecord{}, fmt.Errorf("%w: no keywords for %q", ErrBadPuzzleData, category)
	}

	clues := make([]string, 0, ClueCount)
	for _, clue := range row[2 : 2+ClueCount] {
		clue = strings.TrimSpace(clue)
		if clue == "" {
			return PuzzleRecord{}, fmt.Errorf("%w: missing clue for %q", ErrBadPuzzleData, category)
		}
		clues = append(clues, clue)
	}

	difficulty, err := strconv.ParseFloat(strings.TrimSpace(row[7]), 64)
	if err != nil {
		return PuzzleRecord{}, fmt.Errorf("%w: bad difficulty for %q: %v", ErrBadPuzzleData, category, err)
	}

	return PuzzleRecord{
		Category:    category,
		Keywords:    keywords,
		Clues:       clues,
		SuccessRate: difficulty,
	}, nil
}

// parseKeywords splits the semicolon-delimited key_words column into
// normalized (trimmed, lowercased) match keywords.
func parseKeywords(raw string) []string {
	trimmed := lo.Map(strings.Split(raw, ";"), func(p string, _ int) string {
		return strings.ToLower(strings.TrimSpace(p))
	})
	return lo.Filter(trimmed, func(p string, _ int) bool { return p != "" })
}

// Len returns the number of records in the store.
func (s *PuzzleStore) Len() int {
	return len(s.Records)
}

// SelectDaily maps the current instant to today's puzzle. It returns
// the record together with the 1-based day ordinal used as the puzzle
// number. Deterministic within one reference-zone calendar day.
func (s *PuzzleStore) SelectDaily(now time.Time, zone *time.Location) (PuzzleRecord, int, error) {
	ordinal := dayOfYear(now, zone)
	if ordinal > len(s.Records) {
		return PuzzleRecord{}, 0, fmt.Errorf("%w: day %d, only %d puzzles in %s", ErrOutOfRange, ordinal, len(s.Records), s.Source)
	}
	return s.Records[ordinal-1], ordinal, nil
}

// SelectPractice returns the 1-based practice puzzle n.
func (s *PuzzleStore) SelectPractice(n int) (PuzzleRecord, error) {
	if n < 1 || n > len(s.Records) {
		return PuzzleRecord{}, fmt.Errorf("%w: practice puzzle %d of %d", ErrPuzzleNotFound, n, len(s.Records))
	}
	return s.Records[n-1], nil
}

// ListPracticeIDs enumerates every valid practice puzzle number.
func (s *PuzzleStore) ListPracticeIDs() []int {
	return lo.RangeFrom(1, len(s.Records))
}

// RandomPracticeID picks a random valid practice puzzle number.
func (s *PuzzleStore) RandomPracticeID() int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.Records))))
	if err != nil {
		logWarn("Error generating random puzzle number: %v, using fallback", err)
		return 1
	}
	return int(n.Int64()) + 1
}

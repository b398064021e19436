package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// GameState represents one player's progress through a single puzzle.
// The first clue is always visible; each miss reveals the next one.
type GameState struct {
	Mode           string    `json:"mode"`
	PuzzleID       int       `json:"puzzleId"` // day ordinal in daily mode, puzzle number in practice
	Category       string    `json:"category"`
	Keywords       []string  `json:"keywords"`
	Clues          []string  `json:"clues"`
	SuccessRate    float64   `json:"successRate"`
	RevealedCount  int       `json:"revealedCount"`
	Guesses        []string  `json:"guesses"`
	Outcome        string    `json:"outcome"`
	LastAccessTime time.Time `json:"lastAccessTime"`
}

// NewGameState initializes a fresh game for a puzzle record.
func NewGameState(mode string, puzzleID int, rec PuzzleRecord) *GameState {
	return &GameState{
		Mode:           mode,
		PuzzleID:       puzzleID,
		Category:       rec.Category,
		Keywords:       rec.Keywords,
		Clues:          rec.Clues,
		SuccessRate:    rec.SuccessRate,
		RevealedCount:  1,
		Guesses:        []string{},
		Outcome:        OutcomeInProgress,
		LastAccessTime: time.Now(),
	}
}

// restoredGameState rebuilds a terminal game from a ledger entry so an
// already-completed daily puzzle renders the same on every reload.
func restoredGameState(mode string, puzzleID int, rec PuzzleRecord, entry LedgerEntry) *GameState {
	clues := rec.Clues
	if len(entry.RevealedWords) == ClueCount {
		clues = entry.RevealedWords
	}

	revealed := min(len(entry.Guesses), ClueCount)
	if revealed < 1 {
		revealed = 1
	}

	outcome := OutcomeLost
	if entry.Success {
		outcome = OutcomeWon
	}

	guesses := entry.Guesses
	if guesses == nil {
		guesses = []string{}
	}

	return &GameState{
		Mode:           mode,
		PuzzleID:       puzzleID,
		Category:       rec.Category,
		Keywords:       rec.Keywords,
		Clues:          clues,
		SuccessRate:    rec.SuccessRate,
		RevealedCount:  revealed,
		Guesses:        guesses,
		Outcome:        outcome,
		LastAccessTime: time.Now(),
	}
}

// GameOver reports whether the game has reached a terminal outcome.
func (g *GameState) GameOver() bool {
	return g.Outcome != OutcomeInProgress
}

// Won reports whether the player guessed the category.
func (g *GameState) Won() bool {
	return g.Outcome == OutcomeWon
}

// VisibleClues returns the clues revealed so far, in reveal order.
func (g *GameState) VisibleClues() []string {
	return g.Clues[:g.RevealedCount]
}

// UnusedClues returns the clues never shown during play. Only
// meaningful once the game is over, for the "not used" display.
func (g *GameState) UnusedClues() []string {
	return g.Clues[g.RevealedCount:]
}

// SubmitGuess advances the game by one guess. The raw input is stored
// as submitted; matching happens on a normalized copy. A blank guess is
// a no-op and a terminal game rejects all further guesses.
func (g *GameState) SubmitGuess(raw string) error {
	if g.GameOver() {
		return ErrGameOver
	}
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyGuess
	}

	g.Guesses = append(g.Guesses, raw)
	g.LastAccessTime = time.Now()

	switch {
	case evaluateGuess(raw, g.Keywords):
		// Full reveal on a win, including clues never shown during play.
		g.Outcome = OutcomeWon
		g.RevealedCount = ClueCount
	case g.RevealedCount < ClueCount:
		g.RevealedCount++
	default:
		g.Outcome = OutcomeLost
	}
	return nil
}

// evaluateGuess reports whether a guess names the category: the
// trimmed, lowercased guess must contain one of the normalized
// keywords as a substring. No fuzzy matching.
func evaluateGuess(raw string, keywords []string) bool {
	guess := strings.ToLower(strings.TrimSpace(raw))
	return lo.SomeBy(keywords, func(kw string) bool {
		return strings.Contains(guess, kw)
	})
}

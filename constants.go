package main

// Game configuration constants
const (
	ClueCount  = 5 // every puzzle carries exactly five clue words
	MaxGuesses = 5 // the fifth miss ends the game instead of revealing a sixth clue
)

// Game modes
const (
	ModeDaily    = "daily"
	ModePractice = "practice"
)

// Outcome values for a game session
const (
	OutcomeInProgress = "in_progress"
	OutcomeWon        = "won"
	OutcomeLost       = "lost"
)

// ReferenceZone is the fixed time zone that buckets daily puzzles.
// Puzzle selection and the results ledger share it.
const ReferenceZone = "America/Los_Angeles"

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome       = "/"
	RoutePractice   = "/practice"
	RouteGuess      = "/guess"
	RouteGameState  = "/game-state"
	RouteNextPuzzle = "/next-puzzle"
	RouteShare      = "/share"
)

// Error message constants
const (
	ErrorGameOver      = "Game is over."
	ErrorPuzzleMissing = "Could not load puzzle. Please try again later."
	ErrorNotFound      = "Puzzle not found."
)

// DayKeyPrefix prefixes ledger bucket keys, e.g. "day_42".
const DayKeyPrefix = "day_"

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

package main

import "errors"

// Domain errors
var (
	ErrBadPuzzleData  = errors.New("puzzle data is malformed")
	ErrOutOfRange     = errors.New("no puzzle available for this date")
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrGameOver       = errors.New("game is over")
	ErrEmptyGuess     = errors.New("guess is empty")
)

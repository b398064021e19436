package main

import (
	"strconv"
	"strings"
)

// Share message templates. Placeholders are filled by shareText.
const (
	shareDailyWon     = "🎉 I just completed Pinpoint Daily in {tries} {tryText}! This one has a {difficulty}% success rate. Think you can? Try it here: {url}"
	shareDailyLost    = "❌ Pinpoint Daily stumped me after {tries} {tryText}! This one has a {difficulty}% success rate. Think you can? Try it here: {url}"
	sharePracticeWon  = "🎉 I solved Pinpoint Practice #{gameId} in {tries} {tryText}, beating {difficulty}% of players! Think you can? Try it here: {url}"
	sharePracticeLost = "❌ I failed Pinpoint Practice #{gameId} after {tries} {tryText}. Only {difficulty}% of players solved it! Think you can do better? Try it here: {url}"
)

// shareText composes the clipboard message for a finished game.
func shareText(game *GameState, url string) string {
	var template string
	switch {
	case game.Mode == ModePractice && game.Won():
		template = sharePracticeWon
	case game.Mode == ModePractice:
		template = sharePracticeLost
	case game.Won():
		template = shareDailyWon
	default:
		template = shareDailyLost
	}

	tries := len(game.Guesses)
	tryText := "tries"
	if tries == 1 {
		tryText = "try"
	}

	return strings.NewReplacer(
		"{gameId}", strconv.Itoa(game.PuzzleID),
		"{tries}", strconv.Itoa(tries),
		"{tryText}", tryText,
		"{difficulty}", strconv.FormatFloat(game.SuccessRate, 'f', -1, 64),
		"{url}", url,
	).Replace(template)
}

package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const pageTitle = "Pinpoint - Guess the Category"

// homeHandler renders the daily puzzle page. A daily already completed
// by this session is restored from the ledger in its terminal state
// instead of being replayed.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	game, _, err := app.resolveDailyGame(sessionID)
	if err != nil {
		logWarn("Daily puzzle unavailable: %v", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"title":   pageTitle,
			"message": "Error loading daily puzzle.",
			"detail":  "Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": pageTitle,
		"game":  game,
	})
}

// practiceHandler redirects to a random practice puzzle.
func (app *App) practiceHandler(c *gin.Context) {
	id := app.PracticeStore.RandomPracticeID()
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("%s/%d", RoutePractice, id))
}

// practicePuzzleHandler renders one practice puzzle, addressed by its
// 1-based number. Non-numeric or out-of-range numbers are a 404.
func (app *App) practicePuzzleHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	n, err := strconv.Atoi(c.Param("puzzlenum"))
	if err != nil {
		app.renderNotFound(c)
		return
	}
	rec, err := app.PracticeStore.SelectPractice(n)
	if err != nil {
		app.renderNotFound(c)
		return
	}

	key := gameKey(sessionID, ModePractice, n)
	game, ok := app.getGame(key)
	if !ok {
		game = NewGameState(ModePractice, n, rec)
		app.putGame(key, game)
		logInfo("New practice game #%d for session: %s", n, sessionID)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": pageTitle,
		"game":  game,
	})
}

// guessHandler processes one guess submission and renders the updated
// board, as a fragment for HTMX requests or a full page otherwise.
func (app *App) guessHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	game, _, err := app.resolveGame(c, sessionID)
	if err != nil {
		if errors.Is(err, ErrPuzzleNotFound) {
			app.renderNotFound(c)
		} else {
			app.renderBoard(c, nil, ErrorPuzzleMissing)
		}
		return
	}

	raw := c.PostForm("guess")
	switch err := game.SubmitGuess(raw); {
	case errors.Is(err, ErrGameOver):
		logWarn("Session %s attempted guess on completed game", sessionID)
		app.renderBoard(c, game, ErrorGameOver)
		return
	case errors.Is(err, ErrEmptyGuess):
		// Blank guesses have no observable effect.
		app.renderBoard(c, game, "")
		return
	}

	logInfo("Session %s guessed %q (%s #%d): revealed %d/%d, outcome %s",
		sessionID, raw, game.Mode, game.PuzzleID, game.RevealedCount, ClueCount, game.Outcome)

	if game.GameOver() && game.Mode == ModeDaily {
		entry := LedgerEntry{
			Success:       game.Won(),
			RevealedWords: game.Clues,
			Guesses:       game.Guesses,
		}
		app.Ledger.Record(sessionID, dayKey(time.Now(), app.Zone), entry)
	}

	app.renderBoard(c, game, "")
}

// gameStateHandler renders the current board as an HTML fragment.
func (app *App) gameStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	game, _, err := app.resolveGame(c, sessionID)
	if err != nil {
		if errors.Is(err, ErrPuzzleNotFound) {
			app.renderNotFound(c)
		} else {
			app.renderBoard(c, nil, ErrorPuzzleMissing)
		}
		return
	}
	c.HTML(http.StatusOK, "game-content", gin.H{"game": game})
}

// nextPuzzleHandler reports the countdown until the daily puzzle rolls
// over at midnight in the reference zone.
func (app *App) nextPuzzleHandler(c *gin.Context) {
	now := time.Now()
	next := nextPuzzleTime(now, app.Zone)
	remaining := next.Sub(now)
	c.JSON(http.StatusOK, gin.H{
		"nextPuzzleAt": next.UTC().Format(time.RFC3339),
		"remaining":    int(remaining.Seconds()),
		"countdown":    formatCountdown(remaining),
	})
}

// shareHandler returns the share message for a finished game.
func (app *App) shareHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	game, _, err := app.resolveGame(c, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorNotFound})
		return
	}
	if !game.GameOver() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game is still in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": shareText(game, app.requestURL(c, game))})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"env":              map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"daily_puzzles":    app.DailyStore.Len(),
		"practice_puzzles": app.PracticeStore.Len(),
		"uptime":           formatUptime(uptime),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}

// resolveGame locates the active game addressed by the request's
// mode/puzzle parameters, creating it from the puzzle store on first
// touch. Used by the guess, game-state and share endpoints.
func (app *App) resolveGame(c *gin.Context, sessionID string) (*GameState, string, error) {
	mode := requestValue(c, "mode")
	if mode != ModePractice {
		return app.resolveDailyGame(sessionID)
	}

	n, err := strconv.Atoi(requestValue(c, "puzzle"))
	if err != nil {
		return nil, "", fmt.Errorf("%w: bad puzzle number %q", ErrPuzzleNotFound, requestValue(c, "puzzle"))
	}
	rec, err := app.PracticeStore.SelectPractice(n)
	if err != nil {
		return nil, "", err
	}

	key := gameKey(sessionID, ModePractice, n)
	game, ok := app.getGame(key)
	if !ok {
		game = NewGameState(ModePractice, n, rec)
		app.putGame(key, game)
	}
	return game, key, nil
}

// resolveDailyGame returns the session's game for today's puzzle,
// restoring a completed one from the ledger so reloads are idempotent.
func (app *App) resolveDailyGame(sessionID string) (*GameState, string, error) {
	now := time.Now()
	rec, ordinal, err := app.DailyStore.SelectDaily(now, app.Zone)
	if err != nil {
		return nil, "", err
	}

	key := gameKey(sessionID, ModeDaily, ordinal)
	game, ok := app.getGame(key)
	if !ok {
		if entry, done := app.Ledger.Lookup(sessionID, dayKey(now, app.Zone)); done {
			game = restoredGameState(ModeDaily, ordinal, rec, entry)
			logInfo("Restored completed daily game for session: %s", sessionID)
		} else {
			game = NewGameState(ModeDaily, ordinal, rec)
			logInfo("New daily game (day %d) for session: %s", ordinal, sessionID)
		}
		app.putGame(key, game)
	}
	return game, key, nil
}

// renderBoard renders the board fragment for HTMX requests and the
// full page otherwise. game may be nil when the puzzle failed to load.
func (app *App) renderBoard(c *gin.Context, game *GameState, errMsg string) {
	payload := gin.H{
		"title": pageTitle,
		"game":  game,
		"error": errMsg,
	}
	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "game-content", payload)
		return
	}
	c.HTML(http.StatusOK, "index.html", payload)
}

// renderNotFound renders the 404 page.
func (app *App) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{
		"title":   pageTitle,
		"message": ErrorNotFound,
	})
}

// requestURL reconstructs the puzzle's address for share messages.
func (app *App) requestURL(c *gin.Context, game *GameState) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	if game.Mode == ModePractice {
		return fmt.Sprintf("%s://%s%s/%d", scheme, c.Request.Host, RoutePractice, game.PuzzleID)
	}
	return fmt.Sprintf("%s://%s/", scheme, c.Request.Host)
}

// requestValue reads a request parameter from the form body or, for
// GET requests, the query string.
func requestValue(c *gin.Context, name string) string {
	if v := c.PostForm(name); v != "" {
		return v
	}
	return c.Query(name)
}

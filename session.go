package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !validSessionID(sessionID) {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// gameKey addresses one active game: a session plays at most one game
// per daily ordinal and one per practice puzzle number.
func gameKey(sessionID, mode string, puzzleID int) string {
	return fmt.Sprintf("%s|%s|%d", sessionID, mode, puzzleID)
}

// getGame retrieves a cached game and refreshes its access time.
func (app *App) getGame(key string) (*GameState, bool) {
	app.SessionMutex.RLock()
	game, exists := app.GameSessions[key]
	app.SessionMutex.RUnlock()
	if !exists {
		return nil, false
	}
	app.SessionMutex.Lock()
	game.LastAccessTime = time.Now()
	app.SessionMutex.Unlock()
	return game, true
}

// putGame stores a game under its key.
func (app *App) putGame(key string, game *GameState) {
	app.SessionMutex.Lock()
	app.GameSessions[key] = game
	app.SessionMutex.Unlock()
}

// cleanupIdleGames drops in-memory games untouched for longer than the
// session timeout. Completed daily games survive in the ledger.
func (app *App) cleanupIdleGames() {
	cutoff := time.Now().Add(-app.SessionTimeout)
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for key, game := range app.GameSessions {
		if game.LastAccessTime.Before(cutoff) {
			delete(app.GameSessions, key)
			removed++
		}
	}
	if removed > 0 {
		logInfo("Removed %d idle game sessions", removed)
	}
}

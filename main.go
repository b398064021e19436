package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// App holds all server state shared across handlers.
type App struct {
	DailyStore    *PuzzleStore
	PracticeStore *PuzzleStore
	Zone          *time.Location
	Ledger        *Ledger

	GameSessions map[string]*GameState
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StartTime      time.Time
}

func main() {
	_ = godotenv.Load()

	app, err := newApp()
	if err != nil {
		logFatal("Failed to initialize: %v", err)
	}

	go app.idleGameReaper()

	startServer(app.newRouter())
}

func newApp() (*App, error) {
	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting Pinpoint in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	zone, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		return nil, err
	}

	dailyStore, err := LoadPuzzleStore(getEnvStr("DAILY_CSV", "data/daily.csv"))
	if err != nil {
		return nil, err
	}
	practiceStore, err := LoadPuzzleStore(getEnvStr("PRACTICE_CSV", "data/categories.csv"))
	if err != nil {
		return nil, err
	}
	logInfo("Loaded %d daily and %d practice puzzles", dailyStore.Len(), practiceStore.Len())

	ledger := NewLedger(getEnvStr("RESULTS_DIR", "data/results"))
	if err := ledger.CleanupOld(getEnvDuration("RESULT_RETENTION", 14*24*time.Hour)); err != nil {
		logWarn("Result cleanup failed: %v", err)
	}

	return &App{
		DailyStore:     dailyStore,
		PracticeStore:  practiceStore,
		Zone:           zone,
		Ledger:         ledger,
		GameSessions:   make(map[string]*GameState),
		LimiterMap:     make(map[string]*rate.Limiter),
		IsProduction:   isProduction,
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 24*time.Hour),
		StaticCacheAge: getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		StartTime:      time.Now(),
	}, nil
}

func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{"/static/fonts"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(func(c *gin.Context) {
		app.applyCacheHeaders(c)
	})

	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})

	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		router.LoadHTMLGlob("dist/templates/*.html")
		router.Static("/static", "./dist/static")
	} else {
		logInfo("Serving development assets from source directories")
		router.LoadHTMLGlob("templates/*.html")
		router.Static("/static", "./static")
	}

	router.GET(RouteHome, app.homeHandler)
	router.GET(RoutePractice, app.practiceHandler)
	router.GET(RoutePractice+"/:puzzlenum", app.practicePuzzleHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.GET(RouteNextPuzzle, app.nextPuzzleHandler)
	router.GET(RouteShare, app.shareHandler)
	router.GET("/healthz", app.healthzHandler)
	router.NoRoute(app.renderNotFound)

	return router
}

// idleGameReaper periodically drops in-memory games that have gone
// untouched for the session timeout.
func (app *App) idleGameReaper() {
	ticker := time.NewTicker(app.SessionTimeout / 2)
	defer ticker.Stop()
	for range ticker.C {
		app.cleanupIdleGames()
	}
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

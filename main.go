package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yumyai/seqspec/internal/util"
	"github.com/yumyai/seqspec/logger"
	"github.com/yumyai/seqspec/pkg/db"
	"github.com/yumyai/seqspec/pkg/handler"
	"github.com/yumyai/seqspec/pkg/middle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const VERSION = "0.1.0"

type config struct {
	DataDir  string
	Addr     string
	LogLevel string
	SeedDir  string
}

// getenv returns the variable or its default, warning when the default is used.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	logger.Warn("Environment variable not set, using default", zap.String("key", key), zap.String("default", fallback))
	return fallback
}

func loadConfig() config {
	// Try load env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env found, using local environment")
	}

	return config{
		DataDir:  getenv("SEQSPEC_DATA", "./data"),
		Addr:     getenv("SEQSPEC_ADDR", "0.0.0.0:8080"),
		LogLevel: os.Getenv("SEQSPEC_LOG_LEVEL"),
		SeedDir:  os.Getenv("SEQSPEC_SEED_DIR"),
	}
}

// seedStore imports every spec file in dir. Files that fail to load are
// logged and skipped.
func seedStore(ctx context.Context, store *db.AssayStore, dir string) {
	if !util.DirExists(dir) {
		logger.Warn("Seed directory does not exist", zap.String("dir", dir))
		return
	}

	files, err := util.ListFilesWithExt(dir, ".yaml", ".yml", ".json")
	if err != nil {
		logger.Error("Cannot list seed directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	for _, f := range files {
		a, err := db.LoadSpecFile(f)
		if err != nil {
			logger.Warn("Skip seed file", zap.String("file", f), zap.Error(err))
			continue
		}
		revision, err := store.Put(ctx, a)
		if err != nil {
			logger.Warn("Cannot store seed assay", zap.String("file", f), zap.Error(err))
			continue
		}
		logger.Info("Seeded assay", zap.String("assay_id", a.AssayID), zap.String("revision", revision))
	}
}

// newHandler wraps the router. Metrics sit outside the recovering logger so
// requests that panic are still counted.
func newHandler(mux *http.ServeMux, mwLogger *zap.Logger) http.Handler {
	return middle.Chain(mux,
		middle.RequestIDMiddleware(mwLogger),
		middle.MetricsMiddleware(mux),
		middle.LoggingMiddleware(mwLogger),
	)
}

func main() {
	// Establish logger, re-initialised once the configured level is known
	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}
	cfg := loadConfig()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("Falling back to info level", zap.Error(err))
	}
	if level != zapcore.InfoLevel {
		if err := logger.InitLogger(level); err != nil {
			panic(err)
		}
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	sqlitePath := path.Join(cfg.DataDir, "db/seqspec.db")
	store, err := db.OpenAssayStore(sqlitePath)
	if err != nil {
		logger.Fatal("Cannot open assay store", zap.String("DB_LOC", sqlitePath), zap.Error(err))
	}
	defer store.Close()

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Open database on", zap.String("DB_LOC", sqlitePath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDir != "" {
		seedStore(ctx, store, cfg.SeedDir)
	}

	dbctx := handler.NewDBContext(store)
	mux := handler.NewRouter(dbctx)

	// Apply middleware
	mwLogger := middle.CreateMiddlewareLogger(level)
	h := newHandler(mux, mwLogger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Server starting", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Error starting server:", zap.String("error message", err.Error()))
	}
}

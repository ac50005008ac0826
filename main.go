package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lemonade/internal/config"
	"lemonade/internal/httpmw"
	"lemonade/internal/recorder"
	"lemonade/internal/server"
	"lemonade/internal/stand"
	"lemonade/internal/weather"
)

func main() {
	// Missing .env files are acceptable; configuration can come from the
	// environment directly.
	_ = godotenv.Load()

	logger := mustLogger()
	defer func() { _ = logger.Sync() }()

	cfg := loadConfig(logger)

	bal := config.FromEnv()
	if cfg.Balance != nil {
		bal = *cfg.Balance
	}

	seed := cfg.RNG.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rec := newRecorder(cfg, logger)
	defer func() { _ = rec.Close() }()

	engine := stand.Engine{
		States:   stand.NewMemoryStateRepo(),
		Rand:     weather.NewSeededRand(seed),
		Balance:  bal,
		Recorder: rec,
		Log:      logger.Named("engine"),
	}

	if _, err := engine.NewGame(context.Background()); err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterStatic(mux)
	server.RegisterAPIRoutes(mux, rr, &server.App{
		Engine:  engine,
		Balance: bal,
		BootNow: time.Now(),
	})

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
		httpmw.WithAccessLog(logger.Named("http")),
		httpmw.WithRateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
	)

	addr := ":" + cfg.Server.Port
	logger.Info("lemonade stand listening", zap.String("addr", addr), zap.Int64("seed", seed))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func mustLogger() *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func loadConfig(logger *zap.Logger) *config.Config {
	path := os.Getenv("LEMONADE_CONFIG")
	if path == "" {
		cfg := &config.Config{}
		cfg.ApplyDefaults()
		return cfg
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", path), zap.Error(err))
	}
	return cfg
}

func newRecorder(cfg *config.Config, logger *zap.Logger) recorder.Recorder {
	if cfg.Recorder.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath, logger.Named("recorder"))
	if err != nil {
		logger.Fatal("failed to open recorder", zap.Error(err))
	}
	return rec
}

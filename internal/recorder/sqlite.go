package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends day outcomes to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis tooling can read while the game writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS day_outcomes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			day            INTEGER NOT NULL,
			forecast       TEXT,
			actual_weather TEXT,
			ads            INTEGER,
			cups           INTEGER,
			price          REAL,
			sales          INTEGER,
			revenue        REAL,
			cost           REAL,
			profit         REAL,
			money_after    REAL,
			game_over      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_outcomes_ts ON day_outcomes(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_day_outcomes_day ON day_outcomes(day)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDay(rec *DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gameOver := 0
	if rec.GameOver {
		gameOver = 1
	}

	_, err := r.db.Exec(`INSERT INTO day_outcomes
		(timestamp, day, forecast, actual_weather, ads, cups, price, sales,
		 revenue, cost, profit, money_after, game_over)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Day, rec.Forecast, rec.ActualWeather,
		rec.Ads, rec.Cups, rec.Price, rec.Sales,
		rec.Revenue, rec.Cost, rec.Profit, rec.MoneyAfter, gameOver,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}

var _ Recorder = (*SQLiteRecorder)(nil)

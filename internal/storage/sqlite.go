// Package storage keeps the current session's rounds and games in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/number-catcher/internal/core"
)

// Store manages the session database.
type Store struct {
	db *sql.DB
}

// RoundEntry is one resolved round.
type RoundEntry struct {
	ID        int64
	Round     int
	Target    int
	Outcome   core.EventKind // won, overshot or out_of_time
	Sum       int
	Bonus     int
	Score     int // Score after the round
	Lives     int // Lives after the round
	Numbers   []int
	CreatedAt time.Time
}

// GameEntry is one game, from intro to death or quit.
type GameEntry struct {
	ID           int64
	Score        int
	RoundsPlayed int
	Finished     bool // False if the player quit mid-game
	CreatedAt    time.Time
}

// SessionStats aggregates everything recorded so far.
type SessionStats struct {
	Games      int
	BestScore  int
	AvgScore   float64
	RoundsWon  int
	Overshoots int
	Timeouts   int
	BestBonus  int
}

// RoundsLost returns the rounds that cost a life.
func (s SessionStats) RoundsLost() int {
	return s.Overshoots + s.Timeouts
}

// Open creates a fresh in-memory session database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			target INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			sum INTEGER NOT NULL,
			bonus INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			numbers TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			rounds_played INTEGER NOT NULL,
			finished INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The session data is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a game event. Round outcomes become rounds, game over
// becomes a finished game. Other events are ignored.
func (s *Store) Record(ev core.Event) error {
	switch ev.Kind {
	case core.EventRoundWon, core.EventOvershot, core.EventOutOfTime:
		_, err := s.SaveRound(RoundEntry{
			Round:   ev.Round,
			Target:  ev.Target,
			Outcome: ev.Kind,
			Sum:     ev.Sum,
			Bonus:   ev.Bonus,
			Score:   ev.Score,
			Lives:   ev.Lives,
			Numbers: ev.Numbers,
		})
		return err
	case core.EventGameOver:
		_, err := s.SaveGame(GameEntry{Score: ev.Score, RoundsPlayed: ev.RoundsPlayed, Finished: true})
		return err
	}
	return nil
}

// SaveRound records a resolved round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (round, target, outcome, sum, bonus, score, lives, numbers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Round, r.Target, string(r.Outcome), r.Sum, r.Bonus, r.Score, r.Lives, joinNumbers(r.Numbers),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveGame records a game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(g GameEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (score, rounds_played, finished) VALUES (?, ?, ?)",
		g.Score, g.RoundsPlayed, g.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games of the session.
// Results are ordered by score descending, earlier games first on ties.
func (s *Store) TopGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, rounds_played, finished, created_at
		 FROM games
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.RoundsPlayed, &e.Finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRounds retrieves the last N resolved rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round, target, outcome, sum, bonus, score, lives, numbers, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var outcome, numbers string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Round, &e.Target, &outcome, &e.Sum, &e.Bonus,
			&e.Score, &e.Lives, &numbers, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = core.EventKind(outcome)
		e.Numbers, err = splitNumbers(numbers)
		if err != nil {
			return nil, fmt.Errorf("storage: round %d: %w", e.ID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for the session.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0) FROM games`,
	).Scan(&stats.Games, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(MAX(bonus), 0)
		 FROM rounds`,
		string(core.EventRoundWon), string(core.EventOvershot), string(core.EventOutOfTime),
	).Scan(&stats.RoundsWon, &stats.Overshoots, &stats.Timeouts, &stats.BestBonus)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	return stats, nil
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func splitNumbers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad caught number %q: %w", p, err)
		}
		nums[i] = n
	}
	return nums, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

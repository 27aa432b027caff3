package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// Store is the zero-setup ScanRepository used when no DATABASE_URL is
// configured. One writer connection, WAL journal, schema applied on open.
type Store struct {
	db *sql.DB
}

var _ ports.ScanRepository = (*Store)(nil)

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`CREATE TABLE IF NOT EXISTS scan_records (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			url TEXT NOT NULL,
			threat_level TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			verdict TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS scan_records_created_at_idx ON scan_records (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS scan_records_threat_level_idx ON scan_records (threat_level)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// Save stores the whole verdict as a JSON blob next to the columns the
// history and analytics queries filter on. Timestamps are unix nanos.
func (s *Store) Save(ctx context.Context, rec domain.ScanRecord) error {
	verdict, err := json.Marshal(rec.Verdict)
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scan_records (id, user_id, url, threat_level, created_at, verdict)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Verdict.URL, string(rec.Verdict.ThreatLevel),
		rec.CreatedAt.UnixNano(), verdict)
	return err
}

func (s *Store) Recent(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, created_at, verdict
		FROM scan_records
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ScanRecord, 0, limit)
	for rows.Next() {
		var (
			rec     domain.ScanRecord
			userID  sql.NullString
			nanos   int64
			verdict []byte
		)
		if err := rows.Scan(&rec.ID, &userID, &nanos, &verdict); err != nil {
			return nil, err
		}
		if userID.Valid {
			rec.UserID = &userID.String
		}
		rec.CreatedAt = time.Unix(0, nanos).UTC()
		if err := json.Unmarshal(verdict, &rec.Verdict); err != nil {
			return nil, fmt.Errorf("decode verdict: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scan_records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (s *Store) Analytics(ctx context.Context, days int) (domain.ScanAnalytics, error) {
	out := domain.ScanAnalytics{CountsByLevel: make(map[domain.ThreatLevel]int64)}
	cutoff := time.Now().UTC().AddDate(0, 0, -days).UnixNano()

	levels, err := s.db.QueryContext(ctx, `
		SELECT threat_level, COUNT(*)
		FROM scan_records
		WHERE created_at >= ?
		GROUP BY threat_level
	`, cutoff)
	if err != nil {
		return out, err
	}
	defer levels.Close()
	for levels.Next() {
		var level string
		var n int64
		if err := levels.Scan(&level, &n); err != nil {
			return out, err
		}
		out.CountsByLevel[domain.ThreatLevel(level)] = n
		out.TotalScans += n
	}
	if err := levels.Err(); err != nil {
		return out, err
	}

	daily, err := s.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m-%d', created_at / 1000000000, 'unixepoch') AS day, COUNT(*)
		FROM scan_records
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day
	`, cutoff)
	if err != nil {
		return out, err
	}
	defer daily.Close()
	for daily.Next() {
		var dc domain.DayCount
		if err := daily.Scan(&dc.Day, &dc.Count); err != nil {
			return out, err
		}
		out.Daily = append(out.Daily, dc)
	}
	return out, daily.Err()
}

func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scan_records WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

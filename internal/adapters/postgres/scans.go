package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

var _ ports.ScanRepository = (*DB)(nil)

// Save inserts one scan record. Indicator lists and the feature/intel
// snapshots go into JSONB columns; the scalar columns carry everything
// the analytics queries group on.
func (db *DB) Save(ctx context.Context, rec domain.ScanRecord) error {
	indicators, err := json.Marshal(rec.Verdict.Indicators)
	if err != nil {
		return fmt.Errorf("encode indicators: %w", err)
	}
	features, err := json.Marshal(rec.Verdict.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	intel, err := json.Marshal(rec.Verdict.Intel)
	if err != nil {
		return fmt.Errorf("encode intel: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO scan_records
			(id, user_id, url, threat_score, threat_level, confidence,
			 indicators, recommendation, action_required, safe_to_visit,
			 features, intel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, rec.ID, rec.UserID, rec.Verdict.URL, rec.Verdict.ThreatScore,
		string(rec.Verdict.ThreatLevel), string(rec.Verdict.Confidence),
		indicators, rec.Verdict.Recommendation, rec.Verdict.ActionRequired,
		rec.Verdict.SafeToVisit, features, intel, rec.CreatedAt)
	return err
}

func (db *DB) Recent(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, url, threat_score, threat_level, confidence,
		       indicators, recommendation, action_required, safe_to_visit,
		       features, intel, created_at
		FROM scan_records
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ScanRecord, 0, limit)
	for rows.Next() {
		var (
			rec        domain.ScanRecord
			level      string
			confidence string
			indicators []byte
			features   []byte
			intel      []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Verdict.URL,
			&rec.Verdict.ThreatScore, &level, &confidence, &indicators,
			&rec.Verdict.Recommendation, &rec.Verdict.ActionRequired,
			&rec.Verdict.SafeToVisit, &features, &intel, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Verdict.ThreatLevel = domain.ThreatLevel(level)
		rec.Verdict.Confidence = domain.Confidence(confidence)
		if err := json.Unmarshal(indicators, &rec.Verdict.Indicators); err != nil {
			return nil, fmt.Errorf("decode indicators: %w", err)
		}
		if err := json.Unmarshal(features, &rec.Verdict.Features); err != nil {
			return nil, fmt.Errorf("decode features: %w", err)
		}
		if err := json.Unmarshal(intel, &rec.Verdict.Intel); err != nil {
			return nil, fmt.Errorf("decode intel: %w", err)
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (db *DB) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ports.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM scan_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) Analytics(ctx context.Context, days int) (domain.ScanAnalytics, error) {
	out := domain.ScanAnalytics{CountsByLevel: make(map[domain.ThreatLevel]int64)}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	levels, err := db.Pool.Query(ctx, `
		SELECT threat_level, COUNT(*)
		FROM scan_records
		WHERE created_at >= $1
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

	daily, err := db.Pool.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM scan_records
		WHERE created_at >= $1
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

func (db *DB) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM scan_records WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

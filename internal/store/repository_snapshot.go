package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

// sortableTime is fixed width so that text comparison in SQLite matches
// chronological order.
const sortableTime = "2006-01-02T15:04:05.000000000Z"

const (
	putSnapshot = `
INSERT INTO note_versions (key, entity_id, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (key) DO NOTHING`

	listSnapshotKeys = `SELECT key FROM note_versions`

	getSnapshot = `SELECT value FROM note_versions WHERE key = ?`

	listEntitySnapshots = `
SELECT key, updated_at FROM note_versions
WHERE entity_id = ?
ORDER BY updated_at DESC`

	deleteSnapshot = `DELETE FROM note_versions WHERE key = ?`

	listSnapshotEntities = `SELECT DISTINCT entity_id FROM note_versions ORDER BY entity_id`
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{DB: db, logger: logger}
}

// Put stores snapshot under key. A key that already exists keeps its
// original value.
func (r *snapshotRepository) Put(ctx context.Context, key string, snapshot models.Snapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.ExecContext(ctx, putSnapshot, key, models.SnapshotEntityID(key), string(value),
		snapshot.UpdatedAt.UTC().Format(sortableTime))
	if err != nil {
		r.logger.Err(err).Str("func", "snapshotRepository.Put").Str("key", key).Msg("failed to store snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *snapshotRepository) List(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "snapshotRepository.List", listSnapshotKeys)
}

func (r *snapshotRepository) EntityIDs(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "snapshotRepository.EntityIDs", listSnapshotEntities)
}

func (r *snapshotRepository) Get(ctx context.Context, key string) (models.Snapshot, error) {
	var value string
	err := r.QueryRowContext(ctx, getSnapshot, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "snapshotRepository.Get").Str("key", key).Msg("failed to read snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(value), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return snapshot, nil
}

func (r *snapshotRepository) Prune(ctx context.Context, entityID string, keepLast int, maxAge time.Duration, now time.Time) (int, error) {
	rows, err := r.QueryContext(ctx, listEntitySnapshots, entityID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var (
		victims []string
		cutoff  string
		index   int
	)
	if maxAge > 0 {
		cutoff = now.Add(-maxAge).UTC().Format(sortableTime)
	}
	for rows.Next() {
		var key, updatedAt string
		if err := rows.Scan(&key, &updatedAt); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tooMany := keepLast > 0 && index >= keepLast
		tooOld := cutoff != "" && updatedAt < cutoff
		if tooMany || tooOld {
			victims = append(victims, key)
		}
		index++
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	_ = rows.Close()

	if len(victims) == 0 {
		return 0, nil
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range victims {
		if _, err := tx.ExecContext(ctx, deleteSnapshot, key); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().Str("func", "snapshotRepository.Prune").Str("entity_id", entityID).
		Int("removed", len(victims)).Msg("pruned snapshots")
	return len(victims), nil
}

func (r *snapshotRepository) queryStrings(ctx context.Context, fn, query string) ([]string, error) {
	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 64)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return values, nil
}

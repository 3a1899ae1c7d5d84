package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/migrations"
)

// DB is a *sql.DB bound to its dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// readRetryDelays are the pauses between attempts of a read that failed
// with a retryable error.
var readRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// withReadRetry runs a read-only query and repeats it while the classifier
// reports the failure as transient. Writes are never retried.
func (db *DB) withReadRetry(ctx context.Context, read func() error) error {
	err := read()
	for _, delay := range readRetryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		err = read()
	}
	return err
}

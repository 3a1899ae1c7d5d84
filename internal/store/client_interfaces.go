package store

import (
	"context"
	"time"

	"github.com/MKhiriev/summarium/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository is the client's local version history. Keys have the
// form "<entityId>+<RFC3339Nano UTC>" and snapshots are never mutated.
type SnapshotRepository interface {
	Put(ctx context.Context, key string, snapshot models.Snapshot) error
	// List returns every stored key in no particular order.
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, key string) (models.Snapshot, error)
	// Prune keeps the newest keepLast snapshots of entityID and drops the
	// ones older than maxAge relative to now. Zero disables either limit.
	// It returns the number of removed snapshots.
	Prune(ctx context.Context, entityID string, keepLast int, maxAge time.Duration, now time.Time) (int, error)
	// EntityIDs lists entities that have at least one snapshot.
	EntityIDs(ctx context.Context) ([]string, error)
}

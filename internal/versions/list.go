package versions

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/summarium/models"
)

// Source is the read side of the local snapshot store.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, key string) (models.Snapshot, error)
}

// ListVersions returns the snapshots of entityID newest first, leaving out
// the ones whose plain text equals liveText.
func ListVersions(ctx context.Context, source Source, entityID, liveText string) ([]models.Snapshot, error) {
	keys, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	prefix := entityID + models.SnapshotKeySeparator
	versions := make([]models.Snapshot, 0)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		snapshot, err := source.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get snapshot %s: %w", key, err)
		}
		if snapshot.SanitizedContent == liveText {
			continue
		}
		versions = append(versions, snapshot)
	}

	sort.SliceStable(versions, func(i, j int) bool {
		if versions[i].UpdatedAt.Equal(versions[j].UpdatedAt) {
			return versions[i].Key() > versions[j].Key()
		}
		return versions[i].UpdatedAt.After(versions[j].UpdatedAt)
	})
	return versions, nil
}

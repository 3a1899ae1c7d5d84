package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
)

// RetentionPolicy bounds the local version history of every entity. Zero
// disables a limit.
type RetentionPolicy struct {
	KeepLast int
	MaxAge   time.Duration
}

func (p RetentionPolicy) Disabled() bool {
	return p.KeepLast <= 0 && p.MaxAge <= 0
}

// ClientRetentionService prunes local snapshots.
type ClientRetentionService interface {
	// PruneAll applies the policy to every entity with snapshots and
	// returns how many were removed. It keeps going past a failing entity
	// and reports all failures joined.
	PruneAll(ctx context.Context) (int, error)
}

type clientRetentionService struct {
	snapshots store.SnapshotRepository
	policy    RetentionPolicy
	clock     utils.Clock
	logger    *logger.Logger
}

func NewClientRetentionService(snapshots store.SnapshotRepository, policy RetentionPolicy, clock utils.Clock, logger *logger.Logger) ClientRetentionService {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &clientRetentionService{snapshots: snapshots, policy: policy, clock: clock, logger: logger}
}

func (s *clientRetentionService) PruneAll(ctx context.Context) (int, error) {
	if s.policy.Disabled() {
		return 0, nil
	}

	ids, err := s.snapshots.EntityIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list entities: %w", err)
	}

	now := s.clock.Now()
	removed := 0
	var errs []error
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		n, err := s.snapshots.Prune(ctx, id, s.policy.KeepLast, s.policy.MaxAge, now)
		if err != nil {
			s.logger.Err(err).Str("func", "clientRetentionService.PruneAll").Str("entity_id", id).Msg("prune failed")
			errs = append(errs, err)
			continue
		}
		removed += n
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Int("entities", len(ids)).Msg("pruned local snapshots")
	}
	return removed, errors.Join(errs...)
}

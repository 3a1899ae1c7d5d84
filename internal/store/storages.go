package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
)

// Storages groups the server-side repositories and blob stores.
type Storages struct {
	UserRepository     UserRepository
	NoteRepository     NoteRepository
	JournalRepository  JournalRepository
	TaskRepository     TaskRepository
	ActivityRepository ActivityRepository
	SearchRepository   SearchRepository
	RevocationStore    RevocationStore
	AudioStore         AudioStore

	closers []func() error
}

// NewStorages connects to PostgreSQL, applies migrations and picks the
// revocation and audio backends from cfg. Redis and object storage are
// optional; without them an in-memory revocation list and Files.SpeechDir
// are used.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository:     NewUserRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		JournalRepository:  NewJournalRepository(db, log),
		TaskRepository:     NewTaskRepository(db, log),
		ActivityRepository: NewActivityRepository(db, log),
		SearchRepository:   NewSearchRepository(db, log),
		closers:            []func() error{db.Close},
	}

	if cfg.Storage.Redis.URL != "" {
		revocations, err := NewRedisRevocationStore(ctx, cfg.Storage.Redis.URL)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		s.RevocationStore = revocations
		s.closers = append(s.closers, revocations.Close)
	} else {
		log.Warn().Str("func", "NewStorages").Msg("redis is not configured, revoked tokens are kept in memory")
		s.RevocationStore = NewMemoryRevocationStore()
	}

	if cfg.Storage.Objects.Endpoint != "" {
		s.AudioStore, err = NewObjectAudioStore(ctx, cfg.Storage.Objects, log)
	} else {
		s.AudioStore, err = NewFileAudioStore(cfg.Storage.Files.SpeechDir, cfg.Server.PublicURL)
	}
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("audio storage error: %w", err)
	}

	return s, nil
}

// Close releases connections in reverse order of creation.
func (s *Storages) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewClientStorages opens the local SQLite file at cfg.Path and applies
// migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Path, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SnapshotRepository: NewSnapshotRepository(db, log),
		db:                 db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}

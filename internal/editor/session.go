package editor

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
)

// DefaultSaveDelay is the idle period after the last keystroke before a
// save is sent.
const DefaultSaveDelay = time.Second

// Capability is what a session needs to know about the entity it edits.
type Capability[T any] interface {
	Load(ctx context.Context, id string) (T, error)
	// Save persists entity and returns the stored version.
	Save(ctx context.Context, entity T) (T, error)
	// Edit returns entity with title and content replaced and the plain-text
	// projection derived again. Entities without a title ignore it.
	Edit(entity T, title, content string) T
	// Adopt copies what the server assigned to saved (id, owner, stamps)
	// onto live and leaves live's editable fields alone.
	Adopt(live, saved T) T
	DeriveSnapshot(entity T) models.Snapshot
}

// SnapshotStore receives a snapshot after every successful save.
type SnapshotStore interface {
	Put(ctx context.Context, key string, snapshot models.Snapshot) error
}

type State int

const (
	StateIdle State = iota
	StateEditing
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	default:
		return "idle"
	}
}

// Options wire a session to its surroundings. Only Snapshots is required.
type Options[T any] struct {
	Delay     time.Duration
	Clock     utils.Clock
	Snapshots SnapshotStore
	// Notify shows a message to the user, e.g. as a toast.
	Notify func(message string)
	// OnSaved is called with the stored entity after each successful save.
	OnSaved func(entity T)
	Logger  *logger.Logger
}

// Session is a live editing session over one entity.
//
// State moves idle -> editing on an edit, editing -> saving once the delay
// passes, and saving -> idle whether the save succeeded or not. A failed
// save is reported through Notify and not retried: the next edit saves
// again.
type Session[T any] struct {
	ctx        context.Context
	capability Capability[T]
	opts       Options[T]
	debouncer  *utils.Debouncer

	mu       sync.Mutex
	entity   T
	title    string
	content  string
	state    State
	inFlight int
	// rev counts edits; a save that returns while rev is unchanged
	// replaces the live entity with the stored one.
	rev uint64
}

// Open loads the entity with id and starts a session over it.
func Open[T any](ctx context.Context, capability Capability[T], id string, opts Options[T]) (*Session[T], error) {
	entity, err := capability.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, capability, entity, opts), nil
}

// NewSession starts a session over an entity the caller already has, such
// as a freshly created one. ctx bounds every save the session sends.
func NewSession[T any](ctx context.Context, capability Capability[T], entity T, opts Options[T]) *Session[T] {
	if opts.Delay <= 0 {
		opts.Delay = DefaultSaveDelay
	}
	if opts.Notify == nil {
		opts.Notify = func(string) {}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	snapshot := capability.DeriveSnapshot(entity)
	return &Session[T]{
		ctx:        ctx,
		capability: capability,
		opts:       opts,
		debouncer:  utils.NewDebouncer(opts.Delay, opts.Clock),
		entity:     entity,
		title:      snapshot.Title,
		content:    snapshot.Content,
	}
}

// Entity returns the live entity including unsaved edits.
func (s *Session[T]) Entity() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entity
}

func (s *Session[T]) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *Session[T]) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// PlainText is the projection of the live content.
func (s *Session[T]) PlainText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capability.DeriveSnapshot(s.entity).SanitizedContent
}

func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session[T]) SetTitle(title string) {
	s.edit(func() { s.title = title })
}

func (s *Session[T]) SetContent(content string) {
	s.edit(func() { s.content = content })
}

// Modify applies change to fields the editor text does not cover, such
// as a task's status, and schedules a save like any other edit.
func (s *Session[T]) Modify(change func(T) T) {
	s.mu.Lock()
	s.entity = change(s.entity)
	s.rev++
	entity, rev := s.entity, s.rev
	if s.state == StateIdle {
		s.state = StateEditing
	}
	s.mu.Unlock()

	s.debouncer.Call(func() { s.save(entity, rev) })
}

// edit applies change and schedules a save of the resulting entity. The
// scheduled call carries that entity, id included, so a session that moves
// on can never save into the wrong record.
func (s *Session[T]) edit(change func()) {
	s.mu.Lock()
	change()
	s.entity = s.capability.Edit(s.entity, s.title, s.content)
	s.rev++
	entity, rev := s.entity, s.rev
	if s.state == StateIdle {
		s.state = StateEditing
	}
	s.mu.Unlock()

	s.debouncer.Call(func() { s.save(entity, rev) })
}

// save sends entity, captured at edit rev. An id the server assigned to an
// earlier save is carried over first so a new record is created only once.
func (s *Session[T]) save(entity T, rev uint64) {
	s.mu.Lock()
	entity = s.capability.Adopt(entity, s.entity)
	s.state = StateSaving
	s.inFlight++
	s.mu.Unlock()

	log := s.opts.Logger
	saved, err := s.capability.Save(s.ctx, entity)
	if err != nil {
		log.Err(err).Str("func", "Session.save").Msg("autosave failed")
		s.opts.Notify(app.MsgSaveFailed)
	} else {
		s.mu.Lock()
		if s.rev == rev {
			s.entity = saved
		} else {
			s.entity = s.capability.Adopt(s.entity, saved)
		}
		s.mu.Unlock()

		s.writeSnapshot(saved)
		if s.opts.OnSaved != nil {
			s.opts.OnSaved(saved)
		}
	}

	s.mu.Lock()
	s.inFlight--
	switch {
	case s.debouncer.Pending():
		s.state = StateEditing
	case s.inFlight == 0:
		s.state = StateIdle
	}
	s.mu.Unlock()
}

// writeSnapshot records the saved version locally. A failure here does not
// fail the save.
func (s *Session[T]) writeSnapshot(saved T) {
	snapshot := s.capability.DeriveSnapshot(saved)
	if snapshot.UpdatedAt.IsZero() {
		clock := s.opts.Clock
		if clock == nil {
			clock = utils.RealClock{}
		}
		snapshot.UpdatedAt = clock.Now()
	}

	if err := s.opts.Snapshots.Put(s.ctx, snapshot.Key(), snapshot); err != nil {
		s.opts.Logger.Err(err).Str("func", "Session.writeSnapshot").Str("id", snapshot.ID).Msg("snapshot not stored")
	}
}

// Flush saves a pending edit now instead of waiting for the delay.
func (s *Session[T]) Flush() {
	s.debouncer.Flush()
}

// Close flushes the pending edit. The session must not be edited after.
func (s *Session[T]) Close() {
	s.Flush()
}

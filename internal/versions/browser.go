package versions

import (
	"context"
	"errors"
	"net/url"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

// SelectionQueryKey is the query parameter that carries the selected
// version between openings of the panel.
const SelectionQueryKey = "version"

var (
	ErrUnknownVersion = errors.New("unknown version")
	ErrNoSelection    = errors.New("no version selected")
)

// Browser is the version panel of one entity. The selection is a snapshot
// key and outlives Close; versions are ordered newest first, so Prev moves
// to an older version and Next to a newer one.
type Browser struct {
	source   Source
	entityID string
	logger   *logger.Logger

	live     string
	versions []models.Snapshot
	selected string
	open     bool
}

func NewBrowser(source Source, entityID string, logger *logger.Logger) *Browser {
	return &Browser{source: source, entityID: entityID, logger: logger}
}

// Open loads the versions that differ from liveText. Without a selection,
// or when the selected version is no longer listed, the newest one is
// selected.
func (b *Browser) Open(ctx context.Context, liveText string) error {
	versions, err := ListVersions(ctx, b.source, b.entityID, liveText)
	if err != nil {
		b.logger.Err(err).Str("func", "Browser.Open").Str("entity_id", b.entityID).Msg("failed to load versions")
		return err
	}

	b.live = liveText
	b.versions = versions
	b.open = true
	if b.index() < 0 {
		b.selected = ""
		if len(versions) > 0 {
			b.selected = versions[0].Key()
		}
	}
	return nil
}

func (b *Browser) Close() {
	b.open = false
}

func (b *Browser) IsOpen() bool {
	return b.open
}

func (b *Browser) Versions() []models.Snapshot {
	return b.versions
}

func (b *Browser) Selected() (models.Snapshot, bool) {
	i := b.index()
	if i < 0 {
		return models.Snapshot{}, false
	}
	return b.versions[i], true
}

// SelectedIndex is the position of the selection in Versions, or -1.
func (b *Browser) SelectedIndex() int {
	return b.index()
}

func (b *Browser) Select(key string) error {
	for _, v := range b.versions {
		if v.Key() == key {
			b.selected = key
			return nil
		}
	}
	return ErrUnknownVersion
}

func (b *Browser) HasPrev() bool {
	i := b.index()
	return i >= 0 && i < len(b.versions)-1
}

func (b *Browser) HasNext() bool {
	return b.index() > 0
}

// Prev selects the next older version and reports whether it moved.
func (b *Browser) Prev() bool {
	if !b.HasPrev() {
		return false
	}
	b.selected = b.versions[b.index()+1].Key()
	return true
}

// Next selects the next newer version and reports whether it moved.
func (b *Browser) Next() bool {
	if !b.HasNext() {
		return false
	}
	b.selected = b.versions[b.index()-1].Key()
	return true
}

// SetLiveText updates the text the selection is compared with. The list
// itself is only refreshed by Open.
func (b *Browser) SetLiveText(text string) {
	b.live = text
}

// Diff compares the selected version with the live text.
func (b *Browser) Diff() []Segment {
	selected, ok := b.Selected()
	if !ok {
		return nil
	}
	return Diff(selected.SanitizedContent, b.live)
}

// Restore returns the content of the selected version for the editor.
// Nothing is persisted here; the editor's autosave takes it from there.
func (b *Browser) Restore() (string, error) {
	selected, ok := b.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	return selected.Content, nil
}

// SelectionParam encodes the selection as a query string, empty when
// nothing is selected.
func (b *Browser) SelectionParam() string {
	if b.selected == "" {
		return ""
	}
	return url.Values{SelectionQueryKey: {b.selected}}.Encode()
}

// RestoreSelection reads a selection written by SelectionParam. It applies
// to the next Open when the panel is closed.
func (b *Browser) RestoreSelection(param string) error {
	values, err := url.ParseQuery(param)
	if err != nil {
		return err
	}
	key := values.Get(SelectionQueryKey)
	if key == "" {
		return nil
	}
	if models.SnapshotEntityID(key) != b.entityID {
		return ErrUnknownVersion
	}
	b.selected = key
	return nil
}

func (b *Browser) index() int {
	if b.selected == "" {
		return -1
	}
	for i, v := range b.versions {
		if v.Key() == b.selected {
			return i
		}
	}
	return -1
}

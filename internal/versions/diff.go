package versions

import (
	"errors"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrDiffMismatch is returned by Apply when the segments were not computed
// from the given text.
var ErrDiffMismatch = errors.New("diff does not match text")

type Op int

const (
	Unchanged Op = iota
	Added
	Removed
)

func (o Op) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Segment is a run of whole lines sharing one Op. Text keeps the line
// breaks of the source.
type Segment struct {
	Op   Op
	Text string
}

// Lines splits the segment into lines without their terminators.
func (s Segment) Lines() []string {
	return strings.Split(strings.TrimSuffix(s.Text, "\n"), "\n")
}

// Diff computes a line-level diff turning before into after.
func Diff(before, after string) []Segment {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	segments := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		op := Unchanged
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Added
		case diffmatchpatch.DiffDelete:
			op = Removed
		}
		if n := len(segments); n > 0 && segments[n-1].Op == op {
			segments[n-1].Text += d.Text
			continue
		}
		segments = append(segments, Segment{Op: op, Text: d.Text})
	}
	return segments
}

// Apply rebuilds after from before and the segments of Diff(before, after).
func Apply(before string, segments []Segment) (string, error) {
	var b strings.Builder
	rest := before
	for _, s := range segments {
		switch s.Op {
		case Added:
			b.WriteString(s.Text)
		case Removed, Unchanged:
			if !strings.HasPrefix(rest, s.Text) {
				return "", ErrDiffMismatch
			}
			rest = rest[len(s.Text):]
			if s.Op == Unchanged {
				b.WriteString(s.Text)
			}
		}
	}
	if rest != "" {
		return "", ErrDiffMismatch
	}
	return b.String(), nil
}

// Stats counts added and removed lines.
func Stats(segments []Segment) (added, removed int) {
	for _, s := range segments {
		switch s.Op {
		case Added:
			added += len(s.Lines())
		case Removed:
			removed += len(s.Lines())
		}
	}
	return added, removed
}

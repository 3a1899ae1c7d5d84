package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DueDateParser turns phrases like "next friday" or "tomorrow at 5pm" into
// a point in time relative to the clock.
type DueDateParser struct {
	parser *when.Parser
	clock  utils.Clock
}

func NewDueDateParser(clock utils.Clock) *DueDateParser {
	if clock == nil {
		clock = utils.RealClock{}
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &DueDateParser{parser: w, clock: clock}
}

// Parse returns ErrInvalidDueDate when nothing in phrase looks like a date.
func (p *DueDateParser) Parse(phrase string) (time.Time, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return time.Time{}, ErrInvalidDueDate
	}

	result, err := p.parser.Parse(phrase, p.clock.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDueDate, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, phrase)
	}
	return result.Time.UTC(), nil
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/versions"
	tea "github.com/charmbracelet/bubbletea"
)

// maxVersionRows is how many versions are listed above the diff.
const maxVersionRows = 8

// versionsPanel shows the local history of the edited entity next to a
// diff against the live text.
type versionsPanel struct {
	browser *versions.Browser
}

// openVersionsPanel opens the browser over entityID. param is a selection
// saved by a previous panel for the same entity.
func openVersionsPanel(ctx context.Context, source versions.Source, entityID, liveText, param string, log *logger.Logger) (*versionsPanel, error) {
	browser := versions.NewBrowser(source, entityID, log)
	if param != "" {
		if err := browser.RestoreSelection(param); err != nil {
			log.Err(err).Str("func", "openVersionsPanel").Msg("ignoring saved selection")
		}
	}
	if err := browser.Open(ctx, liveText); err != nil {
		return nil, err
	}
	return &versionsPanel{browser: browser}, nil
}

type versionsAction int

const (
	versionsNone versionsAction = iota
	versionsClose
	versionsRestore
)

// update moves the selection; it reports what the editor has to do.
func (p *versionsPanel) update(msg tea.KeyMsg) versionsAction {
	switch msg.String() {
	case "up", "k":
		p.browser.Next()
	case "down", "j":
		p.browser.Prev()
	case "enter":
		return versionsRestore
	case "esc", "ctrl+o":
		p.browser.Close()
		return versionsClose
	}
	return versionsNone
}

func (p *versionsPanel) view(width int) string {
	all := p.browser.Versions()
	if len(all) == 0 {
		return "No earlier versions"
	}

	var b strings.Builder
	selected := p.browser.SelectedIndex()
	start := max(0, min(selected-maxVersionRows/2, len(all)-maxVersionRows))
	end := min(len(all), start+maxVersionRows)
	for i := start; i < end; i++ {
		v := all[i]
		line := fmt.Sprintf("%s%s  %s", cursor(i == selected), formatTime(v.UpdatedAt), fitText(richtext.Excerpt(v.SanitizedContent, 60), max(20, width-30)))
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	nav := []string{}
	if p.browser.HasNext() {
		nav = append(nav, "↑ newer")
	}
	if p.browser.HasPrev() {
		nav = append(nav, "↓ older")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d of %d  %s", selected+1, len(all), strings.Join(nav, "  "))))
	b.WriteString("\n\n")

	segments := p.browser.Diff()
	added, removed := versions.Stats(segments)
	b.WriteString(fmt.Sprintf("Changes since this version: +%d -%d\n", added, removed))
	b.WriteString(renderDiff(segments))
	return strings.TrimRight(b.String(), "\n")
}

// renderDiff prints one line per diff line, prefixed and colored by its
// operation.
func renderDiff(segments []versions.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		for _, line := range s.Lines() {
			switch s.Op {
			case versions.Added:
				b.WriteString(addedStyle.Render("+ " + line))
			case versions.Removed:
				b.WriteString(removedStyle.Render("- " + line))
			default:
				b.WriteString(unchangedStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

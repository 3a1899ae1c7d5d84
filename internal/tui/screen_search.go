package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/summarium/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchLimit = 20

// searchScreen queries the server index across notes, journals and tasks.
type searchScreen struct {
	input     textinput.Model
	lastQuery string
	results   []models.SearchResult
	total     int
	idx       int
	loading   bool
}

func newSearchScreen() *searchScreen {
	input := textinput.New()
	input.Placeholder = "Search everything"
	input.CharLimit = 256
	input.Width = 60
	input.Focus()
	return &searchScreen{input: input}
}

func (m *mainLoopModel) updateSearch(msg tea.Msg) tea.Cmd {
	s := m.search

	if done, ok := msg.(searchDoneMsg); ok {
		if done.resp.Query != s.lastQuery && done.err == nil {
			return nil
		}
		s.loading = false
		if done.err != nil {
			return toast(humanizeError(done.err))
		}
		s.results = done.resp.Results
		s.total = done.resp.Total
		s.idx = 0
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.search = nil
		return nil
	case "up":
		if s.idx > 0 {
			s.idx--
		}
		return nil
	case "down":
		if s.idx < len(s.results)-1 {
			s.idx++
		}
		return nil
	case "enter":
		query := strings.TrimSpace(s.input.Value())
		if query != s.lastQuery || len(s.results) == 0 {
			return m.runSearch(query)
		}
		if s.idx < len(s.results) {
			return m.openResult(s.results[s.idx])
		}
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (m *mainLoopModel) runSearch(query string) tea.Cmd {
	s := m.search
	s.lastQuery = query
	if query == "" {
		s.results, s.total = nil, 0
		return nil
	}
	s.loading = true

	ctx, search := m.ctx, m.services.SearchService
	return func() tea.Msg {
		resp, err := search.Search(ctx, query, searchLimit)
		if err == nil {
			resp.Query = query
		}
		return searchDoneMsg{resp: resp, err: err}
	}
}

// openResult leaves the search and opens the hit in an editor. Journal
// hits carry the day as their id.
func (m *mainLoopModel) openResult(r models.SearchResult) tea.Cmd {
	m.search = nil
	switch r.Kind {
	case models.KindNote:
		m.tab = tabNotes
		return m.cmdOpenNote(r.ID)
	case models.KindJournal:
		m.tab = tabJournal
		return m.cmdOpenJournal(r.ID)
	case models.KindTask:
		m.tab = tabTasks
		return m.cmdOpenTask(r.ID)
	}
	return nil
}

func (m *mainLoopModel) viewSearch() string {
	s := m.search

	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString("Searching...")
	case s.lastQuery == "":
		b.WriteString(helpStyle.Render("Type a query and press enter"))
	case len(s.results) == 0:
		b.WriteString("No matches")
	default:
		b.WriteString(helpStyle.Render(plural(s.total, "result")))
		b.WriteString("\n\n")
		for i, r := range s.results {
			line := fmt.Sprintf("%s%-8s %s  %s", cursor(i == s.idx), r.Kind, fitText(r.Title, 32), fitText(r.Snippet, max(20, m.width-52)))
			if i == s.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("SEARCH", strings.TrimRight(b.String(), "\n"), "enter: search / open │ ↑/↓: select │ esc: back")
}

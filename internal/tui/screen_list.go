package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/models"
)

type homeTab int

const (
	tabNotes homeTab = iota
	tabJournal
	tabTasks
)

var tabNames = []string{"Notes", "Journal", "Tasks"}

// listRow is one line of a home list. key is the id used to open the
// entity: the note or task id, or the journal day.
type listRow struct {
	kind   models.EntityKind
	key    string
	title  string
	detail string
}

func (r listRow) filterText() string {
	return r.title + " " + r.detail
}

func noteRows(notes []models.Note) []listRow {
	rows := make([]listRow, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, listRow{
			kind:   models.KindNote,
			key:    n.ID,
			title:  n.DisplayTitle(),
			detail: richtext.Excerpt(n.SanitizedContent, 48),
		})
	}
	return rows
}

func journalRows(journals []models.Journal) []listRow {
	rows := make([]listRow, 0, len(journals))
	for _, j := range journals {
		rows = append(rows, listRow{
			kind:   models.KindJournal,
			key:    j.Day,
			title:  j.DisplayTitle(),
			detail: richtext.Excerpt(j.SanitizedContent, 48),
		})
	}
	return rows
}

func taskRows(tasks []models.Task) []listRow {
	rows := make([]listRow, 0, len(tasks))
	for _, t := range tasks {
		detail := fmt.Sprintf("[%s] %s", t.Status, t.Priority)
		if t.DueDate != nil {
			detail += " due " + t.DueDate.Local().Format("Jan 2 15:04")
		}
		rows = append(rows, listRow{
			kind:   models.KindTask,
			key:    t.ID,
			title:  t.DisplayTitle(),
			detail: detail,
		})
	}
	return rows
}

// filterRows keeps the rows that fuzzy-match query.
func filterRows(rows []listRow, query string) []listRow {
	return service.FilterList(rows, strings.TrimSpace(query), listRow.filterText)
}

func renderRows(rows []listRow, idx, width int) string {
	if len(rows) == 0 {
		return "Nothing here yet"
	}
	titleWidth := 32
	if width > 0 && width < 80 {
		titleWidth = max(12, width/3)
	}

	var b strings.Builder
	for i, row := range rows {
		line := fmt.Sprintf("%s%-*s  %s", cursor(i == idx), titleWidth, fitText(row.title, titleWidth), row.detail)
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTabs(active homeTab) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if homeTab(i) == active {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

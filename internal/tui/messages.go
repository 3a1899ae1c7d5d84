package tui

import (
	"github.com/MKhiriev/summarium/models"
)

// NavigateTo switches the page of RootModel. Payload, when set, is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type LoginResult struct {
	Err   error
	Login string
	Token models.Token
}

type RegisterResult struct {
	Err   error
	Login string
	Token models.Token
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type journalsLoadedMsg struct {
	journals []models.Journal
	err      error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type searchDoneMsg struct {
	resp models.SearchResponse
	err  error
}

// toastMsg shows a transient notification at the bottom of the screen.
type toastMsg struct {
	text string
}

type clearToastMsg struct {
	seq int
}

type deletedMsg struct {
	kind models.EntityKind
	err  error
}

type versionInfoMsg struct {
	version string
	err     error
}

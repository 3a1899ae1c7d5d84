// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's connection to the Summarium
// server.
//
// [ServerAdapter] hides the REST protocol from the client services. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/summarium/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the Summarium server.
// Implementations attach the bearer token, sign request bodies and map
// transport errors to the sentinels of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)
	// Token returns the stored bearer token or "".
	Token() string

	// Register creates the account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)
	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Token, error)
	// Logout revokes the stored token on the server and forgets it.
	Logout(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)

	ListNotes(ctx context.Context, archived bool) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	SaveNote(ctx context.Context, id string, req models.SaveNoteRequest) (models.Note, error)
	ArchiveNote(ctx context.Context, id string, archived bool) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListJournals(ctx context.Context) ([]models.Journal, error)
	// GetJournal follows the server's redirect for a malformed day, so the
	// returned entry may belong to another day than requested.
	GetJournal(ctx context.Context, day string) (models.Journal, error)
	SaveJournal(ctx context.Context, day string, req models.SaveJournalRequest) (models.Journal, error)
	DeleteJournal(ctx context.Context, day string) error

	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	SaveTask(ctx context.Context, id string, req models.SaveTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListActivities(ctx context.Context, taskID string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, taskID string, req models.CreateActivityRequest) (models.Activity, error)
	DeleteActivity(ctx context.Context, id string) error

	Search(ctx context.Context, query string, limit int) (models.SearchResponse, error)

	// Completion streams the continuation of prompt into onDelta.
	Completion(ctx context.Context, prompt string, onDelta func(string)) error
	// Tools streams the assistant's answer; the server may create tasks
	// while producing it.
	Tools(ctx context.Context, messages []models.ChatMessage, onDelta func(string)) error
	Suggestion(ctx context.Context, query string) (string, error)
	// Transcribe uploads audio and streams the transcript. Cancelling ctx
	// aborts the upload and the stream.
	Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string)) error
	Speech(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error)
}

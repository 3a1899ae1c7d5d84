// Package http serves the Summarium REST API with chi.
//
// Register, login and /api/version are public. Everything else
// requires a bearer token and is scoped to the signed-in user: notes and
// their archive flag, journals keyed by day, tasks with their activity log,
// server search and the AI endpoints. Completion, chat and transcription
// answers are streamed as plain text.
//
// Every request gets a trace id and an access log line. Bodies are gzip
// aware and, when the server has a hash key, HashSHA256 signed.
package http

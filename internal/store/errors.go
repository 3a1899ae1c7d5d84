package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when an entity does not exist or belongs to
	// another user. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("entity was not found")

	// ErrSnapshotNotFound is returned by the local snapshot store for an
	// unknown key.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrAudioNotStored is returned when synthesized audio could not be
	// written to the bucket or directory.
	ErrAudioNotStored = errors.New("audio was not stored")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

package service

import "errors"

// Credential failures.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrAccountInactive = errors.New("account inactive")
	ErrAccountLocked   = errors.New("account locked")
	ErrUsernameTaken   = errors.New("username taken")
)

// Session and gate failures.
var (
	ErrAuthMissing            = errors.New("access token missing")
	ErrAuthBlank              = errors.New("access token blank")
	ErrInvalidAccessToken     = errors.New("invalid access token")
	ErrAccessTokenExpired     = errors.New("access token expired")
	ErrInvalidTokens          = errors.New("access or refresh token incorrect")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrConcurrentModification = errors.New("session modified concurrently")
	ErrSessionNotFound        = errors.New("session not found")
)

// Resource failures.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrInvalidCompleted    = errors.New("completed filter must be Y or N")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("file type not supported")
	ErrFilenameTaken       = errors.New("filename taken")
	ErrImageFileMissing    = errors.New("image file missing")
	ErrFileStore           = errors.New("file store failure")

	// ErrReadAfterWrite means a row written inside the current transaction
	// could not be read back.
	ErrReadAfterWrite = errors.New("row missing after write")

	// ErrInconsistentState means a database change and its file change could
	// not both be undone. The housekeeping pass reports the drift.
	ErrInconsistentState = errors.New("database and file store out of sync")
)

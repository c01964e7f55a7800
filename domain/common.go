package domain

import (
	"errors"
)

const (
	DefaultPageSize = 8
	HighlightSize   = 4
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token is invalid"
	MessageSomethingWentWrong   = "Sorry, something went wrong!"

	// Error kinds. Every feature error wraps exactly one of these so the
	// HTTP layer can pick a status code with errors.Is.
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnauthorized    = errors.New("not permitted")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")

	ErrParseUUID     = NewError(ErrInvalidInput, "failed to parse UUID")
	ErrTokenNotFound = NewError(ErrUnauthenticated, "token not found")
	ErrTokenExpired  = NewError(ErrUnauthenticated, "token expired")
	ErrTokenInvalid  = NewError(ErrUnauthenticated, "token invalid")
	ErrAccountGone   = NewError(ErrUnauthenticated, "account no longer exists")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with the given message that matches kind under errors.Is.
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

type (
	// Viewer is the identity behind the current request.
	Viewer struct {
		UserID        string
		Authenticated bool
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		Count      int   `json:"count"`
	}
)

func Anonymous() Viewer {
	return Viewer{}
}

func AuthenticatedViewer(userID string) Viewer {
	return Viewer{UserID: userID, Authenticated: userID != ""}
}

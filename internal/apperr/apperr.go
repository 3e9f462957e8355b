package apperr

import (
	"errors"
	"net/http"
)

const (
	MsgErrorOccurred        = "Error occurs"
	MsgAccessDenied         = "Access Denied"
	MsgMissingGameChat      = "Missing game chat endpoint"
	MsgMissingPlayFab       = "Missing playfab credentials"
	MsgMissingStorage       = "Missing storage information."
	MsgMissingCredentials   = "Missing app credentials"
	MsgSheetNotExists       = "Spreadsheets does not exists."
	MsgSendEmailFailed      = "Request to send email reminder failed"
	MsgGameSessionNotFound  = "Game session not found"
	MsgInvalidDateFormat    = "Dates must be formatted according to ISO8601"
	MsgInvalidFilterValue   = "Invalid filter value"
	MsgUnsupportedMediaType = "Unsupported file type"
)

// Error is an error that knows which HTTP status it should be reported with.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return MsgErrorOccurred
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, msg string) *Error {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &Error{Code: code, Message: msg}
}

func Wrap(code int, msg string, err error) *Error {
	e := New(code, msg)
	e.Err = err
	return e
}

func Validation(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

func Permission(msg string) *Error {
	return New(http.StatusUnauthorized, msg)
}

func Config(msg string) *Error {
	return New(http.StatusInternalServerError, msg)
}

// Backend reports a failure returned by a remote platform. Codes outside the
// HTTP error range fall back to 500.
func Backend(code int, msg string) *Error {
	if code < http.StatusBadRequest || code > 599 {
		code = http.StatusInternalServerError
	}
	return New(code, msg)
}

func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

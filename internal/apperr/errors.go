// Package apperr defines the failure taxonomy shared by every layer of the
// service and the classifier that turns a failure into an HTTP response.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the response category of a failure.
type Kind string

const (
	KindValidation       Kind = "validation_failed"
	KindMalformedKey     Kind = "malformed_key"
	KindAuth             Kind = "auth_failure"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindUnclassified     Kind = "internal"
)

// Reason narrows down an authentication failure.
type Reason string

const (
	ReasonMissingToken       Reason = "missing_token"
	ReasonInvalidToken       Reason = "invalid_token"
	ReasonInvalidSignature   Reason = "invalid_signature"
	ReasonExpired            Reason = "expired"
	ReasonUnknownUser        Reason = "unknown_user"
	ReasonInvalidCredentials Reason = "invalid_credentials"
)

// Error is a classified failure.
type Error struct {
	Kind   Kind
	Reason Reason // only set for KindAuth
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on Reason when the target names one, so that
// errors.Is(err, ErrAuth) matches every auth failure while
// errors.Is(err, ErrExpired) only matches expired tokens.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// Sentinels for errors.Is.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrMalformedKey = &Error{Kind: KindMalformedKey}
	ErrAuth         = &Error{Kind: KindAuth}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}

	ErrMissingToken       = &Error{Kind: KindAuth, Reason: ReasonMissingToken}
	ErrInvalidToken       = &Error{Kind: KindAuth, Reason: ReasonInvalidToken}
	ErrInvalidSignature   = &Error{Kind: KindAuth, Reason: ReasonInvalidSignature}
	ErrExpired            = &Error{Kind: KindAuth, Reason: ReasonExpired}
	ErrUnknownUser        = &Error{Kind: KindAuth, Reason: ReasonUnknownUser}
	ErrInvalidCredentials = &Error{Kind: KindAuth, Reason: ReasonInvalidCredentials}
)

// Validation reports bad or missing input fields.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: "validation failed: " + fmt.Sprintf(format, args...)}
}

// MalformedRequest reports a request body that could not be decoded.
func MalformedRequest(err error) error {
	return &Error{Kind: KindValidation, Msg: "Malformed request", Err: err}
}

// MalformedKey reports a record key that does not parse.
func MalformedKey(key string, err error) error {
	return &Error{Kind: KindMalformedKey, Msg: "malformatted id", Err: fmt.Errorf("key %q: %w", key, err)}
}

// Auth reports an authentication failure with the given reason.
func Auth(reason Reason, err error) error {
	return &Error{Kind: KindAuth, Reason: reason, Msg: authMessages[reason], Err: err}
}

// Forbidden reports an authenticated caller acting on something it does not own.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

// NotFound reports an absent target.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// MethodNotAllowed reports a known path requested with an unsupported method.
func MethodNotAllowed(method string) error {
	return &Error{Kind: KindMethodNotAllowed, Msg: "method not allowed", Err: fmt.Errorf("method %s", method)}
}

var authMessages = map[Reason]string{
	ReasonMissingToken:       "token missing",
	ReasonInvalidToken:       "token invalid",
	ReasonInvalidSignature:   "token invalid",
	ReasonExpired:            "token expired",
	ReasonUnknownUser:        "user not found",
	ReasonInvalidCredentials: "Invalid username or password",
}

// KindOf returns the Kind of err, KindUnclassified when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

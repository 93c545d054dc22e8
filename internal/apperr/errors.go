package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so the transport layer can map it to a response.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindResourceNotFound
	KindResourcePersistence
	KindAuthentication
	KindAuthorization
	KindInternal
)

var kindInfo = map[Kind]struct {
	status  int
	message string
}{
	KindBadRequest:          {http.StatusBadRequest, "invalid parameters provided"},
	KindResourceNotFound:    {http.StatusNotFound, "no resource found using provided parameters"},
	KindResourcePersistence: {http.StatusConflict, "the resource could not be persisted"},
	KindAuthentication:      {http.StatusUnauthorized, "authentication could not be completed"},
	KindAuthorization:       {http.StatusForbidden, "you do not have permission to access this resource"},
	KindInternal:            {http.StatusInternalServerError, "an unexpected error occurred"},
}

// Status returns the HTTP status associated with the kind.
func (k Kind) Status() int {
	if info, ok := kindInfo[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

func (k Kind) defaultMessage() string {
	if info, ok := kindInfo[k]; ok {
		return info.message
	}
	return kindInfo[KindInternal].message
}

// Error is the error type returned by the workflow services and repositories.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrBadRequest)
// holds for every bad request regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Status returns the HTTP status for the error's kind.
func (e *Error) Status() int { return e.Kind.Status() }

var (
	ErrBadRequest          = &Error{Kind: KindBadRequest, Message: KindBadRequest.defaultMessage()}
	ErrResourceNotFound    = &Error{Kind: KindResourceNotFound, Message: KindResourceNotFound.defaultMessage()}
	ErrResourcePersistence = &Error{Kind: KindResourcePersistence, Message: KindResourcePersistence.defaultMessage()}
	ErrAuthentication      = &Error{Kind: KindAuthentication, Message: KindAuthentication.defaultMessage()}
	ErrAuthorization       = &Error{Kind: KindAuthorization, Message: KindAuthorization.defaultMessage()}
	ErrInternal            = &Error{Kind: KindInternal, Message: KindInternal.defaultMessage()}
)

func newError(kind Kind, msg []string) *Error {
	m := kind.defaultMessage()
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	return &Error{Kind: kind, Message: m}
}

// BadRequest reports malformed or semantically invalid input.
func BadRequest(msg ...string) error { return newError(KindBadRequest, msg) }

// NotFound reports a lookup that yielded no record.
func NotFound(msg ...string) error { return newError(KindResourceNotFound, msg) }

// Persistence reports a write that would violate a business invariant.
func Persistence(msg ...string) error { return newError(KindResourcePersistence, msg) }

// Authentication reports a credential lookup that yielded no record.
func Authentication(msg ...string) error { return newError(KindAuthentication, msg) }

// Authorization reports a caller whose role does not permit the operation.
func Authorization(msg ...string) error { return newError(KindAuthorization, msg) }

// Internal wraps a failure of the persistence collaborator itself.
func Internal(msg string, err error) error {
	e := newError(KindInternal, []string{msg})
	e.Err = err
	return e
}

// StatusOf returns the HTTP status for err, defaulting to 500 for foreign errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of err, or KindInternal for errors not created by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

package apperrors

import "errors"

// Kind is the closed set of failure categories the API distinguishes.
// Controllers map kinds to HTTP status codes through a lookup table; nothing
// in the codebase discriminates errors by message string.
type Kind int

const (
	// KindInternal covers storage and other unclassified failures.
	KindInternal Kind = iota
	// KindNotFound means an entity id did not resolve on read, update or delete.
	KindNotFound
	// KindValidation means the input was rejected before reaching storage.
	KindValidation
	// KindConflict means a storage uniqueness constraint was violated.
	KindConflict
	// KindUnauthorized means credentials or token checks failed.
	KindUnauthorized
	// KindInvariant means state assumed to exist vanished between two
	// statements of the same operation. Treated as a defect, never as a
	// normal client error.
	KindInvariant
)

// Error carries a kind plus the entity context it refers to.
type Error struct {
	Kind    Kind
	Entity  string
	ID      int64
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
	return "erro desconhecido"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a not-found error for the given entity and id. The message
// is supplied by the caller so grammatical gender stays with the entity
// ("Professor não encontrado", "Matéria não encontrada").
func NotFound(entity string, id int64, message string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Message: message}
}

// Validation builds a validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict builds a constraint-violation error.
func Conflict(entity string, message string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: message}
}

// Unauthorized builds a credential/token failure.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Invariant builds an invariant-violation error. These are unreachable in
// normal operation and get logged as severe internal errors when observed.
func Invariant(entity string, id int64, message string) *Error {
	return &Error{Kind: KindInvariant, Entity: entity, ID: id, Message: message}
}

// Wrap attaches an underlying cause to a storage-layer failure.
func Wrap(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unrecognized errors are
// KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool {
	return KindOf(err) == KindInvariant
}

package domain

import (
	"errors"
	"fmt"
)

// Kind classifies every failure rspass can surface. The set is closed:
// boundaries map each fallible filesystem, cryptographic, or version-control
// call to exactly one kind plus a human-readable message.
type Kind int

const (
	// KindInternal is the catch-all for states that should not be reachable,
	// such as malformed internal data. It replaces aborting the process.
	KindInternal Kind = iota

	// KindInitialization indicates the repository could not be created,
	// for example because the path is invalid or already a repository.
	KindInitialization

	// KindPermissionDenied indicates a filesystem right was missing.
	KindPermissionDenied

	// KindNotInitialized indicates a required artifact (repository, key
	// file) does not exist yet.
	KindNotInitialized

	// KindBadConfig indicates a persisted artifact exists but cannot be
	// parsed, for example a corrupted key file.
	KindBadConfig

	// KindInsertion indicates an invalid credential payload or name.
	KindInsertion

	// KindAlreadyExists indicates the target credential already exists.
	KindAlreadyExists

	// KindEncryption indicates the payload could not be sealed.
	KindEncryption

	// KindDecryption indicates a wrong passphrase, tampered ciphertext, or
	// padding mismatch. Partially decrypted output is never returned.
	KindDecryption

	// KindNotFound indicates the named credential does not exist.
	KindNotFound

	// KindRemote indicates a remote registration problem.
	KindRemote

	// KindFetch indicates a transport failure while fetching.
	KindFetch

	// KindPush indicates the push was rejected or failed in transport.
	KindPush

	// KindConfigAlreadySet indicates a second attempt to override a
	// process-wide directory.
	KindConfigAlreadySet
)

var kindNames = map[Kind]string{
	KindInternal:         "internal error",
	KindInitialization:   "initialization error",
	KindPermissionDenied: "permission denied",
	KindNotInitialized:   "not initialized",
	KindBadConfig:        "bad config",
	KindInsertion:        "insertion error",
	KindAlreadyExists:    "already exists",
	KindEncryption:       "encryption error",
	KindDecryption:       "decryption error",
	KindNotFound:         "not found",
	KindRemote:           "remote error",
	KindFetch:            "fetch error",
	KindPush:             "push error",
	KindConfigAlreadySet: "config already set",
}

// String returns the kind name used in logs and CLI prefixes.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "internal error"
}

// Error is the single error type returned by rspass operations: a kind from
// the closed taxonomy plus a message, optionally wrapping a cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// E builds an Error of the given kind with a formatted message.
func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind carried by err, or KindInternal when err does not
// come from this taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

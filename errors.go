package autojson

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure so callers can match on it programmatically
// instead of parsing messages.
type Kind uint8

const (
	// KindJSON is the generic kind: serialization failures and any
	// JSON-related error that is neither a filesystem nor a decode failure.
	KindJSON Kind = iota

	// KindFile covers filesystem failures: missing files or directories,
	// permission problems and other I/O errors.
	KindFile

	// KindDecode means the file content is not syntactically valid JSON.
	// The kind is also reserved for semantic validation failures, but no
	// validation logic exists; nothing produces that variant today.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDecode:
		return "decode"
	default:
		return "json"
	}
}

// Error is the failure type returned by every store operation. Shaped like
// os.PathError: the operation, the offending path and the underlying cause
// are structured fields, and all three appear in the message.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "read", "write", "load"
	Path string // offending file or directory; may be empty
	Err  error  // underlying cause
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("autojson: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("autojson: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, unwrapping as needed. The second return
// is false when err was not produced by this package.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsFileError reports whether err is a filesystem failure.
func IsFileError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindFile
}

// IsDecodeError reports whether err means a file did not hold valid JSON.
func IsDecodeError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindDecode
}

func fileError(op, path string, err error) *Error {
	return &Error{Kind: KindFile, Op: op, Path: path, Err: err}
}

func decodeError(op, path string, err error) *Error {
	return &Error{Kind: KindDecode, Op: op, Path: path, Err: err}
}

func jsonError(op, path string, err error) *Error {
	return &Error{Kind: KindJSON, Op: op, Path: path, Err: err}
}

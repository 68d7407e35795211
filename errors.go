package huffbmp

import (
	"fmt"
)

// ErrorKind discriminates the ways a compressed container can be rejected.
type ErrorKind byte

const (
	// TruncatedInput: the buffer ends before a fixed field, the declared
	// tree blob, or the passthrough header.
	TruncatedInput ErrorKind = iota + 1

	// MalformedTree: the tree blob does not describe a valid tree.
	MalformedTree

	// EmptyAlphabetMismatch: a non-zero payload length was declared but the
	// tree is empty.
	EmptyAlphabetMismatch

	// CorruptPayload: the packed bits ran out before the declared number of
	// symbols were decoded.
	CorruptPayload

	// SizeLimitExceeded: the declared payload length is larger than the
	// configured maximum.
	SizeLimitExceeded
)

var kindNames = [...]string{
	TruncatedInput:        "truncated input",
	MalformedTree:         "malformed tree",
	EmptyAlphabetMismatch: "empty alphabet mismatch",
	CorruptPayload:        "corrupt payload",
	SizeLimitExceeded:     "size limit exceeded",
}

// String returns a short description of the kind.
func (kind ErrorKind) String() string {
	if int(kind) < len(kindNames) && kindNames[kind] != "" {
		return kindNames[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(kind))
}

// FormatError is returned when a compressed container or tree blob cannot be
// decoded.  Corruption is never transient, so none of these are retried.
type FormatError struct {
	Kind   ErrorKind
	Offset int
	Detail string
}

// Error fulfills the error interface.
func (e *FormatError) Error() string {
	if e.Detail == "" {
		return "huffbmp: " + e.Kind.String()
	}
	return fmt.Sprintf("huffbmp: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Is matches any *FormatError of the same Kind, so that the Err* sentinels
// work with errors.Is.
func (e *FormatError) Is(target error) bool {
	other, ok := target.(*FormatError)
	return ok && other.Kind == e.Kind
}

var (
	ErrTruncatedInput        error = &FormatError{Kind: TruncatedInput}
	ErrMalformedTree         error = &FormatError{Kind: MalformedTree}
	ErrEmptyAlphabetMismatch error = &FormatError{Kind: EmptyAlphabetMismatch}
	ErrCorruptPayload        error = &FormatError{Kind: CorruptPayload}
	ErrSizeLimitExceeded     error = &FormatError{Kind: SizeLimitExceeded}
)

func formatErrorf(kind ErrorKind, offset int, format string, args ...interface{}) error {
	return &FormatError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

var _ error = (*FormatError)(nil)

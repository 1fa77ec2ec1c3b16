package types

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is; the typed wrappers below carry the details.
var (
	// recovery
	ErrInvalidRecoveryID            = errors.New("invalid recovery id")
	ErrInvalidSignatureScalar       = errors.New("invalid signature scalar")
	ErrPublicKeyRecoveryFailed      = errors.New("public key recovery failed")
	ErrPublicKeyDecompressionFailed = errors.New("public key decompression failed")

	// codec
	ErrMalformedContainer = errors.New("malformed address container")
	ErrInvalidLength      = errors.New("invalid address length")

	// text
	ErrInvalidHexLength = errors.New("invalid hex length")
	ErrInvalidHexChar   = errors.New("invalid hex character")
)

// --------------------------------------------------------
// RecoveryError
// --------------------------------------------------------

// RecoveryError is returned by every step of signature recovery.
type RecoveryError struct {
	Kind   error  // one of the recovery kinds above
	Detail string // human readable context, may be empty
	Err    error  // underlying library error, may be nil
}

func (e *RecoveryError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RecoveryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func recoveryError(kind error, err error, format string, args ...any) *RecoveryError {
	return &RecoveryError{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// --------------------------------------------------------
// CodecError
// --------------------------------------------------------

// CodecError is returned when decoding an address from its binary form.
type CodecError struct {
	Kind     error
	Expected int // set for ErrInvalidLength
	Actual   int // set for ErrInvalidLength
	Err      error
}

func (e *CodecError) Error() string {
	if errors.Is(e.Kind, ErrInvalidLength) {
		return fmt.Sprintf("%v: expected %d bytes, got %d", e.Kind, e.Expected, e.Actual)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func lengthError(actual int) *CodecError {
	return &CodecError{Kind: ErrInvalidLength, Expected: AddressLength, Actual: actual}
}

func malformed(err error) *CodecError {
	return &CodecError{Kind: ErrMalformedContainer, Err: err}
}

// --------------------------------------------------------
// ParseError
// --------------------------------------------------------

// ParseError is returned when parsing an address from text.
type ParseError struct {
	Kind  error
	Input string
	Pos   int // offending character for ErrInvalidHexChar, -1 otherwise
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v %q at position %d", e.Kind, e.Input[e.Pos], e.Pos)
	}
	return fmt.Sprintf("%v: want %d characters, got %d", e.Kind, AddressLength*2, len(e.Input))
}

func (e *ParseError) Unwrap() error { return e.Kind }

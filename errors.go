package mzip

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols to encode.
	ErrEmptyInput = errors.New("empty input: nothing to encode")

	// ErrMalformedArtifact is the Kind of every error produced while
	// parsing or decoding an artifact.
	ErrMalformedArtifact = errors.New("malformed artifact")

	// ErrInvalidName is returned when an artifact name cannot be stored in
	// the line-oriented header.
	ErrInvalidName = errors.New("invalid artifact name")
)

// MalformedError describes where an artifact failed to parse.
type MalformedError struct {
	// Offset is where parsing stopped: a byte offset into the header or
	// tree text, or a bit offset into the code stream.
	Offset int
	Msg    string
}

func (e *MalformedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: offset %d: %s", ErrMalformedArtifact.Error(), e.Offset, e.Msg)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedArtifact }

func malformedf(offset int, format string, args ...interface{}) error {
	return &MalformedError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

package parser

import (
	"errors"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// ParseError reports that the input shape is wrong: a missing or duplicated
// prefix, a malformed value, or a bad index. The usage string of the command
// being parsed is attached so the caller can re-prompt with it.
type ParseError struct {
	Message string
	Usage   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Usage != "" {
		return e.Message + "\n" + e.Usage
	}
	return e.Message
}

// MessageInvalidFormat is the generic lead-in for malformed commands.
const MessageInvalidFormat = "Invalid command format!"

// MessageUnknownCommand is returned for an unrecognized command word.
const MessageUnknownCommand = "Unknown command"

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: MessageInvalidFormat, Usage: usage}
}

// rewrap converts a value-object constraint violation into a parse error so
// that no domain error escapes the parsing layer.
func rewrap(err error, usage string) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Usage == "" {
			pe.Usage = usage
		}
		return pe
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return &ParseError{Message: de.Message, Usage: usage}
	}
	return &ParseError{Message: err.Error(), Usage: usage}
}

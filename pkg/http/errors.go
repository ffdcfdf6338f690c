package http

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestTooLarge is returned by Decoder.ReadBlock when no blank line
	// terminates the header block within MaxHeaderBytes.
	ErrRequestTooLarge = errors.New("http: request header block too large")

	// ErrConnDropped is returned by Decoder.ReadBlock when the peer closes the
	// connection before a complete header block arrives.
	ErrConnDropped = errors.New("http: connection closed by peer")
)

// ParseError is a request rejected by Parse. StatusCode is the HTTP status
// the server answers with; Message is the text shown on the error page.
type ParseError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("http: %d: %s", e.StatusCode, e.Message)
}

func newParseError(code int, format string, args ...interface{}) *ParseError {
	return &ParseError{StatusCode: code, Message: fmt.Sprintf(format, args...)}
}

package http

import (
	"strconv"
	"time"
)

// ServerName is the value of the Server header on every response.
const ServerName = "shape-httpd"

// DateLayout formats the Date header. It carries no zone; the server's
// local clock is used.
const DateLayout = "Mon, 02 Jan 2006 15:04:05"

// DefaultContentType is used when the content type of a file is unknown.
const DefaultContentType = "application/octet-stream"

// errorContentType is the content type of error pages.
const errorContentType = "text/html"

// NewResponse builds a response with the fixed header set, in order: Date,
// Server, Connection, Content-Length, Content-Type.
func NewResponse(statusCode int, body []byte, contentType string, date time.Time) *Response {
	if contentType == "" {
		contentType = DefaultContentType
	}
	return &Response{
		StatusCode: statusCode,
		Headers: Headers{
			{Key: "Date", Value: date.Format(DateLayout)},
			{Key: "Server", Value: ServerName},
			{Key: "Connection", Value: "close"},
			{Key: "Content-Length", Value: strconv.Itoa(len(body))},
			{Key: "Content-Type", Value: contentType},
		},
		Body: body,
	}
}

// ErrorResponse builds a response whose body is the error page for
// statusCode and text.
func ErrorResponse(statusCode int, text string, date time.Time) *Response {
	return NewResponse(statusCode, ErrorPage(statusCode, text), errorContentType, date)
}

// ParseErrorResponse builds the error response for a request Parse rejected.
func ParseErrorResponse(err *ParseError, date time.Time) *Response {
	return ErrorResponse(err.StatusCode, err.Message, date)
}

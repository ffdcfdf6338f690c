// Package http implements the HTTP/1.x pieces of a small static file server:
// a request parser with fixed acceptance rules, a percent-decoder, a
// document-root path resolver and a response encoder.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
// A Decoder or Encoder is bound to one connection and must not be shared.
//
// # Request Lifecycle
//
//   - NewDecoder(conn).ReadBlock - read the header block, capped at MaxHeaderBytes
//   - Parse - turn the block into a *Request or a *ParseError carrying a status code
//   - Resolve / Resolver.Resolve - map the request path onto the document root
//   - NewResponse / ErrorResponse + Encoder.Encode - write exactly one response
package http

import (
	"strconv"
	"strings"
)

// Request represents a parsed HTTP/1.x request.
//
// A Request is built only by Parse and is not modified afterwards.
type Request struct {
	Method       string            // "GET" or "HEAD"; Parse rejects everything else
	RawPath      string            // request-target as sent, query included
	Version      string            // "HTTP/1.1"; empty for a two-word request line
	VersionMajor int               // 0 for a two-word request line
	VersionMinor int               // 9 for a two-word request line
	Headers      map[string]string // keys as sent; the last duplicate wins
}

// IsHead reports whether the response to r must omit its body.
func (r *Request) IsHead() bool { return r.Method == MethodHead }

// Response represents an HTTP/1.1 response.
type Response struct {
	StatusCode   int     // 200, 404, etc.
	Headers      Headers // ordered headers
	Body         []byte  // raw body (nil if none)
	SuppressBody bool    // HEAD: send headers only, Content-Length still reflects Body
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of HTTP headers.
// Lookups ignore case; keys keep the case they were added with.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// Target is the result of resolving a request path against a document root.
type Target struct {
	FilesystemPath string // empty when the path was rejected as a traversal attempt
	Query          string // text after the first '?', unused when serving files
}

// Blocked reports whether the path was rejected and must be answered as not found.
func (t Target) Blocked() bool { return t.FilesystemPath == "" }

// Package fastparser implements the header-block scanner used by the request
// parser. It decodes raw bytes as Latin-1, splits them into CRLF-delimited
// lines and splits header lines into key/value pairs without building any
// intermediate representation.
package fastparser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Block is a scanned request header block.
type Block struct {
	RequestLine string
	Headers     []Header
}

// Header is a key-value pair in the order it appeared on the wire.
type Header struct {
	Key   string
	Value string
}

// LineError reports a header line that could not be split into a key and value.
type LineError struct {
	Line int    // 1-indexed line number; the request line is line 1
	Text string // the offending line
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("http: parse error at line %d: malformed header line (no \": \"): %q", e.Line, e.Text)
}

// Parser scans a Latin-1 decoded header block line by line.
type Parser struct {
	data   string
	pos    int
	length int
	line   int // 1-indexed line number for error reporting
}

// NewParser creates a new scanner for raw. The bytes are decoded as Latin-1
// and any trailing CR and LF characters are dropped.
func NewParser(raw []byte) *Parser {
	data := strings.TrimRight(Latin1(raw), "\r\n")
	return &Parser{
		data:   data,
		pos:    0,
		length: len(data),
		line:   1,
	}
}

// ParseBlock splits the block into the request line and its header lines.
// Later headers with the same key are kept; it is up to the caller to decide
// which one wins.
func (p *Parser) ParseBlock() (*Block, error) {
	requestLine := p.RequestLine()

	headers, err := p.Headers()
	if err != nil {
		return nil, err
	}

	return &Block{
		RequestLine: requestLine,
		Headers:     headers,
	}, nil
}

// RequestLine returns the first line of the block, or "" once the scanner
// has moved past it.
func (p *Parser) RequestLine() string {
	if p.line != 1 {
		return ""
	}
	return p.readLine()
}

// Headers splits every line after the request line once on ": ".
func (p *Parser) Headers() ([]Header, error) {
	if p.line == 1 {
		p.readLine()
	}
	headers := make([]Header, 0, 8)

	for p.pos < p.length {
		lineNo := p.line
		line := p.readLine()

		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, &LineError{Line: lineNo, Text: line}
		}
		headers = append(headers, Header{Key: internHeaderName(key), Value: strings.Clone(value)})
	}

	return headers, nil
}

// readLine reads up to the next CRLF, advancing pos past it.
// A bare CR or LF is ordinary line content.
func (p *Parser) readLine() string {
	rest := p.data[p.pos:]
	i := strings.Index(rest, "\r\n")
	if i < 0 {
		p.pos = p.length
		p.line++
		return rest
	}
	p.pos += i + 2
	p.line++
	return rest[:i]
}

// Latin1 decodes b as ISO-8859-1: every byte becomes the code point of the
// same value. It never fails.
func Latin1(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b) + len(b)/2)
	for _, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			continue
		}
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

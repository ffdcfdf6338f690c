package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shapestone/shape-httpd/internal/fastparser"
	"github.com/shapestone/shape-httpd/internal/tokenizer"
)

// Parse parses a request header block (request line, header lines and the
// terminating blank line) into a Request.
//
// The block is decoded as Latin-1, so any byte sequence is accepted as input.
// Checks run in a fixed order and the first failure is returned as a
// *ParseError:
//
//   - request line must have two or three words (400)
//   - every header line must contain ": " (400)
//   - a version must look like HTTP/<int>.<int> (400)
//   - the version must be below HTTP/2.0 (505)
//   - the method must be GET or HEAD (405)
//
// Parse returns exactly one of a non-nil *Request or a non-nil error.
func Parse(raw []byte) (*Request, error) {
	p := fastparser.NewParser(raw)

	line := p.RequestLine()
	words := tokenizer.Words(line)

	req := &Request{}
	switch len(words) {
	case 3:
		req.Method, req.RawPath, req.Version = words[0], words[1], words[2]
	case 2:
		req.Method, req.RawPath = words[0], words[1]
		req.VersionMajor, req.VersionMinor = 0, 9
	default:
		return nil, newParseError(StatusBadRequest, "Bad request syntax (%q)", line)
	}
	req.Method = fastparser.InternMethod(req.Method)

	headers, err := p.Headers()
	if err != nil {
		var le *fastparser.LineError
		if errors.As(err, &le) {
			return nil, newParseError(StatusBadRequest, "Bad header line (%q)", le.Text)
		}
		return nil, newParseError(StatusBadRequest, "Bad request syntax (%q)", line)
	}
	req.Headers = make(map[string]string, len(headers))
	for _, h := range headers {
		req.Headers[h.Key] = h.Value
	}

	if req.Version != "" {
		major, minor, ok := parseVersion(req.Version)
		if !ok {
			return nil, newParseError(StatusBadRequest, "Bad request version (%q)", req.Version)
		}
		if major > 2 || (major == 2 && minor >= 0) {
			return nil, newParseError(StatusHTTPVersionNotSupported, "Invalid HTTP version (%s)", strings.TrimPrefix(req.Version, "HTTP/"))
		}
		req.VersionMajor, req.VersionMinor = major, minor
	}

	if !methodAllowed(req.Method) {
		return nil, newParseError(StatusMethodNotAllowed, "Method not allowed (%q)", req.Method)
	}

	return req, nil
}

// parseVersion splits "HTTP/<major>.<minor>" into its two numbers.
func parseVersion(v string) (major, minor int, ok bool) {
	rest, found := strings.CutPrefix(v, "HTTP/")
	if !found {
		return 0, 0, false
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

func methodAllowed(method string) bool {
	return method == MethodGet || method == MethodHead
}

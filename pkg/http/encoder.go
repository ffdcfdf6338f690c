package http

import "fmt"

// appendResponse serializes a Response to HTTP/1.1 wire format.
// It appends the status line, the headers in order, the blank line and,
// unless SuppressBody is set, the body.
func appendResponse(buf []byte, resp *Response) ([]byte, error) {
	reason := StatusText(resp.StatusCode)
	if reason == "" {
		return nil, fmt.Errorf("http: unsupported status code %d", resp.StatusCode)
	}

	buf = appendStatusLine(buf, resp.StatusCode, reason)
	buf = appendHeaders(buf, resp.Headers)
	buf = appendCRLF(buf) // empty line before body

	if !resp.SuppressBody && len(resp.Body) > 0 {
		buf = append(buf, resp.Body...)
	}

	return buf, nil
}

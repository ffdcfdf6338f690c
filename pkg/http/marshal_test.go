package http

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarshal_StatusLines(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{StatusOK, "HTTP/1.1 200 OK\r\n"},
		{StatusBadRequest, "HTTP/1.1 400 Bad Request\r\n"},
		{StatusForbidden, "HTTP/1.1 403 Forbidden\r\n"},
		{StatusNotFound, "HTTP/1.1 404 Not Found\r\n"},
		{StatusMethodNotAllowed, "HTTP/1.1 405 Method Not Allowed\r\n"},
		{StatusInternalServerError, "HTTP/1.1 500 Internal Server Error\r\n"},
		{StatusHTTPVersionNotSupported, "HTTP/1.1 505 HTTP Version Not Supported\r\n"},
	}
	for _, tt := range tests {
		data, err := Marshal(NewResponse(tt.code, nil, "", fixedDate))
		if err != nil {
			t.Fatalf("Marshal(%d) error = %v", tt.code, err)
		}
		if !strings.HasPrefix(string(data), tt.want) {
			t.Errorf("Marshal(%d) = %q, want prefix %q", tt.code, data, tt.want)
		}
	}
}

func TestMarshal_HeaderOrder(t *testing.T) {
	data, err := Marshal(NewResponse(StatusOK, []byte("hi"), "text/html", fixedDate))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	head, body, ok := strings.Cut(string(data), "\r\n\r\n")
	if !ok {
		t.Fatalf("no blank line in %q", data)
	}
	lines := strings.Split(head, "\r\n")
	wantKeys := []string{"Date", "Server", "Connection", "Content-Length", "Content-Type"}
	if len(lines) != len(wantKeys)+1 {
		t.Fatalf("got %d header lines, want %d: %q", len(lines)-1, len(wantKeys), lines)
	}
	for i, k := range wantKeys {
		if !strings.HasPrefix(lines[i+1], k+": ") {
			t.Errorf("line %d = %q, want key %s", i+1, lines[i+1], k)
		}
	}
	if body != "hi" {
		t.Errorf("body = %q, want hi", body)
	}
}

func TestMarshal_DefaultContentType(t *testing.T) {
	resp := NewResponse(StatusOK, []byte{0}, "", fixedDate)
	if got := resp.Headers.Get("Content-Type"); got != DefaultContentType {
		t.Errorf("Content-Type = %q, want %q", got, DefaultContentType)
	}
}

func TestMarshal_Nil(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("expected error for nil response")
	}
}

func TestMarshal_PoolReuseIsSafe(t *testing.T) {
	a, err := Marshal(NewResponse(StatusOK, []byte("first"), "", fixedDate))
	if err != nil {
		t.Fatal(err)
	}
	saved := append([]byte(nil), a...)
	if _, err := Marshal(NewResponse(StatusNotFound, []byte("second!!"), "", fixedDate)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, saved) {
		t.Error("first result changed after a second Marshal")
	}
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse(StatusNotFound, "Page not found", fixedDate)
	if resp.StatusCode != StatusNotFound {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if got := resp.Headers.Get("Content-Type"); got != "text/html" {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
	if got := resp.Headers.ContentLength(); got != int64(len(resp.Body)) {
		t.Errorf("ContentLength() = %d, want %d", got, len(resp.Body))
	}
	if !bytes.Contains(resp.Body, []byte("<title>404 - Page not found</title>")) {
		t.Errorf("body = %s", resp.Body)
	}
}

func TestParseErrorResponse(t *testing.T) {
	resp := ParseErrorResponse(&ParseError{StatusCode: 505, Message: "Invalid HTTP version (2.0)"}, fixedDate)
	if resp.StatusCode != 505 {
		t.Errorf("StatusCode = %d, want 505", resp.StatusCode)
	}
	if !bytes.Contains(resp.Body, []byte("<p>Invalid HTTP version (2.0)</p>")) {
		t.Errorf("body = %s", resp.Body)
	}
}

func TestErrorPage_EscapesText(t *testing.T) {
	page := string(ErrorPage(400, `Bad request syntax ("<script>")`))
	if strings.Contains(page, "<script>") {
		t.Errorf("page contains unescaped markup: %s", page)
	}
	if !strings.Contains(page, "<h2>400</h2>") {
		t.Errorf("page missing status: %s", page)
	}
}

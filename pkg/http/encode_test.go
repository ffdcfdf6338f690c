package http

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

var fixedDate = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func TestEncoder_Response(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	resp := NewResponse(StatusOK, []byte("Hello"), "text/plain", fixedDate)
	if err := enc.Encode(resp); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "HTTP/1.1 200 OK\r\n" +
		"Date: Tue, 05 Mar 2024 14:07:09\r\n" +
		"Server: shape-httpd\r\n" +
		"Connection: close\r\n" +
		"Content-Length: 5\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Hello"
	if buf.String() != want {
		t.Errorf("Encode() =\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestEncoder_HeadSuppressesBody(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	resp := NewResponse(StatusOK, []byte("0123456789"), "text/plain", fixedDate)
	resp.SuppressBody = true
	if err := enc.Encode(resp); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasSuffix(out, []byte("Content-Length: 10\r\nContent-Type: text/plain\r\n\r\n")) {
		t.Errorf("Encode() = %q, want headers only with Content-Length: 10", out)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("boom") }

func TestEncoder_WriteError(t *testing.T) {
	enc := NewEncoder(failWriter{})
	if err := enc.Encode(NewResponse(StatusOK, nil, "", fixedDate)); err == nil {
		t.Error("expected write error")
	}
}

func TestEncoder_UnsupportedStatus(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(NewResponse(418, nil, "", fixedDate)); err == nil {
		t.Error("expected error for status 418")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for a rejected response", buf.Len())
	}
}

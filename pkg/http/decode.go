package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxHeaderBytes caps the size of a request header block.
const MaxHeaderBytes = 65536

// ReadSize is the number of bytes requested from the connection per read.
const ReadSize = 1024

var blockEnd = []byte("\r\n\r\n")

// Decoder reads request header blocks from an input stream.
// A single Decoder is not safe for concurrent use.
type Decoder struct {
	r        io.Reader
	MaxBytes int // 0 means MaxHeaderBytes
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadBlock reads until the blank line that ends the header block and returns
// the block including that blank line. Bytes received after it are dropped:
// the server never reads request bodies.
//
// It returns ErrRequestTooLarge if the block (blank line included) is longer
// than MaxBytes, and an error wrapping ErrConnDropped if the peer
// closes first. Other read errors (including deadline expiry) are returned
// wrapped.
func (dec *Decoder) ReadBlock() ([]byte, error) {
	limit := dec.MaxBytes
	if limit <= 0 {
		limit = MaxHeaderBytes
	}

	data := make([]byte, 0, ReadSize)
	chunk := make([]byte, ReadSize)
	for {
		n, err := dec.r.Read(chunk)
		from := len(data) - len(blockEnd) + 1
		if from < 0 {
			from = 0
		}
		data = append(data, chunk[:n]...)
		if i := bytes.Index(data[from:], blockEnd); i >= 0 {
			end := from + i + len(blockEnd)
			if end > limit {
				return nil, ErrRequestTooLarge
			}
			return data[:end], nil
		}
		if len(data) > limit {
			return nil, ErrRequestTooLarge
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w after %d bytes", ErrConnDropped, len(data))
			}
			return nil, fmt.Errorf("http: read header block: %w", err)
		}
	}
}

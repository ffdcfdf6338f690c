package http

import (
	"io"
)

// Encoder writes HTTP responses to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of resp to the stream in a single
// Write call.
func (enc *Encoder) Encode(resp *Response) error {
	data, err := Marshal(resp)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

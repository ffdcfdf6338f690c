package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of resp.
//
// Headers are written exactly as given; NewResponse supplies the standard
// set. Marshal fails for a status code missing from the status table.
func Marshal(resp *Response) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	out, err := appendResponse(buf, resp)
	if err != nil {
		*bp = buf
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(out))
	copy(result, out)
	*bp = out
	bufPool.Put(bp)
	return result, nil
}

package http

import "strconv"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendStatusLine appends "HTTP/1.1 STATUS REASON\r\n" to buf.
func appendStatusLine(buf []byte, statusCode int, reason string) []byte {
	buf = append(buf, "HTTP/1.1 "...)
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// appendHeaders appends all headers in "Key: Value\r\n" format.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, h := range headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	return buf
}

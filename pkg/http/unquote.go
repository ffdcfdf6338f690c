package http

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Unquote decodes %XX escapes in s.
//
// Runs of non-ASCII text are copied unchanged. Each ASCII run is unescaped
// to bytes and then decoded as UTF-8, with U+FFFD standing in for invalid
// sequences. A '%' that is not followed by two hex digits is kept literally,
// so Unquote never fails.
//
// Unquote is not idempotent: Unquote("%2525") is "%25", and unquoting that
// again yields "%". Callers must decode a path exactly once.
func Unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		n := asciiPrefix(s)
		if n > 0 {
			writeUTF8(&sb, unquoteBytes(s[:n]))
			s = s[n:]
			continue
		}
		n = nonASCIIPrefix(s)
		sb.WriteString(s[:n])
		s = s[n:]
	}
	return sb.String()
}

// unquoteBytes replaces every valid %XX in s with the byte it encodes.
func unquoteBytes(s string) []byte {
	bits := strings.Split(s, "%")
	if len(bits) == 1 {
		return []byte(s)
	}

	res := make([]byte, 0, len(s))
	res = append(res, bits[0]...)
	for _, item := range bits[1:] {
		if len(item) >= 2 && isHex(item[0]) && isHex(item[1]) {
			res = append(res, unhex(item[0])<<4|unhex(item[1]))
			res = append(res, item[2:]...)
			continue
		}
		res = append(res, '%')
		res = append(res, item...)
	}
	return res
}

// writeUTF8 writes b, replacing each invalid byte with U+FFFD.
func writeUTF8(sb *strings.Builder, b []byte) {
	if utf8.Valid(b) {
		sb.Write(b)
		return
	}
	for _, r := range string(b) {
		sb.WriteRune(r)
	}
}

func asciiPrefix(s string) int {
	i := 0
	for i < len(s) && s[i] < utf8.RuneSelf {
		i++
	}
	return i
}

func nonASCIIPrefix(s string) int {
	i := 0
	for i < len(s) && s[i] >= utf8.RuneSelf {
		i++
	}
	return i
}

// Quote percent-encodes every byte of s except unreserved characters and '/'.
// Unquote(Quote(s)) == s for any valid UTF-8 s.
func Quote(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	case c == '-', c == '.', c == '_', c == '~', c == '/':
		return false
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

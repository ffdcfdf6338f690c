package fastparser

import "strings"

// String interning for common request header names.
//
// Header keys are substrings of the whole decoded block. Interning known
// names (and cloning unknown ones) keeps the block from being retained by a
// long-lived Request.

var headerNames = map[string]string{
	"Accept":            "Accept",
	"Accept-Charset":    "Accept-Charset",
	"Accept-Encoding":   "Accept-Encoding",
	"Accept-Language":   "Accept-Language",
	"Authorization":     "Authorization",
	"Cache-Control":     "Cache-Control",
	"Connection":        "Connection",
	"Content-Length":    "Content-Length",
	"Content-Type":      "Content-Type",
	"Cookie":            "Cookie",
	"DNT":               "DNT",
	"Expect":            "Expect",
	"From":              "From",
	"Host":              "Host",
	"If-Match":          "If-Match",
	"If-Modified-Since": "If-Modified-Since",
	"If-None-Match":     "If-None-Match",
	"If-Range":          "If-Range",
	"Origin":            "Origin",
	"Pragma":            "Pragma",
	"Range":             "Range",
	"Referer":           "Referer",
	"TE":                "TE",
	"Upgrade":           "Upgrade",
	"User-Agent":        "User-Agent",
	"Via":               "Via",
	"X-Forwarded-For":   "X-Forwarded-For",
	"X-Forwarded-Host":  "X-Forwarded-Host",
	"X-Forwarded-Proto": "X-Forwarded-Proto",
	"X-Request-ID":      "X-Request-ID",
	"X-Real-IP":         "X-Real-IP",
}

var methods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST",
	"PUT": "PUT", "DELETE": "DELETE", "CONNECT": "CONNECT",
	"OPTIONS": "OPTIONS", "TRACE": "TRACE", "PATCH": "PATCH",
}

// internHeaderName returns an interned string for known header names.
func internHeaderName(s string) string {
	if v, ok := headerNames[s]; ok {
		return v
	}
	return strings.Clone(s)
}

// InternMethod returns an interned string for known HTTP methods.
func InternMethod(s string) string {
	if v, ok := methods[s]; ok {
		return v
	}
	return strings.Clone(s)
}

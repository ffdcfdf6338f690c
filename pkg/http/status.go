package http

// Request methods the server accepts.
const (
	MethodGet  = "GET"
	MethodHead = "HEAD"
)

// Status codes the server can produce.
const (
	StatusOK                      = 200
	StatusBadRequest              = 400
	StatusForbidden               = 403
	StatusNotFound                = 404
	StatusMethodNotAllowed        = 405
	StatusInternalServerError     = 500
	StatusHTTPVersionNotSupported = 505
)

var statusText = map[int]string{
	StatusOK:                      "OK",
	StatusBadRequest:              "Bad Request",
	StatusForbidden:               "Forbidden",
	StatusNotFound:                "Not Found",
	StatusMethodNotAllowed:        "Method Not Allowed",
	StatusInternalServerError:     "Internal Server Error",
	StatusHTTPVersionNotSupported: "HTTP Version Not Supported",
}

// StatusText returns the reason phrase for code, or "" if the server never
// sends that code.
func StatusText(code int) string {
	return statusText[code]
}

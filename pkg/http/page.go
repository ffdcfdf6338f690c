package http

import (
	"html"
	"strconv"
	"strings"
)

const errorPage = `<html>
<head>
<meta charset="UTF-8">
<title>{status} - {text}</title>
</head>
<body>
<h1>¯\_(ツ)_/¯</h1>
<h2>{status}</h2>
<p>{text}</p>
</body>
</html>
`

// ErrorPage renders the HTML body sent with every error response.
// text is HTML-escaped since parse errors quote client input.
func ErrorPage(status int, text string) []byte {
	r := strings.NewReplacer(
		"{status}", strconv.Itoa(status),
		"{text}", html.EscapeString(text),
	)
	return []byte(r.Replace(errorPage))
}

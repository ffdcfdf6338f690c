package server

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/shapestone/shape-httpd/pkg/http"
)

// NotFoundText is the text of the 404 page.
const NotFoundText = "Page not found"

// TooLargeText is the text of the 400 page sent for an oversized header block.
const TooLargeText = "Request header block too large"

// FileReader reads a whole file.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// FileReaderFunc adapts a function to FileReader.
type FileReaderFunc func(name string) ([]byte, error)

// ReadFile calls f(name).
func (f FileReaderFunc) ReadFile(name string) ([]byte, error) { return f(name) }

// FileServer answers one HTTP/1.x GET or HEAD request per connection with a
// file from Root.
//
// A connection moves through awaitData, parse, resolve, readFile and
// respond, and always ends closed. Any step may jump straight to respond
// with an error page, or to closed when the client has gone.
type FileServer struct {
	Root string

	Files       FileReader          // nil reads from the OS
	Stat        http.StatFS         // nil stats the OS filesystem
	ContentType func(string) string // maps a path to a MIME type; nil uses the extension
	Now         func() time.Time    // nil uses time.Now
}

// NewFileServer returns a FileServer for root backed by the OS.
func NewFileServer(root string) *FileServer {
	return &FileServer{Root: root}
}

// ServeConn handles exactly one request on conn. It does not close conn.
func (s *FileServer) ServeConn(ctx context.Context, conn net.Conn) {
	c := &fileConn{
		srv:  s,
		conn: conn,
		log:  LoggerFrom(ctx),
	}
	for state := awaitData; state != nil; {
		state = state(c)
	}
}

// fileConn is the state of one connection.
type fileConn struct {
	srv  *FileServer
	conn net.Conn
	log  *slog.Logger

	raw    []byte
	req    *http.Request
	target http.Target
	resp   *http.Response
}

// stateFunc is one step of a connection; it returns the next, or nil when
// the connection is finished.
type stateFunc func(*fileConn) stateFunc

func awaitData(c *fileConn) stateFunc {
	raw, err := http.NewDecoder(c.conn).ReadBlock()
	switch {
	case err == nil:
		c.raw = raw
		return parse
	case errors.Is(err, http.ErrRequestTooLarge):
		c.log.Info("header block too large", "limit", http.MaxHeaderBytes)
		c.resp = http.ErrorResponse(http.StatusBadRequest, TooLargeText, c.srv.now())
		return respond
	default:
		c.log.Debug("no request received", "error", err)
		return closed
	}
}

func parse(c *fileConn) stateFunc {
	req, err := http.Parse(c.raw)
	if err != nil {
		var pe *http.ParseError
		if !errors.As(err, &pe) {
			pe = &http.ParseError{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
		c.log.Info("bad request", "status", pe.StatusCode, "error", pe.Message)
		c.resp = http.ParseErrorResponse(pe, c.srv.now())
		return respond
	}
	c.req = req
	c.log = c.log.With("method", req.Method, "path", req.RawPath)
	return resolve
}

func resolve(c *fileConn) stateFunc {
	r := http.Resolver{Root: c.srv.Root, FS: c.srv.Stat}
	c.target = r.Resolve(c.req.RawPath)
	return readFile
}

func readFile(c *fileConn) stateFunc {
	if c.target.Blocked() {
		c.log.Warn("path traversal blocked")
		c.notFound()
		return respond
	}

	name := c.target.FilesystemPath
	body, err := c.srv.files().ReadFile(name)
	if err != nil || len(body) == 0 {
		c.log.Debug("file not served", "file", name, "error", err)
		c.notFound()
		return respond
	}

	c.resp = http.NewResponse(http.StatusOK, body, c.srv.contentType(name), c.srv.now())
	c.resp.SuppressBody = c.req.IsHead()
	return respond
}

func (c *fileConn) notFound() {
	c.resp = http.ErrorResponse(http.StatusNotFound, NotFoundText, c.srv.now())
	c.resp.SuppressBody = c.req.IsHead()
}

func respond(c *fileConn) stateFunc {
	if err := http.NewEncoder(c.conn).Encode(c.resp); err != nil {
		c.log.Debug("write response", "error", err)
		return closed
	}
	c.log.Info("request served", "status", c.resp.StatusCode, "bytes", len(c.resp.Body))
	return closed
}

// closed ends the connection. The caller owns conn and closes it.
func closed(*fileConn) stateFunc {
	return nil
}

func (s *FileServer) files() FileReader {
	if s.Files == nil {
		return FileReaderFunc(os.ReadFile)
	}
	return s.Files
}

func (s *FileServer) contentType(name string) string {
	if s.ContentType != nil {
		return s.ContentType(name)
	}
	return mime.TypeByExtension(filepath.Ext(name))
}

func (s *FileServer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

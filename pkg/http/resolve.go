package http

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IndexFile is served for "/" and for any path that names a directory.
const IndexFile = "index.html"

// StatFS is the filesystem view the resolver needs to detect directories.
type StatFS interface {
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Resolver maps request paths onto files under Root.
//
// Traversal is blocked by substring match, not by comparing canonical paths:
// a path containing "../" (before or after percent-decoding), or ending in
// "/..", is rejected. Nothing else is normalized; "//" and "/./" reach the
// filesystem as sent.
type Resolver struct {
	Root string
	FS   StatFS // nil means the OS filesystem
}

// Resolve maps rawPath onto root using the OS filesystem.
func Resolve(rawPath, root string) Target {
	r := Resolver{Root: root}
	return r.Resolve(rawPath)
}

// Resolve maps a request-target onto a filesystem path. A blocked path yields
// an empty Target.
func (r *Resolver) Resolve(rawPath string) Target {
	path, query, _ := strings.Cut(rawPath, "?")
	if isTraversal(path) {
		return Target{}
	}
	if strings.Contains(path, "%") {
		path = Unquote(path)
		if isTraversal(path) {
			return Target{}
		}
	}

	var name string
	if path == "/" {
		name = filepath.Join(r.Root, IndexFile)
	} else {
		name = r.Root + path
	}
	if fi, err := r.fs().Stat(name); err == nil && fi.IsDir() {
		name = filepath.Join(name, IndexFile)
	}

	return Target{FilesystemPath: name, Query: query}
}

func (r *Resolver) fs() StatFS {
	if r.FS == nil {
		return osFS{}
	}
	return r.FS
}

func isTraversal(path string) bool {
	return strings.Contains(path, "../") || path == ".." || strings.HasSuffix(path, "/..")
}

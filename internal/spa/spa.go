// Package spa holds the front-end route table and serves the single-page
// application shell for it.
package spa

import (
	"errors"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jellydator/ttlcache/v3"
)

const shellFile = "index.html"

var ErrViewNotFound = errors.New("view not found")

// Route maps a front-end path either to a view or to another path.
type Route struct {
	Path     string
	Name     string
	Redirect string
	View     string
}

// IsRedirect reports whether the route only forwards to another path.
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// Table lists the front-end routes. Views are resolved on first visit.
var Table = []Route{
	{Path: "/", Redirect: "/prompts"},
	{Path: "/prompts", Name: "prompts", View: "PromptManage"},
	{Path: "/templates", Name: "templates", View: "TemplateManage"},
}

// File is a static file ready to be written to a response.
type File struct {
	Body        []byte
	ContentType string
}

// Loader reads views and assets from the static directory on demand and keeps
// them in a TTL cache. Nothing is read until the first request.
type Loader struct {
	dir   string
	cache *ttlcache.Cache[string, File]
}

func NewLoader(dir string, ttl time.Duration) *Loader {
	return &Loader{
		dir:   dir,
		cache: ttlcache.New(ttlcache.WithTTL[string, File](ttl)),
	}
}

// View loads the application shell that renders route's view.
func (l *Loader) View(route Route) (File, error) {
	if route.IsRedirect() {
		return File{}, ErrViewNotFound
	}
	return l.load("view:"+route.View, shellFile)
}

// Shell loads the application shell used for front-end paths without a route.
func (l *Loader) Shell() (File, error) {
	return l.load("shell", shellFile)
}

// Asset loads a file below the static directory. name is cleaned so that it
// cannot escape the directory.
func (l *Loader) Asset(name string) (File, error) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		return File{}, ErrViewNotFound
	}
	return l.load("asset:"+clean, clean)
}

func (l *Loader) load(key, name string) (File, error) {
	if item := l.cache.Get(key); item != nil {
		return item.Value(), nil
	}
	full := filepath.Join(l.dir, filepath.FromSlash(name))
	info, err := os.Stat(full)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return File{}, ErrViewNotFound
	case err != nil:
		return File{}, err
	case info.IsDir():
		return File{}, ErrViewNotFound
	}
	body, err := os.ReadFile(full)
	if err != nil {
		return File{}, err
	}
	file := File{Body: body, ContentType: contentType(name, body)}
	l.cache.Set(key, file, ttlcache.DefaultTTL)
	return file, nil
}

// contentType prefers the registered type for the extension, since sniffing
// cannot tell scripts and stylesheets from plain text.
func contentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(body).String()
}

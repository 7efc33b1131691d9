package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fsnotify/fsnotify"

	"github.com/gaurav-prasanna/folio/logging"
)

// Containers the blog views are injected into.
const (
	PostsSelector        = "#blog-posts"
	PostContentSelector  = "#post-content"
	themeToggleSelector  = "#theme-toggle"
	mobileToggleSelector = "#mobile-theme-toggle"
)

// Page is a parsed HTML shell whose containers can be filled before it is
// served.
type Page struct {
	doc *goquery.Document
}

// ParsePage parses an HTML shell.
func ParsePage(html []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// SetContent replaces the inner HTML of every element matching selector.
// It reports whether anything matched.
func (p *Page) SetContent(selector, html string) bool {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return false
	}
	sel.SetHtml(html)
	return true
}

// SetTitle sets the document title, adding a <title> to <head> if needed.
func (p *Page) SetTitle(text string) {
	title := p.doc.Find("head title")
	if title.Length() == 0 {
		p.doc.Find("head").AppendHtml("<title></title>")
		title = p.doc.Find("head title")
	}
	title.SetText(text)
}

// Title returns the current document title.
func (p *Page) Title() string {
	return p.doc.Find("head title").First().Text()
}

// ApplyTheme marks the body for the active theme and labels both toggles.
func (p *Page) ApplyTheme(s Settings) {
	body := p.doc.Find("body")
	if s.Dark() {
		body.AddClass(DarkModeClass)
	} else {
		body.RemoveClass(DarkModeClass)
	}

	desktop, mobile := s.Labels()
	p.doc.Find(themeToggleSelector).SetText(desktop)
	p.doc.Find(mobileToggleSelector).SetText(mobile)
}

// Find exposes the underlying document for assertions and further edits.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// HTML renders the page.
func (p *Page) HTML() (string, error) {
	return p.doc.Html()
}

// ShellCache reads page shells from a directory and keeps their bytes until
// the file changes on disk. Each Load parses a fresh Page.
type ShellCache struct {
	dir    string
	logger logging.Logger

	mu     sync.RWMutex
	shells map[string][]byte
}

func NewShellCache(dir string, logger logging.Logger) *ShellCache {
	return &ShellCache{
		dir:    dir,
		logger: logging.OrNoOp(logger),
		shells: make(map[string][]byte),
	}
}

// Load returns a parsed copy of the named shell.
func (c *ShellCache) Load(name string) (*Page, error) {
	c.mu.RLock()
	data, ok := c.shells[name]
	c.mu.RUnlock()

	if !ok {
		var err error
		data, err = os.ReadFile(filepath.Join(c.dir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("reading page %s: %w", name, err)
		}
		c.mu.Lock()
		c.shells[name] = data
		c.mu.Unlock()
	}
	return ParsePage(data)
}

// Invalidate drops the cached bytes of the named shell and of any shell
// below it when name is a directory.
func (c *ShellCache) Invalidate(name string) {
	prefix := name + "/"
	c.mu.Lock()
	for key := range c.shells {
		if key == name || strings.HasPrefix(key, prefix) {
			delete(c.shells, key)
		}
	}
	c.mu.Unlock()
}

// Watch invalidates cached shells as they change until ctx is done. The
// site directory is watched recursively; directories created later are
// added as they appear.
func (c *ShellCache) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := c.addTree(watcher, c.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := c.addTree(watcher, event.Name); err != nil {
						c.logger.Warn("watching new directory", "dir", event.Name, "error", err)
					}
				}
			}
			name, ok := c.relative(event.Name)
			if !ok {
				continue
			}
			c.logger.Debug("page changed", "file", name, "op", event.Op.String())
			c.Invalidate(name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watcher error", "error", err)
		}
	}
}

// addTree watches root and every directory below it.
func (c *ShellCache) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

// relative maps a watched path to the slash-separated shell name Load uses.
func (c *ShellCache) relative(p string) (string, bool) {
	rel, err := filepath.Rel(c.dir, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

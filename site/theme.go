package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	router "github.com/goliatone/go-router"
	"gopkg.in/yaml.v3"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "theme"

// Theme is the colour scheme of the site.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DarkModeClass is added to <body> while the dark theme is active.
const DarkModeClass = "dark-mode"

// Store persists user preferences as string pairs. Get reports false for a
// key that was never set.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Settings is the resolved theme state of a visitor.
type Settings struct {
	Theme Theme
}

// Dark reports whether the dark theme is active.
func (s Settings) Dark() bool { return s.Theme == Dark }

// Labels returns the text of the desktop and mobile theme toggles. The
// toggle shows the theme it switches to.
func (s Settings) Labels() (desktop, mobile string) {
	if s.Dark() {
		return "☀️", "☀️ theme"
	}
	return "🌙", "🌙 theme"
}

// Init reads the stored theme. Anything but "dark" resolves to light.
func Init(store Store) Settings {
	if store != nil {
		if v, ok := store.Get(ThemeKey); ok && Theme(v) == Dark {
			return Settings{Theme: Dark}
		}
	}
	return Settings{Theme: Light}
}

// Toggle flips the theme of s and persists the result.
func Toggle(store Store, s Settings) (Settings, error) {
	next := Settings{Theme: Dark}
	if s.Dark() {
		next.Theme = Light
	}
	if store == nil {
		return next, nil
	}
	if err := store.Set(ThemeKey, string(next.Theme)); err != nil {
		return s, fmt.Errorf("saving theme: %w", err)
	}
	return next, nil
}

// FileStore keeps preferences in a YAML file. It backs the CLI.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens the store at path. A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores the value and rewrites the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating preferences directory: %w", err)
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// CookieJar is the part of a request context a CookieStore reads and
// writes. router.Context satisfies it.
type CookieJar interface {
	Cookies(key string, defaultValue ...string) string
	Cookie(cookie *router.Cookie)
}

// CookieStore reads preferences from request cookies and writes them as
// response cookies. It backs the HTTP server, one store per request.
type CookieStore struct {
	jar CookieJar
}

func NewCookieStore(jar CookieJar) *CookieStore {
	return &CookieStore{jar: jar}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if s.jar == nil {
		return "", false
	}
	v := s.jar.Cookies(key)
	return v, v != ""
}

func (s *CookieStore) Set(key, value string) error {
	if s.jar == nil {
		return errors.New("cookie store has no request")
	}
	s.jar.Cookie(&router.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}

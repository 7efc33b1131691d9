// Package site serves the static site with the blog views rendered into its
// page shells, the visitor's theme applied, and the contact form accepted.
package site

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	router "github.com/goliatone/go-router"

	"github.com/gaurav-prasanna/folio/core/blog"
	"github.com/gaurav-prasanna/folio/logging"
)

// ServerConfig wires a Server.
type ServerConfig struct {
	Loader   *blog.Loader
	Shells   *ShellCache
	Contact  *ContactHandler
	Dir      string
	ListPage string
	PostPage string
	Logger   logging.Logger
}

// Server routes site requests.
type Server struct {
	loader   *blog.Loader
	shells   *ShellCache
	contact  *ContactHandler
	files    fs.FS
	listPage string
	postPage string
	logger   logging.Logger
}

func NewServer(cfg ServerConfig) *Server {
	return &Server{
		loader:   cfg.Loader,
		shells:   cfg.Shells,
		contact:  cfg.Contact,
		files:    os.DirFS(cfg.Dir),
		listPage: strings.TrimPrefix(cfg.ListPage, "/"),
		postPage: strings.TrimPrefix(cfg.PostPage, "/"),
		logger:   logging.OrNoOp(cfg.Logger),
	}
}

// newFiberServer creates the go-router server every site route is
// registered on.
func newFiberServer() router.Server[*fiber.App] {
	return router.NewFiberAdapter(func(*fiber.App) *fiber.App {
		return fiber.New(fiber.Config{
			AppName:               "folio",
			DisableStartupMessage: true,
			Immutable:             true,
		})
	})
}

// Router returns a go-router server with the site routes registered.
func (s *Server) Router() router.Server[*fiber.App] {
	server := newFiberServer()
	s.Routes(server.Router())
	return server
}

// Routes registers the site routes on r. Specific pages come first; the
// catch-all serves everything else from the site directory.
func (s *Server) Routes(r router.Router[*fiber.App]) {
	r.Get("/"+s.listPage, s.handleList)
	r.Get("/"+s.postPage, s.handlePost)
	r.Post("/theme", s.handleTheme)
	if s.contact != nil {
		r.Post("/contact", s.contact.Handle)
	}
	r.Get("/", s.handleStatic)
	r.Get("/*", s.handleStatic)
}

// Handler returns the routes as a net/http handler.
func (s *Server) Handler() http.Handler {
	return adaptor.FiberApp(s.Router().WrappedRouter())
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := s.Router()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving site", "addr", addr)
		errCh <- server.Serve(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleList(ctx router.Context) error {
	page, err := s.shells.Load(s.listPage)
	if err != nil {
		return s.internalError(ctx, "loading page", err)
	}
	result := s.loader.LoadList(ctx.Context())
	page.SetContent(PostsSelector, result.HTML)
	return s.writePage(ctx, page, http.StatusOK)
}

func (s *Server) handlePost(ctx router.Context) error {
	page, err := s.shells.Load(s.postPage)
	if err != nil {
		return s.internalError(ctx, "loading page", err)
	}

	status := http.StatusOK
	if slug := ctx.Query("post"); slug != "" {
		result, err := s.loader.LoadPost(ctx.Context(), slug)
		if err != nil {
			return ctx.Status(http.StatusBadRequest).SendString(err.Error())
		}
		page.SetContent(PostContentSelector, result.HTML)
		if result.Title != "" {
			page.SetTitle(result.Title)
		}
		if !result.Found {
			status = http.StatusNotFound
		}
	}
	return s.writePage(ctx, page, status)
}

func (s *Server) handleTheme(ctx router.Context) error {
	store := NewCookieStore(ctx)
	if _, err := Toggle(store, Init(store)); err != nil {
		return s.internalError(ctx, "toggling theme", err)
	}

	target := "/"
	if ref := ctx.Referer(); ref != "" {
		target = ref
	}
	return ctx.Redirect(target, http.StatusSeeOther)
}

// handleStatic serves HTML pages with the theme applied and everything else
// straight from the site directory.
func (s *Server) handleStatic(ctx router.Context) error {
	reqPath := ctx.Path()
	name := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if name == "" || strings.HasSuffix(reqPath, "/") {
		name = path.Join(name, "index.html")
	}
	if path.Ext(name) != ".html" {
		return s.serveFile(ctx, name)
	}

	page, err := s.shells.Load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(ctx)
		}
		return s.internalError(ctx, "loading page", err)
	}
	return s.writePage(ctx, page, http.StatusOK)
}

func (s *Server) serveFile(ctx router.Context, name string) error {
	info, err := fs.Stat(s.files, name)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return notFound(ctx)
	}
	if err != nil {
		return s.internalError(ctx, "reading file", err)
	}

	data, err := fs.ReadFile(s.files, name)
	if err != nil {
		return s.internalError(ctx, "reading file", err)
	}
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	ctx.SetHeader("Content-Type", contentType)
	return ctx.Status(http.StatusOK).Send(data)
}

func (s *Server) writePage(ctx router.Context, page *Page, status int) error {
	page.ApplyTheme(Init(NewCookieStore(ctx)))

	html, err := page.HTML()
	if err != nil {
		return s.internalError(ctx, "rendering page", err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Status(status).SendString(html)
}

func (s *Server) internalError(ctx router.Context, msg string, err error) error {
	s.logger.Error(msg, "path", ctx.Path(), "error", err)
	return ctx.Status(http.StatusInternalServerError).SendString("internal server error")
}

func notFound(ctx router.Context) error {
	return ctx.Status(http.StatusNotFound).SendString("404 page not found")
}

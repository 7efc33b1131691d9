package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/site"
)

var flagPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with the blog views filled in",
	Long: `Serve runs a local web server over the site directory. The blog list and post
pages are rendered on request into their HTML shells, the visitor's theme is
applied from a cookie, and contact form posts are appended to the contact
file. Page shells are reloaded when they change on disk.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "Port to listen on (default: serve.port)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logs.Get("site")

	loader, err := newLoader(ctx, appConfig)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(appConfig.Contact.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating contact directory: %w", err)
		}
	}
	contactFile, err := os.OpenFile(appConfig.Contact.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening contact file: %w", err)
	}
	defer contactFile.Close()

	shells := site.NewShellCache(appConfig.Site.Dir, logger)
	if appConfig.Serve.Watch {
		go func() {
			if err := shells.Watch(ctx); err != nil {
				logger.Warn("page watcher stopped", "error", err)
			}
		}()
	}

	srv := site.NewServer(site.ServerConfig{
		Loader:   loader,
		Shells:   shells,
		Contact:  site.NewContactHandler(site.NewInbox(contactFile), logs.Get("contact")),
		Dir:      appConfig.Site.Dir,
		ListPage: appConfig.Site.ListPage,
		PostPage: appConfig.Site.PostPage,
		Logger:   logger,
	})

	port := flagPort
	if port == 0 {
		port = appConfig.Serve.Port
	}
	fmt.Fprintf(os.Stdout, "Serving %s on http://localhost:%d\n", appConfig.Site.Dir, port)
	return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", port))
}

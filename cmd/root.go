// Package cmd implements the CLI commands for folio using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/config"
	"github.com/gaurav-prasanna/folio/logging"
)

var (
	cfgFile   string
	appConfig *config.Config
	logs      *logging.Provider
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio: render and serve a markdown blog",
	Long: `folio turns a directory of markdown posts into the blog views of a static
personal site: a list of summary cards and a full post page.

Posts can be read from a local directory, an HTTP base URL, or a Backblaze B2
bucket. folio can render single posts to HTML, JSON or PDF, import articles
published elsewhere, and serve the site with the blog views filled in.

Usage:
  folio list
  folio render <slug> [flags]
  folio import <url> [flags]
  folio serve [flags]
  folio theme [toggle]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	provider, err := logging.NewProvider(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	appConfig = cfg
	logs = provider
	if cfg.File != "" {
		logs.Get("cmd").Debug("using config file", "file", cfg.File)
	}
	return nil
}

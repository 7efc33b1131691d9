// Package cmd: render command.
// It runs a single post through the pipeline:
// fetch → render → write.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/output"
	"github.com/gaurav-prasanna/folio/core/render"
	"github.com/gaurav-prasanna/folio/logging"
)

// Flag variables.
var (
	flagFormat    string
	flagOutputDir string
	flagStdout    bool
)

var renderCmd = &cobra.Command{
	Use:   "render <slug>",
	Short: "Render a single post to the specified output format",
	Long: `Render fetches posts/<slug>.md from the configured source and converts it
to the specified output format: the full-post HTML fragment, its summary card,
structured JSON, or PDF.

Examples:
  folio render getting-started-with-web-development
  folio render why-i-love-javascript --format json --output_dir ./out
  folio render building-my-first-react-app --format summary --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&flagFormat, "format", "html", "Output format: html, summary, json or pdf")
	renderCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: output.dir or the current directory)")
	renderCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write to standard output instead of a file")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	slug := args[0]

	renderer, err := selectRenderer(flagFormat, logs.Get("render"))
	if err != nil {
		return err
	}

	loader, err := newLoader(ctx, appConfig)
	if err != nil {
		return err
	}

	doc, err := loader.Document(ctx, slug)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagStdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	dir := flagOutputDir
	if dir == "" {
		dir = appConfig.Output.Dir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.Write(doc.Slug, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectRenderer creates the Renderer for the requested format.
func selectRenderer(format string, logger logging.Logger) (core.Renderer, error) {
	switch format {
	case "html":
		engine, err := render.NewEngine(appConfig.Render.Engine)
		if err != nil {
			return nil, err
		}
		return render.NewHTMLRenderer(engine), nil
	case "summary":
		return render.NewSummaryRenderer(appConfig.Site.PostPage), nil
	case "json":
		engine, err := render.NewEngine(appConfig.Render.Engine)
		if err != nil {
			return nil, err
		}
		return render.NewJSONRenderer(engine, logger), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use html, summary, json or pdf", format)
	}
}

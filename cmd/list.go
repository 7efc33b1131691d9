package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/core"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the blog list fragment",
	Long: `List loads every configured post and prints the summary cards that fill the
blog page. Posts that fail to load are skipped; when none load, the
placeholder fragment is printed instead.

Examples:
  folio list
  folio list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Print the post summaries as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader(cmd.Context(), appConfig)
	if err != nil {
		return err
	}

	result := loader.LoadList(cmd.Context())
	out := cmd.OutOrStdout()
	if flagListJSON {
		posts := result.Posts
		if posts == nil {
			posts = []core.PostSummary{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	}
	_, err = fmt.Fprint(out, result.HTML)
	return err
}

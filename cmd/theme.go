package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/site"
)

var themeCmd = &cobra.Command{
	Use:   "theme [toggle]",
	Short: "Show or toggle the stored theme preference",
	Long: `Theme prints the stored colour scheme (light or dark) together with the
labels the theme toggles show. With "toggle" it flips the preference and
saves it to theme.file.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	store, err := site.NewFileStore(appConfig.Theme.File)
	if err != nil {
		return err
	}

	settings := site.Init(store)
	if len(args) == 1 {
		if settings, err = site.Toggle(store, settings); err != nil {
			return err
		}
		logs.Get("theme").Debug("theme toggled", "theme", string(settings.Theme), "file", appConfig.Theme.File)
	}

	desktop, mobile := settings.Labels()
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (toggle: %s, mobile: %s)\n", settings.Theme, desktop, mobile)
	return err
}

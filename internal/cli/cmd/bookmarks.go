package cmd

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/model"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/infrastructure/config"
	"github.com/workbench/navstate/internal/logging"
)

var (
	bookmarksJSON  bool
	bookmarksLimit int
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage named bookmark tokens",
	Long: `Save, list, inspect and delete named bookmark tokens.

Run without arguments to open the interactive bookmark browser. Selecting
a bookmark with enter prints its token to stdout.`,
	Args: cobra.NoArgs,
	RunE: runBookmarks,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

var bookmarksSaveCmd = &cobra.Command{
	Use:   "save <name> <token>",
	Short: "Save a token under a name",
	Long: `Save a token under a name. Saving an existing name replaces its token.
Percent-encoded tokens are decoded before they are stored.`,
	Args: cobra.ExactArgs(2),
	RunE: runBookmarksSave,
}

var bookmarksShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a bookmark and what it restores",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksShow,
}

var bookmarksDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a bookmark",
	Args:    cobra.ExactArgs(1),
	RunE:    runBookmarksDelete,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksSaveCmd, bookmarksShowCmd, bookmarksDeleteCmd)
	bookmarksListCmd.Flags().BoolVar(&bookmarksJSON, "json", false, "output as JSON")
	bookmarksListCmd.Flags().IntVar(&bookmarksLimit, "limit", 0, "maximum bookmarks to show (default from config)")
}

func runBookmarks(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewBookmarksModel(app.Ctx(), app.Theme, model.BookmarksModelConfig{
		BookmarksUC: app.BookmarksUC,
		DecodeUC:    app.DecodeUC,
		MaxListed:   app.Config.Bookmarks.MaxListed,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Follow edits of bookmarks.max_listed while the browser is open.
	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ListLimitMsg{Limit: cfg.Bookmarks.MaxListed})
	})
	if err := app.ConfigManager.Watch(app.Ctx()); err != nil {
		logging.FromContext(app.Ctx()).Debug().Err(err).Msg("config watch unavailable")
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if bm, ok := final.(model.BookmarksModel); ok && bm.Selected != nil {
		fmt.Fprintln(cmd.OutOrStdout(), bm.Selected.Token)
	}
	return nil
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	limit := bookmarksLimit
	if limit <= 0 {
		limit = app.Config.Bookmarks.MaxListed
	}

	items, err := app.BookmarksUC.List(app.Ctx(), limit)
	if err != nil {
		return err
	}

	if bookmarksJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBookmarksCLIRenderer(app.Theme).RenderList(items))
	return nil
}

func runBookmarksSave(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	bm, err := app.BookmarksUC.Save(app.Ctx(), usecase.SaveBookmarkInput{Name: args[0], Token: args[1]})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBookmarksCLIRenderer(app.Theme).RenderSaved(bm))
	return nil
}

func runBookmarksShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	bm, err := app.BookmarksUC.Get(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	plan, err := app.DecodeUC.Execute(app.Ctx(), bm.Token)
	if err != nil {
		return fmt.Errorf("decode bookmark %q: %w", bm.Name, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewBookmarksCLIRenderer(app.Theme).RenderBookmark(bm, plan))
	return nil
}

func runBookmarksDelete(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.BookmarksUC.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBookmarksCLIRenderer(app.Theme).RenderDeleted(args[0]))
	return nil
}

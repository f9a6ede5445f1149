package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/domain/entity"
)

var (
	sessionsJSON  bool
	sessionsLimit int
	sessionsToken bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect saved session snapshots",
	Long: `View and delete the navigation snapshots stored by 'navstate build'.

Each session keeps the last token it produced. 'sessions show' without an
id picks the most recent one.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session snapshot and what it restores",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:     "delete <session-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session snapshot",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionsDelete,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsDeleteCmd)
	sessionsListCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 0, "maximum sessions to show (default from config)")
	sessionsShowCmd.Flags().BoolVar(&sessionsToken, "token", false, "print only the token")
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	limit := sessionsLimit
	if limit <= 0 {
		limit = app.Config.Snapshot.MaxStates
	}

	states, err := app.RestoreUC.List(app.Ctx(), limit)
	if err != nil {
		return err
	}

	if sessionsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(states)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSessionsCLIRenderer(app.Theme).RenderList(states, limit))
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var input usecase.RestoreInput
	if len(args) == 1 {
		input.SessionID = entity.SessionID(args[0])
	}

	out, err := app.RestoreUC.Execute(app.Ctx(), input)
	if errors.Is(err, usecase.ErrNavigationStateNotFound) {
		if input.SessionID == "" {
			return fmt.Errorf("no saved sessions")
		}
		return fmt.Errorf("session %s: %w", input.SessionID, err)
	}
	if err != nil {
		return err
	}

	if sessionsToken {
		fmt.Fprintln(cmd.OutOrStdout(), out.State.Token)
		return nil
	}

	plan, err := app.DecodeUC.Execute(app.Ctx(), out.State.Token)
	if err != nil {
		return fmt.Errorf("decode session token: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewSessionsCLIRenderer(app.Theme).RenderState(out.State, plan))
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	id := entity.SessionID(args[0])
	if err := app.RestoreUC.DeleteSnapshot(app.Ctx(), id); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck)+" "+
		app.Theme.Normal.Render(fmt.Sprintf("Deleted session %s", id)))
	return nil
}

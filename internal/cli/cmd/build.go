package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/domain/bookmark"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/infrastructure/history"
	"github.com/workbench/navstate/internal/infrastructure/script"
	"github.com/workbench/navstate/internal/infrastructure/snapshot"
	"github.com/workbench/navstate/internal/logging"
)

var (
	buildFile    string
	buildHistory bool
	buildSave    string
	buildNoSnap  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Replay a navigation script and print the resulting token",
	Long: `Replay the open and close events of a YAML navigation script and print
the bookmark token the workbench would show afterwards.

When snapshots are enabled the final token is stored under the script's
session id (or a generated one), so 'navstate sessions show' can find it.

Example script:
  session: 20251224_120000_demo
  events:
    - {action: open, kind: perspective, place: Home}
    - {action: open, kind: screen, place: Explorer}
    - {action: open, kind: dock, place: Props, position: W, perspective: Home}`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildFile, "file", "f", "", "navigation script (- for stdin)")
	buildCmd.Flags().BoolVar(&buildHistory, "history", false, "print every token pushed to the history")
	buildCmd.Flags().StringVar(&buildSave, "save", "", "save the final token as a named bookmark")
	buildCmd.Flags().BoolVar(&buildNoSnap, "no-snapshot", false, "do not store the session snapshot")
	_ = buildCmd.MarkFlagRequired("file")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	s, err := readScript(cmd)
	if err != nil {
		return err
	}

	cfg := app.Config
	sessionID := s.SessionID
	if sessionID == "" {
		sessionID = entity.SessionID(logging.GenerateSessionID())
	}
	ctx := logging.WithSessionID(app.Ctx(), string(sessionID))

	maxURLSize := cfg.Navigation.MaxURLSize
	if s.MaxURLSize > 0 {
		maxURLSize = s.MaxURLSize
	}
	defaultPlace := cfg.Navigation.DefaultPlace
	if s.DefaultPlace != "" {
		defaultPlace = s.DefaultPlace
	}

	var svc *snapshot.Service
	var notifier port.DirtyNotifier
	if cfg.Snapshot.Enabled && !buildNoSnap {
		svc = snapshot.NewService(app.SnapshotUC, nil, cfg.Snapshot.IntervalMs)
		notifier = svc
	}

	historian := history.NewMemoryHistorian(0)
	tracker := usecase.NewTrackNavigationUseCase(historian, usecase.TrackNavigationConfig{
		SessionID:    sessionID,
		DefaultPlace: placeFromString(defaultPlace),
		MaxURLSize:   maxURLSize,
		Notifier:     notifier,
	})

	if svc != nil {
		svc.SetProvider(tracker)
		svc.Start(ctx)
	}

	replayErr := script.Replay(ctx, tracker, s)

	if svc != nil {
		if err := svc.Stop(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to store session snapshot")
		}
	}
	if replayErr != nil {
		return fmt.Errorf("replay script: %w", replayErr)
	}

	out := cmd.OutOrStdout()
	if buildHistory {
		for i, token := range historian.Entries() {
			fmt.Fprintf(out, "%3d  %s\n", i+1, token)
		}
	} else {
		fmt.Fprintln(out, tracker.Token())
	}
	return saveBuiltToken(cmd, tracker.Token())
}

func readScript(cmd *cobra.Command) (*script.Script, error) {
	if buildFile == "-" {
		return script.Parse(cmd.InOrStdin())
	}

	f, err := os.Open(buildFile)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return script.Parse(f)
}

func saveBuiltToken(cmd *cobra.Command, token string) error {
	if buildSave == "" {
		return nil
	}
	app := GetApp()
	bm, err := app.BookmarksUC.Save(app.Ctx(), usecase.SaveBookmarkInput{Name: buildSave, Token: token})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.NewBookmarksCLIRenderer(app.Theme).RenderSaved(bm))
	return nil
}

// placeFromString turns "Id?k=v" into a place request. Empty means none.
func placeFromString(s string) entity.PlaceRequest {
	if s == "" {
		return nil
	}
	entry := bookmark.ParseScreenEntry(s)
	place := entity.NewPlaceRequest(entry.Name())
	for _, p := range entry.Params() {
		place.AddParameter(p.Key, p.Value)
	}
	return place
}

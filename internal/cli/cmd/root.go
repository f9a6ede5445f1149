// Package cmd provides Cobra CLI commands for navstate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workbench/navstate/internal/cli"
	"github.com/workbench/navstate/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "navstate",
		Short: "Bookmarkable navigation tokens for workbench sessions",
		Long: `navstate encodes the layout of a workbench (perspective, open and
closed screens, docks, editors) into a compact bookmark token, and
decodes tokens back into what has to be reopened.

Tokens look like:
  Home|Explorer,~Search[WProps,]$Editor?path_uri=...&name==A

Use 'navstate inspect' to decode a token, 'navstate build' to replay a
navigation script, and the bookmarks and sessions subcommands to manage
saved tokens.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}
			var err error
			if app, err = cli.NewApp(configFile); err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// noAppAnnotation marks commands that run without config, logger or storage.
const noAppAnnotation = "navstate/no-app"

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	_, skip := cmd.Annotations[noAppAnnotation]
	return !skip
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/navstate/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the app built for the running command, nil for commands
// annotated with noAppAnnotation.
func GetApp() *cli.App {
	return app
}

// SetBuildInfo must be called before Execute.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

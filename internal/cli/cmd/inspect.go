package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/domain/entity"
)

var (
	inspectJSON bool
	inspectYAML bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <token>",
	Short: "Decode a bookmark token",
	Long: `Decode a bookmark token into the perspective, screens, docks and
editors it describes. The token may be percent-encoded, as copied from
an address bar. Use - to read it from stdin.

Examples:
  navstate inspect 'Home|Explorer,~Search$Log'
  navstate inspect --json 'Home%7CExplorer'
  echo 'Home|[WProps,]' | navstate inspect -`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "output as YAML")
	inspectCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	raw := args[0]
	if raw == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		raw = strings.TrimSpace(string(data))
	}

	plan, err := app.DecodeUC.Execute(app.Ctx(), raw)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	switch {
	case inspectJSON:
		return outputPlanJSON(cmd.OutOrStdout(), plan)
	case inspectYAML:
		return outputPlanYAML(cmd.OutOrStdout(), plan)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewPlanRenderer(app.Theme).Render(plan, ""))
	return nil
}

func outputPlanJSON(w io.Writer, plan *entity.RestorePlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(plan)
}

func outputPlanYAML(w io.Writer, plan *entity.RestorePlan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/infrastructure/config"
)

var (
	configKeysSection string
	configKeysJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location, its JSON schema, and every supported key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file. Editors with TOML schema
support (taplo, Even Better TOML) can use it for completion.`,
	Args:        cobra.NoArgs,
	RunE:        runConfigSchema,
	Annotations: map[string]string{noAppAnnotation: ""},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported config keys with types and defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configKeysCmd)
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only keys of this section")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.GetConfigFile())
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("unknown config section %q", configKeysSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(out.Keys))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/infrastructure/config"
)

var configSchemaOutput string

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Inspect configuration",
	Long:        `Show where configuration and data live, and print the config JSON schema.`,
	Annotations: noDB(),
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config and database paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml, or write it to a file with --output.

Editors with TOML schema support can use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if a.ConfigMgr != nil {
		configFile = a.ConfigMgr.GetConfigFile()
	}

	t := a.Theme
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s %s\n", t.Highlight.Render(styles.IconConfig), t.Subtle.Render(styles.PadRight("config", 9)), t.Normal.Render(configFile))
	fmt.Fprintf(w, "%s %s %s\n", t.Highlight.Render(styles.IconDatabase), t.Subtle.Render(styles.PadRight("database", 9)), t.Normal.Render(a.Config.Database.Path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		if err := config.GenerateSchemaFile(configSchemaOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", configSchemaOutput)
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

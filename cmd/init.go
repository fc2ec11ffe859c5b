package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default retest.yaml configuration file",
		Long: `Create a retest.yaml in the current working directory populated with the
current settings (report, results, exec and log keys) so it can be edited manually.
An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			force, err := cmd.Flags().GetBool(forceFlagName)
			if err != nil {
				return err
			}

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				slog.Error("Failed to write config file", "path", targetPath, "error", err)
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().Bool(forceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

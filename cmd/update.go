package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"retest.dev/pkg/retest/internal/domain"
	m "retest.dev/pkg/retest/internal/model"
)

// updateCmd represents the update command.
var updateCmd = newUpdateCmd()

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update a JUnit report with re-run results",
		Long:  updateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Update(cmd.Context(), updateArgsFromConfig())
		},
	}
}

// updateArgsFromConfig reads the update arguments from viper, so that flags,
// environment and retest.yaml resolve the same way for every command.
func updateArgsFromConfig() domain.UpdateArgs {
	return domain.UpdateArgs{
		Report:  m.Path(viper.GetString(reportConfigKey)),
		Output:  m.Path(viper.GetString(outputConfigKey)),
		Results: parsePaths(viper.GetStringSlice(resultsConfigKey)),
		DryRun:  viper.GetBool(dryRunConfigKey),
	}
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

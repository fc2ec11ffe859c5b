package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"retest.dev/pkg/retest/internal/domain"
	m "retest.dev/pkg/retest/internal/model"
)

// execCmd represents the exec command.
var execCmd = newExecCmd()

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] -- command [args...]",
		Short: "Re-run tests with a command, then update the JUnit report",
		Long:  execLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Exec(cmd.Context(), execArgsFromConfig(args))
		},
	}

	// Flags after the command name belong to the command.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().Int64(timeoutFlagName, int64(defaultExecTimeout.Seconds()), "re-run timeout in seconds (0 uses the 30m runner default)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().String(workdirFlagName, defaultExecWorkdir, "working directory of the re-run command")
	bindFlagToConfig(cmd.Flags().Lookup(workdirFlagName), workdirConfigKey)

	return cmd
}

func execArgsFromConfig(command []string) domain.ExecArgs {
	return domain.ExecArgs{
		UpdateArgs: updateArgsFromConfig(),
		Command:    command,
		WorkDir:    m.Path(viper.GetString(workdirConfigKey)),
		Timeout:    time.Duration(viper.GetInt64(timeoutConfigKey)) * time.Second,
	}
}

func init() {
	rootCmd.AddCommand(execCmd)
}

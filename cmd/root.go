// Package cmd provides the root command and CLI setup for retest.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"retest.dev/pkg/retest/internal/adapter"
	"retest.dev/pkg/retest/internal/controller"
	"retest.dev/pkg/retest/internal/domain"
	m "retest.dev/pkg/retest/internal/model"
)

var reportStore adapter.ReportStore
var resultSource adapter.ResultSource
var testAdapter adapter.TestRunnerAdapter
var orchestrator domain.Orchestrator
var reconciler domain.Reconciler
var workflow domain.Workflow
var ui controller.UI

// reportPathFlag is the JUnit report updated by every command.
var reportPathFlag string

// outputPathFlag is where the updated report goes; empty means in place.
var outputPathFlag string

// resultsFlag lists the result logs of the re-run.
var resultsFlag []string

var dryRunFlag bool
var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	resultSource = adapter.NewResultSource()
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	orchestrator = domain.NewOrchestrator(testAdapter)
	reconciler = domain.NewReconciler(reportStore)
	workflow = domain.NewWorkflow(
		resultSource,
		ui,
		orchestrator,
		reconciler,
	)
}

const resultsHelp = `Result logs are pytest-reportlog JSON lines files (one record per line,
"$report_type": "TestReport") or YAML manifests (.yaml/.yml):

  results:
    - nodeid: tests/test_api.py::TestClient::test_retry
      when: call
      outcome: passed`

const rootLongDescription = `Retest updates a JUnit XML report after failed tests were re-run.
Test cases that failed or errored in the report but passed on re-run lose their
failure/error element and the testsuite failures/errors counters are corrected.
Cases still failing are left untouched.

` + resultsHelp

const updateLongDescription = `Update the report given with --update-xml using the re-run results given
with --results. The report is overwritten unless --output is set.

` + resultsHelp

const execLongDescription = `Run a command that re-runs failed tests, then update the report given with
--update-xml from the result logs given with --results. The command must write
those logs, e.g.:

  retest exec --update-xml report.xml --results rerun.jsonl -- \
      pytest --last-failed --report-log=rerun.jsonl

The exit status is non-zero when the re-run still has failing tests.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "retest",
		Short:        "Update JUnit reports with test re-run results",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(cmd.Name(), logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	if cmd.PersistentFlags().Lookup(reportFlagName) != nil {
		return
	}

	cmd.PersistentFlags().
		StringVarP(
			&reportPathFlag, reportFlagName, "r",
			viper.GetString(reportConfigKey),
			"JUnit XML report to update",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVarP(&outputPathFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "write the updated report here instead of overwriting it")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringArrayVar(&resultsFlag, resultsFlagName, viper.GetStringSlice(resultsConfigKey), "re-run result log (can be repeated, later logs win)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resultsFlagName), resultsConfigKey)

	cmd.PersistentFlags().BoolVar(&dryRunFlag, dryRunFlagName, viper.GetBool(dryRunConfigKey), "show the changes without writing the report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dryRunFlagName), dryRunConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "retest.dev/pkg/retest/internal/model"
)

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"rerun.jsonl"}, []m.Path{m.Path("rerun.jsonl")}},
		{
			"multiple",
			[]string{"first.jsonl", "second.yaml", "logs/third.jsonl"},
			[]m.Path{m.Path("first.jsonl"), m.Path("second.yaml"), m.Path("logs/third.jsonl")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "retest", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{reportFlagName, outputFlagName, resultsFlagName, dryRunFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "retest.log")})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "pytest-reportlog")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, resultSource)
	assert.NotNil(t, testAdapter)
	assert.NotNil(t, orchestrator)
	assert.NotNil(t, reconciler)
	assert.NotNil(t, workflow)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"update", "exec", "init", "version"})
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	var sawContext bool

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sawContext = cmd.Context() != nil
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()

	assert.True(t, sawContext)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}

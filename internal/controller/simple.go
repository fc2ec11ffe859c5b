package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "retest.dev/pkg/retest/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRerunStarted prints the re-run command.
func (s *SimpleUI) DisplayRerunStarted(ctx context.Context, command []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Re-running: %s\n", strings.Join(command, " "))
}

// DisplayRerunFinished prints the re-run output and exit status.
func (s *SimpleUI) DisplayRerunFinished(ctx context.Context, output string, exitCode int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if output != "" {
		s.printf("%s", output)

		if !strings.HasSuffix(output, "\n") {
			s.printf("\n")
		}
	}

	if err != nil {
		s.printf("Re-run aborted: %v\n", err)
		return
	}

	s.printf("Re-run finished with exit code %d\n", exitCode)
}

// DisplayReconciliation prints the cleared cases and the updated counters.
func (s *SimpleUI) DisplayReconciliation(ctx context.Context, rec m.Reconciliation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.mode == ModeRerun {
		s.printf("\nReconciling %s\n", rec.Report)
	}

	if len(rec.Cleared) > 0 {
		s.printf("\n%s", renderClearedTable(rec.Cleared))
	}

	s.printf("failures: %d -> %d, errors: %d -> %d\n",
		rec.OriginalFailures, rec.Failures, rec.OriginalErrors, rec.Errors)
	s.printf("%s\n", describeAction(rec))

	return nil
}

// DisplayDiff prints a unified diff as is.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("No changes.\n")
		return
	}

	s.printf("%s", diff)
}

func renderClearedTable(cleared []m.ClearedCase) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Case", "Cleared"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	failures, errors := 0, 0

	for _, c := range cleared {
		table.Append([]string{c.Identity.SuiteQualifier, c.Identity.CaseName, string(c.Marker)})

		if c.Marker == m.MarkerFailure {
			failures++
		} else {
			errors++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Cases %d", len(cleared)),
		"",
		fmt.Sprintf("%d failure(s), %d error(s)", failures, errors),
	})

	table.Render()

	return tableBuffer.String()
}

func describeAction(rec m.Reconciliation) string {
	prefix := ""
	if rec.DryRun {
		prefix = "(dry run) "
	}

	switch rec.Action {
	case m.ActionWritten:
		return fmt.Sprintf("%supdated report written to %s", prefix, rec.Output)
	case m.ActionCopied:
		return fmt.Sprintf("%sno test recovered, report copied to %s", prefix, rec.Output)
	case m.ActionUnchanged:
		return fmt.Sprintf("%sno test recovered, %s left unchanged", prefix, rec.Report)
	default:
		return ""
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

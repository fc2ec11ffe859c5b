package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "retest.dev/pkg/retest/internal/model"
)

// rerunOutputTail is the number of trailing re-run output lines shown by the TUI.
const rerunOutputTail = 20

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// TUI implements UI using Bubble Tea for the re-run progress and lipgloss for results.
type TUI struct {
	output  io.Writer
	mode    StartMode
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = newStartConfig(options).mode

	return nil
}

// Close stops a still running progress display.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
	t.program = nil
}

// DisplayRerunStarted shows a spinner until DisplayRerunFinished is called.
func (t *TUI) DisplayRerunStarted(ctx context.Context, command []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	program := tea.NewProgram(
		newRerunModel(command),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Re-run progress display stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done
}

// DisplayRerunFinished stops the spinner and shows the tail of the re-run output.
func (t *TUI) DisplayRerunFinished(ctx context.Context, output string, exitCode int, err error) {
	if t.program != nil {
		t.program.Send(rerunFinishedMsg{exitCode: exitCode, err: err})
		<-t.done
		t.program = nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if tail := tailLines(output, rerunOutputTail); tail != "" {
		_, _ = fmt.Fprintln(t.output, faintStyle.Render(tail))
	}
}

// DisplayReconciliation renders the reconciliation summary.
func (t *TUI) DisplayReconciliation(ctx context.Context, rec m.Reconciliation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.mode == ModeRerun {
		_, _ = fmt.Fprintln(t.output)
	}

	_, err := fmt.Fprint(t.output, renderReconciliation(rec))

	return err
}

// DisplayDiff renders a unified diff with added and removed lines colored.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprint(t.output, renderDiff(diff))
}

func renderReconciliation(rec m.Reconciliation) string {
	var b strings.Builder

	title := "Report reconciliation"
	if rec.DryRun {
		title += " (dry run)"
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, c := range rec.Cleared {
		fmt.Fprintf(&b, "  %s %s %s\n",
			okStyle.Render("✓"),
			c.Identity.String(),
			faintStyle.Render("("+string(c.Marker)+" cleared)"),
		)
	}

	if len(rec.Cleared) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  failures %d → %s\n", rec.OriginalFailures, countStyle(rec.Failures).Render(fmt.Sprint(rec.Failures)))
	fmt.Fprintf(&b, "  errors   %d → %s\n", rec.OriginalErrors, countStyle(rec.Errors).Render(fmt.Sprint(rec.Errors)))
	fmt.Fprintf(&b, "\n  %s\n", accentStyle.Render(describeAction(rec)))

	return b.String()
}

func renderDiff(diff string) string {
	if diff == "" {
		return faintStyle.Render("No changes.") + "\n"
	}

	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(titleStyle.Render(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "+"):
			b.WriteString(okStyle.Render(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "-"):
			b.WriteString(failStyle.Render(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(accentStyle.Render(strings.TrimSuffix(line, "\n")))
		default:
			b.WriteString(strings.TrimSuffix(line, "\n"))
		}

		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func countStyle(count int) lipgloss.Style {
	if count == 0 {
		return okStyle
	}

	return failStyle
}

func tailLines(output string, n int) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// rerunFinishedMsg tells the progress model the re-run command returned.
type rerunFinishedMsg struct {
	exitCode int
	err      error
}

// rerunModel is the Bubble Tea model showing a spinner while tests re-run.
type rerunModel struct {
	spinner  spinner.Model
	command  string
	finished bool
	exitCode int
	err      error
}

func newRerunModel(command []string) rerunModel {
	return rerunModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		command: strings.Join(command, " "),
	}
}

func (rm rerunModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm rerunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rerunFinishedMsg:
		rm.finished = true
		rm.exitCode = msg.exitCode
		rm.err = msg.err

		return rm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd

		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm rerunModel) View() string {
	if !rm.finished {
		return fmt.Sprintf("%s Re-running %s\n", rm.spinner.View(), rm.command)
	}

	switch {
	case rm.err != nil:
		return failStyle.Render("✗ Re-run aborted: "+rm.err.Error()) + "\n"
	case rm.exitCode != 0:
		return failStyle.Render(fmt.Sprintf("✗ Re-run finished with exit code %d", rm.exitCode)) + "\n"
	default:
		return okStyle.Render("✓ Re-run finished") + "\n"
	}
}

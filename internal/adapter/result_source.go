package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
	m "retest.dev/pkg/retest/internal/model"
)

const (
	// testReportType is the "$report_type" of per-phase test records in a report log.
	testReportType = "TestReport"

	maxReportLogLine = 64 * 1024 * 1024
)

// ResultSource loads re-run results recorded by a test engine.
type ResultSource interface {
	// LoadResults returns the results stored at path, in recorded order.
	LoadResults(ctx context.Context, path m.Path) ([]m.Result, error)
}

// FSResultSource reads result logs from an afero filesystem.
//
// Files ending in .yaml or .yml are result manifests:
//
//	results:
//	  - nodeid: pkg/test_mod.py::test_fn
//	    when: call
//	    outcome: passed
//
// Any other file is read as a report log: one JSON object per line, as written by
// pytest-reportlog. Only records whose "$report_type" is "TestReport" are used.
type FSResultSource struct {
	fs afero.Fs
}

// NewResultSource creates a ResultSource backed by the OS filesystem.
func NewResultSource() *FSResultSource {
	return NewFSResultSource(afero.NewOsFs())
}

// NewFSResultSource creates a ResultSource backed by fs.
func NewFSResultSource(fs afero.Fs) *FSResultSource {
	return &FSResultSource{fs: fs}
}

// LoadResults reads the result log or manifest at path.
func (s *FSResultSource) LoadResults(ctx context.Context, path m.Path) ([]m.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return ParseResultManifest(data)
	default:
		return ParseReportLog(data)
	}
}

// ParseReportLog parses JSON lines records into results.
func ParseReportLog(data []byte) ([]m.Result, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLogLine)

	var (
		results []m.Result
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if !gjson.ValidBytes(line) {
			return nil, fmt.Errorf("report log line %d: invalid JSON", lineNo)
		}

		fields := gjson.GetManyBytes(line, `\$report_type`, "nodeid", "when", "outcome")
		if fields[0].String() != testReportType {
			continue
		}

		if !fields[1].Exists() {
			return nil, fmt.Errorf("report log line %d: test report without nodeid", lineNo)
		}

		results = append(results, m.Result{
			RuntimeID: fields[1].String(),
			Phase:     m.ParsePhase(fields[2].String()),
			Outcome:   m.ParseOutcome(fields[3].String()),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report log: %w", err)
	}

	return results, nil
}

type resultManifest struct {
	Results []manifestEntry `yaml:"results"`
}

type manifestEntry struct {
	NodeID  string `yaml:"nodeid"`
	When    string `yaml:"when"`
	Outcome string `yaml:"outcome"`
}

// ParseResultManifest parses a YAML result manifest. Entries without "when" are
// call-phase results.
func ParseResultManifest(data []byte) ([]m.Result, error) {
	var manifest resultManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse result manifest: %w", err)
	}

	results := make([]m.Result, 0, len(manifest.Results))

	for i, entry := range manifest.Results {
		if entry.NodeID == "" {
			return nil, fmt.Errorf("result manifest entry %d: missing nodeid", i)
		}

		phase := m.Call
		if entry.When != "" {
			phase = m.ParsePhase(entry.When)
		}

		results = append(results, m.Result{
			RuntimeID: entry.NodeID,
			Phase:     phase,
			Outcome:   m.ParseOutcome(entry.Outcome),
		})
	}

	return results, nil
}

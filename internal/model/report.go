package model

// Testsuite holds the aggregate counters and entries of a JUnit testsuite element.
type Testsuite struct {
	Failures  int
	Errors    int
	Testcases []Testcase
}

// Testcase is a single testcase entry of a report.
type Testcase struct {
	Classname  string
	Name       string
	HasFailure bool
	HasError   bool
}

// Identity returns the identity recorded by the testcase attributes.
func (tc Testcase) Identity() TestIdentity {
	return TestIdentity{SuiteQualifier: tc.Classname, CaseName: tc.Name}
}

// Marker is the kind of marker element cleared from a testcase.
type Marker string

const (
	// MarkerFailure is the <failure> child element.
	MarkerFailure Marker = "failure"
	// MarkerError is the <error> child element.
	MarkerError Marker = "error"
)

// ClearedCase records a testcase whose marker was removed.
type ClearedCase struct {
	Identity TestIdentity
	Marker   Marker
}

// WriteAction describes what a reconciliation did with the output location.
type WriteAction int

const (
	// ActionUnchanged means nothing was written (output is the original report).
	ActionUnchanged WriteAction = iota
	// ActionCopied means the original bytes were copied verbatim to the output.
	ActionCopied
	// ActionWritten means the updated report was written to the output.
	ActionWritten
)

func (a WriteAction) String() string {
	switch a {
	case ActionCopied:
		return "copied"
	case ActionWritten:
		return "written"
	default:
		return "unchanged"
	}
}

// Reconciliation is the outcome of reconciling a report with re-run results.
type Reconciliation struct {
	Report           Path
	Output           Path
	OriginalFailures int
	OriginalErrors   int
	Failures         int
	Errors           int
	Matched          int
	Cleared          []ClearedCase
	Action           WriteAction
	DryRun           bool
	Original         []byte
	Updated          []byte
}

// Changed reports whether any counter decreased.
func (r Reconciliation) Changed() bool {
	return r.Failures < r.OriginalFailures || r.Errors < r.OriginalErrors
}

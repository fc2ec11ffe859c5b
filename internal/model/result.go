package model

import "strings"

// Outcome is the classification of a single test execution.
type Outcome int

const (
	// OtherOutcome covers every outcome string that is not recognized.
	OtherOutcome Outcome = iota
	// Passed indicates the test passed.
	Passed
	// Failed indicates the test failed.
	Failed
	// Skipped indicates the test was skipped.
	Skipped
)

// ParseOutcome maps an outcome string reported by a test engine to an Outcome.
func ParseOutcome(value string) Outcome {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "passed":
		return Passed
	case "failed":
		return Failed
	case "skipped":
		return Skipped
	default:
		return OtherOutcome
	}
}

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "other"
	}
}

// Phase identifies which execution phase produced an outcome.
type Phase int

const (
	// UnknownPhase covers every phase string that is not recognized.
	UnknownPhase Phase = iota
	// Setup is the fixture setup phase.
	Setup
	// Call is the main test body. Only results of this phase decide pass/fail.
	Call
	// Teardown is the fixture teardown phase.
	Teardown
)

// ParsePhase maps a phase string ("setup", "call", "teardown") to a Phase.
func ParsePhase(value string) Phase {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "setup":
		return Setup
	case "call":
		return Call
	case "teardown":
		return Teardown
	default:
		return UnknownPhase
	}
}

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Call:
		return "call"
	case Teardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// Result is one outcome record produced by a test re-run.
type Result struct {
	RuntimeID string
	Outcome   Outcome
	Phase     Phase
}

// TestIdentity is the identity of a test case as recorded in a JUnit report:
// the dotted suite qualifier (classname attribute) and the case name.
type TestIdentity struct {
	SuiteQualifier string
	CaseName       string
}

func (id TestIdentity) String() string {
	if id.SuiteQualifier == "" {
		return id.CaseName
	}

	return id.SuiteQualifier + "." + id.CaseName
}

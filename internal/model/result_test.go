package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		value string
		want  Outcome
	}{
		{"passed", Passed},
		{"PASSED", Passed},
		{" failed ", Failed},
		{"skipped", Skipped},
		{"error", OtherOutcome},
		{"xfailed", OtherOutcome},
		{"", OtherOutcome},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := ParseOutcome(tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		value string
		want  Phase
	}{
		{"setup", Setup},
		{"call", Call},
		{"Call", Call},
		{"teardown", Teardown},
		{"collect", UnknownPhase},
		{"", UnknownPhase},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePhase(tt.value))
		})
	}
}

func TestOutcomeAndPhase_StringRoundTrip(t *testing.T) {
	for _, outcome := range []Outcome{Passed, Failed, Skipped} {
		assert.Equal(t, outcome, ParseOutcome(outcome.String()))
	}

	for _, phase := range []Phase{Setup, Call, Teardown} {
		assert.Equal(t, phase, ParsePhase(phase.String()))
	}

	assert.Equal(t, "other", OtherOutcome.String())
	assert.Equal(t, "unknown", UnknownPhase.String())
}

func TestTestIdentity_String(t *testing.T) {
	assert.Equal(t, "pkg.test_mod.TestCls.test_fn", TestIdentity{SuiteQualifier: "pkg.test_mod.TestCls", CaseName: "test_fn"}.String())
	assert.Equal(t, "test_fn", TestIdentity{CaseName: "test_fn"}.String())
}

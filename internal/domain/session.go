package domain

import (
	"log/slog"

	m "retest.dev/pkg/retest/internal/model"
)

// Session collects the outcome stream of a re-run. Only main-call results are kept,
// one per runtime id; a later record for the same id replaces the earlier one.
// A Session is not safe for concurrent use.
type Session struct {
	order []string
	byID  map[string]m.Result
}

// NewSession creates an empty Session.
func NewSession() *Session {
	return &Session{byID: make(map[string]m.Result)}
}

// Record adds a result and reports whether it was kept.
func (s *Session) Record(result m.Result) bool {
	if result.Phase != m.Call {
		return false
	}

	if _, seen := s.byID[result.RuntimeID]; !seen {
		s.order = append(s.order, result.RuntimeID)
	} else {
		slog.Debug("Replacing earlier result", "runtimeID", result.RuntimeID, "outcome", result.Outcome.String())
	}

	s.byID[result.RuntimeID] = result

	return true
}

// RecordAll records every result in order.
func (s *Session) RecordAll(results []m.Result) {
	for _, result := range results {
		s.Record(result)
	}
}

// Results returns the kept results in the order their ids were first seen.
func (s *Session) Results() []m.Result {
	results := make([]m.Result, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.byID[id])
	}

	return results
}

// Len returns the number of distinct kept results.
func (s *Session) Len() int {
	return len(s.order)
}

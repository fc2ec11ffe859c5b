// Package domain contains the report reconciliation workflow and logic.
package domain

import (
	"fmt"
	"path"
	"strings"

	m "retest.dev/pkg/retest/internal/model"
)

// RuntimeIDSeparator separates the structural levels of a runtime test identifier,
// e.g. "pkg/test_mod.py::TestCls::test_fn".
const RuntimeIDSeparator = "::"

// ResolveIdentity converts a runtime test identifier into the identity a JUnit report
// records for the same test.
//
// The case name is everything after the last separator, parameter suffix included.
// What remains is the file path, optionally followed by a class segment. The file path
// loses its extension and its components are joined with dots; the class segment, when
// present, is appended.
func ResolveIdentity(runtimeID string) (m.TestIdentity, error) {
	first := strings.Index(runtimeID, RuntimeIDSeparator)
	if first < 0 {
		return m.TestIdentity{}, fmt.Errorf("%w: %q has no %q separator", ErrMalformedIdentifier, runtimeID, RuntimeIDSeparator)
	}

	// Parameters may contain brackets and separators; the file path may contain brackets.
	tail := runtimeID[first+len(RuntimeIDSeparator):]
	if i := strings.IndexByte(tail, '['); i >= 0 {
		tail = tail[:i]
	}

	idx := first
	if last := strings.LastIndex(tail, RuntimeIDSeparator); last >= 0 {
		idx = first + len(RuntimeIDSeparator) + last
	}

	location := runtimeID[:idx]
	caseName := runtimeID[idx+len(RuntimeIDSeparator):]

	file, class, hasClass := strings.Cut(location, RuntimeIDSeparator)

	qualifier := modulePath(file)
	if hasClass {
		// Nested classes are dotted in the report classname.
		qualifier += "." + strings.ReplaceAll(class, RuntimeIDSeparator, ".")
	}

	return m.TestIdentity{SuiteQualifier: qualifier, CaseName: caseName}, nil
}

// IdentityOf returns the identity of a report entry from its classname and name attributes.
func IdentityOf(classname, name string) m.TestIdentity {
	return m.TestIdentity{SuiteQualifier: classname, CaseName: name}
}

func modulePath(file string) string {
	file = strings.ReplaceAll(file, `\`, "/")
	file = strings.TrimSuffix(file, path.Ext(file))

	parts := strings.Split(file, "/")
	kept := parts[:0]

	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}

		kept = append(kept, part)
	}

	return strings.Join(kept, ".")
}

package domain

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	m "retest.dev/pkg/retest/internal/model"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// span is a half-open byte range [start, end) of the source document.
type span struct {
	start int
	end   int
}

type junitCase struct {
	failures []span
	errors   []span
}

// junitReport is a parsed JUnit document. It keeps the source bytes together with the
// byte ranges of everything reconciliation may touch, so that the updated document is
// produced by splicing the original instead of re-serializing it.
type junitReport struct {
	source         []byte
	suite          m.Testsuite
	suiteTag       span
	cases          []junitCase
	hasDeclaration bool
}

type openMarker struct {
	marker m.Marker
	start  int
}

// parseJUnitReport reads the testsuite element (the document root or a direct child of
// it) together with its testcase entries and their failure/error markers.
func parseJUnitReport(source []byte) (*junitReport, error) {
	report := &junitReport{source: source}
	decoder := xml.NewDecoder(bytes.NewReader(source))

	var (
		depth      int
		suiteDepth int
		suiteDone  bool
		caseIndex  = -1
		marker     *openMarker
	)

	for {
		start := int(decoder.InputOffset())

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedReport, err)
		}

		switch t := token.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				report.hasDeclaration = true
			}

		case xml.StartElement:
			depth++

			switch {
			case suiteDepth == 0 && !suiteDone && depth <= 2 && t.Name.Local == "testsuite":
				suiteDepth = depth
				report.suiteTag = span{start: start, end: int(decoder.InputOffset())}

				if err := report.readCounters(t); err != nil {
					return nil, err
				}

			case suiteDepth > 0 && depth == suiteDepth+1 && t.Name.Local == "testcase":
				report.suite.Testcases = append(report.suite.Testcases, m.Testcase{
					Classname: attr(t, "classname"),
					Name:      attr(t, "name"),
				})
				report.cases = append(report.cases, junitCase{})
				caseIndex = len(report.cases) - 1

			case caseIndex >= 0 && depth == suiteDepth+2:
				switch t.Name.Local {
				case string(m.MarkerFailure):
					marker = &openMarker{marker: m.MarkerFailure, start: start}
				case string(m.MarkerError):
					marker = &openMarker{marker: m.MarkerError, start: start}
				}
			}

		case xml.EndElement:
			switch {
			case marker != nil && depth == suiteDepth+2:
				report.closeMarker(caseIndex, *marker, int(decoder.InputOffset()))
				marker = nil
			case suiteDepth > 0 && depth == suiteDepth+1:
				caseIndex = -1
			case suiteDepth > 0 && depth == suiteDepth:
				suiteDepth = 0
				suiteDone = true
			}

			depth--
		}
	}

	if !suiteDone {
		return nil, fmt.Errorf("%w: no testsuite element", ErrMalformedReport)
	}

	return report, nil
}

func (r *junitReport) readCounters(suite xml.StartElement) error {
	failures, err := intAttr(suite, "failures")
	if err != nil {
		return err
	}

	errs, err := intAttr(suite, "errors")
	if err != nil {
		return err
	}

	r.suite.Failures = failures
	r.suite.Errors = errs

	return nil
}

func (r *junitReport) closeMarker(caseIndex int, marker openMarker, end int) {
	s := span{start: marker.start, end: end}

	switch marker.marker {
	case m.MarkerFailure:
		r.cases[caseIndex].failures = append(r.cases[caseIndex].failures, s)
		r.suite.Testcases[caseIndex].HasFailure = true
	case m.MarkerError:
		r.cases[caseIndex].errors = append(r.cases[caseIndex].errors, s)
		r.suite.Testcases[caseIndex].HasError = true
	}
}

// clear removes the marker of the given kind from a testcase and returns the byte
// ranges to cut from the source.
func (r *junitReport) clear(caseIndex int, marker m.Marker) []span {
	tc := &r.suite.Testcases[caseIndex]

	var removed []span

	switch marker {
	case m.MarkerFailure:
		removed = r.cases[caseIndex].failures
		r.cases[caseIndex].failures = nil
		tc.HasFailure = false
		r.suite.Failures = decrement(r.suite.Failures, "failures")
	case m.MarkerError:
		removed = r.cases[caseIndex].errors
		r.cases[caseIndex].errors = nil
		tc.HasError = false
		r.suite.Errors = decrement(r.suite.Errors, "errors")
	}

	return removed
}

// decrement lowers a suite counter, holding it at zero when the header already
// undercounted its markers.
func decrement(count int, name string) int {
	if count <= 0 {
		slog.Warn("testsuite counter already at zero", "attribute", name, "value", count)

		return 0
	}

	return count - 1
}

// render produces the updated document: the suite counters are rewritten in place,
// removed markers are cut together with the indentation line they occupied, and an XML
// declaration is added when the source had none.
func (r *junitReport) render(removed []span) ([]byte, error) {
	tag := r.source[r.suiteTag.start:r.suiteTag.end]

	tag, err := setIntAttr(tag, "failures", r.suite.Failures)
	if err != nil {
		return nil, err
	}

	tag, err = setIntAttr(tag, "errors", r.suite.Errors)
	if err != nil {
		return nil, err
	}

	cuts := make([]span, 0, len(removed))
	for _, s := range removed {
		cuts = append(cuts, expandToLine(r.source, s))
	}

	slices.SortFunc(cuts, func(a, b span) int {
		return a.start - b.start
	})

	var out bytes.Buffer

	out.Grow(len(r.source) + len(xmlDeclaration))

	body := r.source
	offset := 0

	if !r.hasDeclaration {
		if bytes.HasPrefix(body, utf8BOM) {
			out.Write(utf8BOM)

			offset = len(utf8BOM)
		}

		out.WriteString(xmlDeclaration)
	}

	out.Write(body[offset:r.suiteTag.start])
	out.Write(tag)

	cursor := r.suiteTag.end
	for _, cut := range cuts {
		if cut.start < cursor {
			continue
		}

		out.Write(body[cursor:cut.start])
		cursor = cut.end
	}

	out.Write(body[cursor:])

	return out.Bytes(), nil
}

func attr(element xml.StartElement, name string) string {
	for _, a := range element.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

func intAttr(element xml.StartElement, name string) (int, error) {
	for _, a := range element.Attr {
		if a.Name.Space != "" || a.Name.Local != name {
			continue
		}

		value, err := strconv.Atoi(strings.TrimSpace(a.Value))
		if err != nil {
			return 0, fmt.Errorf("%w: testsuite %s=%q is not an integer", ErrMalformedReport, name, a.Value)
		}

		return value, nil
	}

	return 0, fmt.Errorf("%w: testsuite has no %s attribute", ErrMalformedReport, name)
}

// setIntAttr rewrites the value of an attribute inside a raw start tag, keeping its
// quoting and every other byte of the tag.
func setIntAttr(tag []byte, name string, value int) ([]byte, error) {
	if name != "failures" && name != "errors" {
		return nil, fmt.Errorf("unsupported attribute %q", name)
	}

	valueStart, valueEnd, ok := attrValueSpan(tag, name)
	if !ok {
		return nil, fmt.Errorf("%w: testsuite has no %s attribute", ErrMalformedReport, name)
	}

	quote := tag[valueStart]

	out := make([]byte, 0, len(tag)+4)
	out = append(out, tag[:valueStart]...)
	out = append(out, quote)
	out = strconv.AppendInt(out, int64(value), 10)
	out = append(out, quote)
	out = append(out, tag[valueEnd:]...)

	return out, nil
}

// attrValueSpan walks a raw start tag attribute by attribute and returns the span of
// the named attribute's quoted value, quotes included. Text inside other attribute
// values is never mistaken for an attribute name.
func attrValueSpan(tag []byte, name string) (int, int, bool) {
	i := 0
	if i < len(tag) && tag[i] == '<' {
		i++
	}

	for i < len(tag) && !isTagSpace(tag[i]) && tag[i] != '>' && tag[i] != '/' {
		i++
	}

	for i < len(tag) {
		for i < len(tag) && isTagSpace(tag[i]) {
			i++
		}

		if i >= len(tag) || tag[i] == '>' || tag[i] == '/' {
			return 0, 0, false
		}

		nameStart := i
		for i < len(tag) && tag[i] != '=' && !isTagSpace(tag[i]) && tag[i] != '>' {
			i++
		}

		attrName := string(tag[nameStart:i])

		for i < len(tag) && isTagSpace(tag[i]) {
			i++
		}

		if i >= len(tag) || tag[i] != '=' {
			return 0, 0, false
		}

		i++
		for i < len(tag) && isTagSpace(tag[i]) {
			i++
		}

		if i >= len(tag) || (tag[i] != '"' && tag[i] != '\'') {
			return 0, 0, false
		}

		quote := tag[i]
		valueStart := i

		closing := bytes.IndexByte(tag[i+1:], quote)
		if closing < 0 {
			return 0, 0, false
		}

		i += closing + 2

		if attrName == name {
			return valueStart, i, true
		}
	}

	return 0, 0, false
}

func isTagSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// expandToLine widens s to its whole line when nothing but whitespace shares the line.
func expandToLine(src []byte, s span) span {
	start := s.start
	for start > 0 && isBlank(src[start-1]) {
		start--
	}

	if start > 0 && src[start-1] != '\n' {
		return s
	}

	end := s.end
	for end < len(src) && isBlank(src[end]) {
		end++
	}

	if end < len(src) && src[end] == '\r' {
		end++
	}

	if end < len(src) && src[end] != '\n' {
		return s
	}

	if end < len(src) {
		end++
	}

	return span{start: start, end: end}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}


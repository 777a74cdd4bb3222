// Package report turns input problems into the message shown to the user.
//
// Problems are filtered for duplicates, separated by severity and grouped by
// resource. Large problem sets are written to a CSV table instead of being
// printed.
package report

import (
	"fmt"
	"strings"

	"github.com/dasch-swiss/dspvalidate/reformat"
)

// Separators of the printed message.
const (
	ListSeparator  = "\n    - "
	GrandSeparator = "\n\n----------------------------\n"
)

const maxInputLength = 50

// Section is the message for the problems of one severity. Body is empty
// when the problems were written to a table.
type Section struct {
	Severity reformat.Severity
	Header   string
	Body     string
	Problems []reformat.InputProblem
}

// Header returns the header line for n problems of a severity.
func Header(severity reformat.Severity, n int) string {
	switch severity {
	case reformat.SeverityWarning:
		return fmt.Sprintf("During the validation of the data %d problems were found. "+
			"Warnings are allowed on test servers. Please note that an xmlupload on a prod sever will fail.", n)
	case reformat.SeverityInfo:
		return fmt.Sprintf("During the validation of the data %d potential problems were found. "+
			"They will not impede an xmlupload.", n)
	default:
		return fmt.Sprintf("During the validation of the data %d errors were found. "+
			"Until they are resolved an xmlupload is not possible.", n)
	}
}

// Sections returns one section per severity that has problems, most severe
// first.
func Sections(s Sorted) []Section {
	var out []Section
	for _, sec := range []struct {
		severity reformat.Severity
		problems []reformat.InputProblem
	}{
		{reformat.SeverityViolation, s.Violations},
		{reformat.SeverityWarning, s.Warnings},
		{reformat.SeverityInfo, s.Info},
	} {
		if len(sec.problems) == 0 {
			continue
		}
		out = append(out, Section{
			Severity: sec.severity,
			Header:   Header(sec.severity, len(sec.problems)),
			Body:     Body(sec.problems),
			Problems: sec.problems,
		})
	}
	return out
}

// Body renders the problems grouped by resource and property.
func Body(problems []reformat.InputProblem) string {
	groups := sortedGroups(problems)
	messages := make([]string, 0, len(groups))
	for _, g := range groups {
		messages = append(messages, resourceMessage(g))
	}
	return strings.Join(messages, GrandSeparator)
}

func resourceMessage(problems []reformat.InputProblem) string {
	start := ""
	if id := problems[0].ResID; id != "" {
		start = fmt.Sprintf("Resource ID: %s | Resource Type: %s", id, problems[0].ResType)
	}

	var (
		props   []string
		details = make(map[string][]string)
	)
	for _, p := range problems {
		if _, ok := details[p.PropName]; !ok {
			props = append(props, p.PropName)
		}
		details[p.PropName] = append(details[p.PropName], Detail(p))
	}

	lines := make([]string, 0, len(props))
	for _, prop := range props {
		lines = append(lines, prop+ListSeparator+strings.Join(details[prop], ListSeparator))
	}
	return start + "\n" + strings.Join(lines, "\n")
}

// Detail renders one problem as a single line.
func Detail(p reformat.InputProblem) string {
	var parts []string
	if p.Message != "" {
		parts = append(parts, p.Message)
	}
	if showProblemType(p.ProblemType) {
		parts = append(parts, p.ProblemType.Title())
	}
	if p.InputValue != "" {
		parts = append(parts, fmt.Sprintf("Your input: '%s'", ShortenInput(p.InputValue, p.ProblemType)))
	}
	if p.InputType != "" {
		parts = append(parts, fmt.Sprintf("Actual input type: '%s'", p.InputType))
	}
	if p.Expected != "" {
		parts = append(parts, fmt.Sprintf("Expected%s: %s", expectedPrefix(p.ProblemType), p.Expected))
	}
	return strings.Join(parts, " | ")
}

func showProblemType(t reformat.ProblemType) bool {
	switch t {
	case reformat.ProblemGeneric, reformat.ProblemFileValueMissing, reformat.ProblemFileDuplicate:
		return false
	}
	return true
}

func expectedPrefix(t reformat.ProblemType) string {
	switch t {
	case reformat.ProblemValueTypeMismatch:
		return " Value Type"
	case reformat.ProblemInputRegex:
		return " Input Format"
	case reformat.ProblemLinkTargetTypeMismatch:
		return " Resource Type"
	}
	return ""
}

// ShortenInput cuts long input to 50 characters. File names, links and
// absolute IRIs are kept whole.
func ShortenInput(input string, t reformat.ProblemType) string {
	switch t {
	case reformat.ProblemFileDuplicate,
		reformat.ProblemFileValueMissing,
		reformat.ProblemFileValueProhibited,
		reformat.ProblemLinkTargetTypeMismatch,
		reformat.ProblemInexistentLinkedRes:
		return input
	}
	if strings.HasPrefix(input, rdfhPrefix) || strings.HasPrefix(input, " / "+rdfhPrefix+"lists/") {
		return input
	}
	runes := []rune(input)
	if len(runes) <= maxInputLength {
		return input
	}
	return string(runes[:maxInputLength]) + "[...]"
}

package report

import (
	"sort"
	"strings"

	"github.com/dasch-swiss/dspvalidate/reformat"
)

const rdfhPrefix = "http://rdfh.ch/"

const absoluteIRIMessage = "You used an absolute IRI to reference an existing resource in the DB. " +
	"If this resource does not exist or is not of the correct type, an xmlupload will fail."

// Expected values that mark a TextValue type mismatch. The generic one is
// dropped when a more precise one exists for the same property.
const (
	genericTextValue   = "This property requires a TextValue"
	unformattedText    = "TextValue without formatting"
	formattedTextValue = "TextValue with formatting"
)

// Sorted holds the problems separated by severity.
type Sorted struct {
	Violations []reformat.InputProblem
	Warnings   []reformat.InputProblem
	Info       []reformat.InputProblem
}

// Len is the number of problems of all severities.
func (s Sorted) Len() int {
	return len(s.Violations) + len(s.Warnings) + len(s.Info)
}

// Sort filters duplicate problems and separates the rest by severity.
// Links to absolute resource IRIs cannot be checked locally; they are moved
// to info.
func Sort(problems []reformat.InputProblem) Sorted {
	var (
		local    []reformat.InputProblem
		absolute []reformat.InputProblem
	)
	for _, p := range problems {
		if p.ProblemType == reformat.ProblemInexistentLinkedRes && strings.HasPrefix(p.InputValue, rdfhPrefix) {
			p.Message = absoluteIRIMessage
			p.Severity = reformat.SeverityInfo
			absolute = append(absolute, p)
			continue
		}
		local = append(local, p)
	}

	var out Sorted
	for _, p := range filterDuplicates(local) {
		switch p.Severity {
		case reformat.SeverityWarning:
			out.Warnings = append(out.Warnings, p)
		case reformat.SeverityInfo:
			out.Info = append(out.Info, p)
		default:
			out.Violations = append(out.Violations, p)
		}
	}
	out.Info = append(out.Info, absolute...)
	return out
}

// filterDuplicates removes problems that are reported twice for the same
// cause, resource by resource.
func filterDuplicates(problems []reformat.InputProblem) []reformat.InputProblem {
	grouped, order, withoutID := groupByResource(problems)
	out := withoutID
	for _, id := range order {
		filtered := filterTextValueDuplicates(grouped[id])
		out = append(out, mergeFileValueProblems(filtered)...)
	}
	return out
}

// groupByResource returns the problems per resource id in order of first
// appearance, and the problems that have no resource id.
func groupByResource(problems []reformat.InputProblem) (map[string][]reformat.InputProblem, []string, []reformat.InputProblem) {
	grouped := make(map[string][]reformat.InputProblem)
	var (
		order     []string
		withoutID []reformat.InputProblem
	)
	for _, p := range problems {
		if p.ResID == "" {
			withoutID = append(withoutID, p)
			continue
		}
		if _, ok := grouped[p.ResID]; !ok {
			order = append(order, p.ResID)
		}
		grouped[p.ResID] = append(grouped[p.ResID], p)
	}
	return grouped, order, withoutID
}

func filterTextValueDuplicates(problems []reformat.InputProblem) []reformat.InputProblem {
	var (
		out      []reformat.InputProblem
		props    []string
		mismatch = make(map[string][]reformat.InputProblem)
	)
	for _, p := range problems {
		if p.ProblemType != reformat.ProblemValueTypeMismatch {
			out = append(out, p)
			continue
		}
		if _, ok := mismatch[p.PropName]; !ok {
			props = append(props, p.PropName)
		}
		mismatch[p.PropName] = append(mismatch[p.PropName], p)
	}

	for _, prop := range props {
		list := mismatch[prop]
		precise := false
		for _, p := range list {
			if p.Expected == unformattedText || p.Expected == formattedTextValue {
				precise = true
				break
			}
		}
		dropped := false
		for _, p := range list {
			if precise && !dropped && p.Expected == genericTextValue {
				dropped = true
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// mergeFileValueProblems reports a file of the wrong kind once. The missing
// file problem is kept with the input value of the prohibited one.
func mergeFileValueProblems(problems []reformat.InputProblem) []reformat.InputProblem {
	missing, prohibited := -1, -1
	for i, p := range problems {
		switch {
		case p.ProblemType == reformat.ProblemFileValueMissing && missing < 0:
			missing = i
		case p.ProblemType == reformat.ProblemFileValueProhibited && prohibited < 0:
			prohibited = i
		}
	}
	if missing < 0 || prohibited < 0 {
		return problems
	}
	merged := problems[missing]
	merged.InputValue = problems[prohibited].InputValue

	out := make([]reformat.InputProblem, 0, len(problems)-1)
	for i, p := range problems {
		if i != missing && i != prohibited {
			out = append(out, p)
		}
	}
	return append(out, merged)
}

// sortedGroups returns the problems grouped by resource, ordered by resource
// id. Problems without a resource id come first.
func sortedGroups(problems []reformat.InputProblem) [][]reformat.InputProblem {
	grouped, order, withoutID := groupByResource(problems)
	sort.Strings(order)

	var out [][]reformat.InputProblem
	if len(withoutID) > 0 {
		out = append(out, withoutID)
	}
	for _, id := range order {
		out = append(out, grouped[id])
	}
	return out
}

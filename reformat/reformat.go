// Package reformat turns SHACL validation reports into problems addressed by
// resource and property.
//
// Every result of a report maps to exactly one problem, is deliberately
// ignored, or makes Reformat fail with ErrUnexpectedResult.
package reformat

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

const (
	fileProperty   = "bitstream / iiif-uri"
	seqnumProperty = "seqnum or isPartOf"
)

// Reports is the input of a reformatting run. A nil report belongs to a
// conforming pass.
type Reports struct {
	Cardinality *graph.Graph
	Content     *graph.Graph
	Data        *graph.Graph
	// Ontologies holds the project ontologies and knora-api.
	Ontologies *graph.Graph
}

// Reformatter converts reports into problems.
type Reformatter struct {
	logger *slog.Logger
}

// NewReformatter creates a Reformatter. A nil logger uses slog.Default().
func NewReformatter(logger *slog.Logger) *Reformatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reformatter{logger: logger}
}

// Reformat classifies every result of the reports.
func (r *Reformatter) Reformat(reports Reports) ([]InputProblem, error) {
	results, err := r.Extract(reports)
	if err != nil {
		return nil, err
	}
	problems := make([]InputProblem, 0, len(results))
	for _, res := range results {
		problems = append(problems, ToProblem(res))
	}
	r.logger.Debug("Reformatted validation results", "problems", len(problems))
	return problems, nil
}

// Extract reads the classified results of the reports without making them
// readable.
func (r *Reformatter) Extract(reports Reports) ([]ValidationResult, error) {
	q := &query{
		results: graph.Union(reports.Cardinality, reports.Content, reports.Ontologies),
		data:    graph.Union(reports.Data, reports.Ontologies),
	}

	var (
		out        []ValidationResult
		unexpected []UnexpectedComponent
	)
	for _, result := range q.mainResults() {
		for _, b := range q.baseInfos(result) {
			var (
				res *ValidationResult
				ok  bool
			)
			component := b.component
			if b.hasDetail() {
				component = b.detailComponent
				res, ok = q.withDetail(b)
			} else {
				res, ok = q.withoutDetail(b)
			}
			if !ok {
				unexpected = append(unexpected, UnexpectedComponent{Component: component, FocusNode: b.focus})
				continue
			}
			if res == nil {
				r.logger.Debug("Ignoring validation result", "component", component, "focus", b.focus, "path", b.path)
				continue
			}
			out = append(out, *res)
		}
	}

	if len(unexpected) > 0 {
		err := &UnexpectedResultError{Components: unexpected}
		r.logger.Error("Unknown SHACL validation results", "count", len(unexpected), "error", err)
		return nil, err
	}
	return out, nil
}

// ToProblem makes a classified result readable.
func ToProblem(res ValidationResult) InputProblem {
	switch res.Violation {
	case ViolationMinCard:
		return minCard(res)
	case ViolationGeneric:
		prop := ""
		if knora.IsLegalInfoProperty(res.Property) || knora.IsFileValueProperty(res.Property) {
			prop = fileProperty
		}
		return generic(res, ProblemGeneric, prop)
	case ViolationFileValueProhibited, ViolationFileValueMissing, ViolationFileDuplicate:
		return generic(res, res.Violation.ProblemType(), fileProperty)
	case ViolationSeqnumIsPartOf:
		return generic(res, ProblemGeneric, seqnumProperty)
	case ViolationLinkTarget:
		return linkTarget(res)
	default:
		return generic(res, res.Violation.ProblemType(), "")
	}
}

func minCard(res ValidationResult) InputProblem {
	if knora.IsFileValueProperty(res.Property) {
		p := generic(res, ProblemFileValueMissing, fileProperty)
		p.Message = ""
		p.Expected = fmt.Sprintf("This resource requires a file with one of the following extensions: %s",
			strings.Join(knora.FileExtensions(res.Property), ", "))
		return p
	}
	return generic(res, ProblemMinCard, "")
}

func generic(res ValidationResult, problem ProblemType, prop string) InputProblem {
	if prop == "" {
		prop = OntoIRI(res.Property)
	}
	return InputProblem{
		ProblemType: problem,
		ResID:       DataIRI(res.ResIRI),
		ResType:     OntoIRI(res.ResClass),
		PropName:    prop,
		Severity:    res.Severity,
		Message:     termString(res.Message),
		InputValue:  termString(res.InputValue),
		InputType:   termString(res.InputType),
		Expected:    termString(res.Expected),
	}
}

// linkTarget distinguishes a link to a resource that does not exist from a
// link to a resource of the wrong class.
func linkTarget(res ValidationResult) InputProblem {
	p := InputProblem{
		ProblemType: ProblemInexistentLinkedRes,
		ResID:       DataIRI(res.ResIRI),
		ResType:     OntoIRI(res.ResClass),
		PropName:    OntoIRI(res.Property),
		Severity:    res.Severity,
		Message:     termString(res.Message),
		InputValue:  DataIRI(res.InputValue.Value),
	}
	if res.InputType.IsIRI() {
		p.ProblemType = ProblemLinkTargetTypeMismatch
		p.InputType = OntoIRI(res.InputType.Value)
		p.Expected = OntoIRI(res.Expected.Value)
	}
	return p
}

func termString(t graph.Term) string {
	switch {
	case t.IsAny():
		return ""
	case t.IsIRI():
		return AnyIRI(t.Value)
	default:
		return t.Value
	}
}

package reformat

import (
	"sort"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

var (
	rdfType       = graph.IRI(w3c.RDFType)
	subClassOf    = graph.IRI(w3c.RDFSSubClassOf)
	shResult      = graph.IRI(shacl.Result)
	shDetail      = graph.IRI(shacl.Detail)
	shFocusNode   = graph.IRI(shacl.FocusNode)
	shResultPath  = graph.IRI(shacl.ResultPath)
	shMessage     = graph.IRI(shacl.ResultMessage)
	shSeverity    = graph.IRI(shacl.ResultSeverity)
	shComponent   = graph.IRI(shacl.SourceConstraintComponent)
	shValue       = graph.IRI(shacl.Value)
	shValidResult = graph.IRI(shacl.ValidationResult)
)

var severities = map[string]Severity{
	shacl.Violation: SeverityViolation,
	shacl.Warning:   SeverityWarning,
	shacl.Info:      SeverityInfo,
}

// baseInfo is what every result shares before it is classified.
type baseInfo struct {
	result          graph.Term
	component       string
	focus           string
	focusType       string
	path            string
	severity        Severity
	detail          graph.Term
	detailComponent string
}

func (b baseInfo) hasDetail() bool { return !b.detail.IsAny() }

// query reads results from the reports. results holds the reports and the
// ontologies; data holds the data and the ontologies.
type query struct {
	results *graph.Graph
	data    *graph.Graph
}

func first(g *graph.Graph, s, p graph.Term) graph.Term {
	t, _ := g.Object(s, p)
	return t
}

func (q *query) superClasses(class string) map[string]bool {
	out := map[string]bool{class: true}
	queue := []string{class}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, g := range []*graph.Graph{q.data, q.results} {
			for _, super := range g.Objects(graph.IRI(c), subClassOf) {
				if super.IsIRI() && !out[super.Value] {
					out[super.Value] = true
					queue = append(queue, super.Value)
				}
			}
		}
	}
	return out
}

func (q *query) isSubClassOf(class, super string) bool {
	return class != "" && q.superClasses(class)[super]
}

// mainResults returns the top-level results. Results referenced through
// sh:detail are read together with their parent.
func (q *query) mainResults() []graph.Term {
	candidates := make(map[graph.Term]bool)
	for _, r := range q.results.Subjects(rdfType, shValidResult) {
		candidates[r] = true
	}
	for _, r := range q.results.Objects(graph.Any, shResult) {
		candidates[r] = true
	}
	for _, d := range q.results.Objects(graph.Any, shDetail) {
		delete(candidates, d)
	}
	out := make([]graph.Term, 0, len(candidates))
	for r := range candidates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// baseInfos expands one result into one entry per detail, or a single entry
// addressed to the owning resource when it has none.
func (q *query) baseInfos(result graph.Term) []baseInfo {
	focus := first(q.results, result, shFocusNode)
	base := baseInfo{
		result:    result,
		component: first(q.results, result, shComponent).Value,
		focus:     focus.Value,
		focusType: first(q.data, focus, rdfType).Value,
		path:      first(q.results, result, shResultPath).Value,
		severity:  SeverityViolation,
	}
	if s, ok := severities[first(q.results, result, shSeverity).Value]; ok {
		base.severity = s
	}

	details := q.results.Objects(result, shDetail)
	if len(details) == 0 {
		return []baseInfo{q.resolveValueFocus(base)}
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Value < details[j].Value })
	out := make([]baseInfo, 0, len(details))
	for _, d := range details {
		b := base
		b.detail = d
		b.detailComponent = first(q.results, d, shComponent).Value
		out = append(out, b)
	}
	return out
}

// resolveValueFocus moves a result on a value node to the resource owning
// the value. The property becomes the one linking resource and value unless
// the result is about the legal metadata of a file.
func (q *query) resolveValueFocus(b baseInfo) baseInfo {
	if !q.isSubClassOf(b.focusType, knora.ClassValue) {
		return b
	}
	for _, t := range q.data.Match(graph.Any, graph.Any, graph.IRI(b.focus)) {
		if !t.Subject.IsIRI() {
			continue
		}
		b.focus = t.Subject.Value
		b.focusType = first(q.data, t.Subject, rdfType).Value
		if !knora.IsLegalInfoProperty(b.path) {
			b.path = t.Predicate.Value
		}
		break
	}
	return b
}

func (q *query) resultFromBase(b baseInfo, v ViolationType) ValidationResult {
	return ValidationResult{
		Violation: v,
		ResIRI:    b.focus,
		ResClass:  b.focusType,
		Severity:  b.severity,
		Property:  b.path,
	}
}

// withoutDetail classifies a result that has no sh:detail. A nil result
// without error means the result is deliberately ignored.
func (q *query) withoutDetail(b baseInfo) (*ValidationResult, bool) {
	msg := first(q.results, b.result, shMessage)
	value := first(q.results, b.result, shValue)

	switch b.component {
	case shacl.PatternConstraintComponent:
		r := q.resultFromBase(b, ViolationPattern)
		r.Expected, r.InputValue = msg, value
		return &r, true

	case shacl.MinCountConstraintComponent:
		v := ViolationMinCard
		if knora.IsLegalInfoProperty(b.path) {
			v = ViolationGeneric
		}
		r := q.resultFromBase(b, v)
		r.Expected = msg
		return &r, true

	case shacl.MaxCountConstraintComponent:
		r := q.resultFromBase(b, ViolationMaxCard)
		r.Expected = msg
		return &r, true

	case shacl.ClosedByTypesConstraintComponent, shacl.ClosedConstraintComponent:
		if knora.IsFileValueProperty(b.path) {
			// A file of the wrong kind on a representation also violates
			// the minimum cardinality, which is what gets reported.
			if q.isSubClassOf(b.focusType, knora.ClassRepresentation) {
				return nil, true
			}
			r := q.resultFromBase(b, ViolationFileValueProhibited)
			return &r, true
		}
		r := q.resultFromBase(b, ViolationNonExistingCard)
		return &r, true

	case shacl.SPARQLConstraintComponent:
		r := q.resultFromBase(b, ViolationUniqueValue)
		r.InputValue = value
		return &r, true

	case shacl.CoExistsWithConstraintComponent:
		r := q.resultFromBase(b, ViolationSeqnumIsPartOf)
		r.Message = msg
		return &r, true

	case shacl.ClassConstraintComponent:
		r := q.classWithoutDetail(b, msg, value)
		return &r, true

	case shacl.InConstraintComponent,
		shacl.LessThanConstraintComponent,
		shacl.MinExclusiveConstraintComponent,
		shacl.MinInclusiveConstraintComponent,
		shacl.DatatypeConstraintComponent,
		shacl.SingleLineConstraintComponent:
		r := q.general(b.result, b, ViolationGeneric)
		return &r, true

	case shacl.UniqueValueForClassConstraintComponent:
		r := q.general(b.result, b, ViolationFileDuplicate)
		return &r, true
	}
	return nil, false
}

func (q *query) classWithoutDetail(b baseInfo, msg, value graph.Term) ValidationResult {
	if b.path == knora.HasStandoffLinkTo {
		r := q.resultFromBase(b, ViolationLinkTarget)
		r.InputValue = value
		r.Message = msg
		return r
	}
	valueType := first(q.data, value, rdfType)
	if valueType.IsIRI() && !q.isSubClassOf(valueType.Value, knora.ClassFileValue) {
		r := q.resultFromBase(b, ViolationValueType)
		r.InputType = valueType
		r.Expected = msg
		return r
	}
	r := q.resultFromBase(b, ViolationGeneric)
	r.Message = msg
	r.InputValue = value
	return r
}

// withDetail classifies one detail of a result.
func (q *query) withDetail(b baseInfo) (*ValidationResult, bool) {
	switch b.detailComponent {
	case shacl.MinCountConstraintComponent:
		if knora.IsFileValueProperty(b.path) {
			r := q.general(b.result, b, ViolationGeneric)
			return &r, true
		}
		r := q.valueType(b)
		return &r, true

	case shacl.PatternConstraintComponent:
		r := q.resultFromBase(b, ViolationPattern)
		r.Expected = first(q.results, b.detail, shMessage)
		r.InputValue = first(q.results, b.detail, shValue)
		return &r, true

	case shacl.ClassConstraintComponent:
		if first(q.results, b.detail, shResultPath).Value == w3c.RDFType {
			r := q.valueType(b)
			return &r, true
		}
		r := q.linkTarget(b)
		return &r, true

	case shacl.InConstraintComponent, shacl.SingleLineConstraintComponent, shacl.DatatypeConstraintComponent:
		r := q.general(b.detail, b, ViolationGeneric)
		return &r, true
	}
	return nil, false
}

func (q *query) valueType(b baseInfo) ValidationResult {
	r := q.resultFromBase(b, ViolationValueType)
	r.Expected = first(q.results, b.detail, shMessage)
	value := first(q.results, b.result, shValue)
	r.InputType = first(q.data, value, rdfType)
	return r
}

func (q *query) linkTarget(b baseInfo) ValidationResult {
	r := q.resultFromBase(b, ViolationLinkTarget)
	target := first(q.results, b.detail, shValue)
	r.InputValue = target
	r.InputType = first(q.data, target, rdfType)
	r.Expected = first(q.results, b.detail, shMessage)
	return r
}

// general reads message and value from node, which is either the result or
// one of its details.
func (q *query) general(node graph.Term, b baseInfo, v ViolationType) ValidationResult {
	r := q.resultFromBase(b, v)
	r.Message = first(q.results, node, shMessage)
	r.InputValue = first(q.results, node, shValue)
	return r
}

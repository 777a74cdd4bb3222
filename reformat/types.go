package reformat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dasch-swiss/dspvalidate/graph"
)

// ProblemType classifies a problem for the user.
type ProblemType string

const (
	ProblemGeneric                ProblemType = "generic"
	ProblemFileValueMissing       ProblemType = "file-value-missing"
	ProblemFileValueProhibited    ProblemType = "file-value-prohibited"
	ProblemFileDuplicate          ProblemType = "file-duplicate"
	ProblemMaxCard                ProblemType = "max-cardinality"
	ProblemMinCard                ProblemType = "min-cardinality"
	ProblemNonExistingCard        ProblemType = "non-existing-cardinality"
	ProblemValueTypeMismatch      ProblemType = "value-type-mismatch"
	ProblemInputRegex             ProblemType = "input-regex"
	ProblemLinkTargetTypeMismatch ProblemType = "link-target-type-mismatch"
	ProblemInexistentLinkedRes    ProblemType = "inexistent-linked-resource"
	ProblemDuplicateValue         ProblemType = "duplicate-value"
)

var problemTitles = map[ProblemType]string{
	ProblemGeneric:                "generic",
	ProblemFileValueMissing:       "A file value is missing",
	ProblemFileValueProhibited:    "A file value is prohibited for this resource",
	ProblemFileDuplicate:          "Your input is duplicated",
	ProblemMaxCard:                "Maximum Cardinality Violation",
	ProblemMinCard:                "Minimum Cardinality Violation",
	ProblemNonExistingCard:        "The resource class does not have a cardinality for this property.",
	ProblemValueTypeMismatch:      "Value Type Mismatch",
	ProblemInputRegex:             "Wrong Format of Input",
	ProblemLinkTargetTypeMismatch: "Linked Resource Type Mismatch",
	ProblemInexistentLinkedRes:    "Linked Resource does not exist",
	ProblemDuplicateValue:         "Your input is duplicated",
}

// Title is the text shown to users.
func (p ProblemType) Title() string {
	if t, ok := problemTitles[p]; ok {
		return t
	}
	return string(p)
}

// Severity of a problem.
type Severity string

const (
	SeverityViolation Severity = "violation"
	SeverityWarning   Severity = "warning"
	SeverityInfo      Severity = "info"
)

// ViolationType is the intermediate classification of a SHACL result.
type ViolationType string

const (
	ViolationSeqnumIsPartOf      ViolationType = "SEQNUM_IS_PART_OF"
	ViolationUniqueValue         ViolationType = "UNIQUE_VALUE"
	ViolationValueType           ViolationType = "VALUE_TYPE"
	ViolationPattern             ViolationType = "PATTERN"
	ViolationGeneric             ViolationType = "GENERIC"
	ViolationLinkTarget          ViolationType = "LINK_TARGET"
	ViolationMaxCard             ViolationType = "MAX_CARD"
	ViolationMinCard             ViolationType = "MIN_CARD"
	ViolationNonExistingCard     ViolationType = "NON_EXISTING_CARD"
	ViolationFileValueProhibited ViolationType = "FILE_VALUE_PROHIBITED"
	ViolationFileValueMissing    ViolationType = "FILE_VALUE_MISSING"
	ViolationFileDuplicate       ViolationType = "FILE_DUPLICATE"
)

var violationProblems = map[ViolationType]ProblemType{
	ViolationSeqnumIsPartOf:      ProblemGeneric,
	ViolationUniqueValue:         ProblemDuplicateValue,
	ViolationValueType:           ProblemValueTypeMismatch,
	ViolationPattern:             ProblemInputRegex,
	ViolationGeneric:             ProblemGeneric,
	ViolationLinkTarget:          ProblemLinkTargetTypeMismatch,
	ViolationMaxCard:             ProblemMaxCard,
	ViolationMinCard:             ProblemMinCard,
	ViolationNonExistingCard:     ProblemNonExistingCard,
	ViolationFileValueProhibited: ProblemFileValueProhibited,
	ViolationFileValueMissing:    ProblemFileValueMissing,
	ViolationFileDuplicate:       ProblemFileDuplicate,
}

// ProblemType returns the problem type a violation maps to.
func (v ViolationType) ProblemType() ProblemType {
	return violationProblems[v]
}

// ValidationResult is one SHACL result with full IRIs, before it is made
// readable. Terms that were absent from the report are the zero Term.
type ValidationResult struct {
	Violation  ViolationType
	ResIRI     string
	ResClass   string
	Severity   Severity
	Property   string
	Message    graph.Term
	Expected   graph.Term
	InputValue graph.Term
	InputType  graph.Term
}

// InputProblem is one problem of the input data, addressed by resource and
// property.
type InputProblem struct {
	ProblemType ProblemType
	ResID       string
	ResType     string
	PropName    string
	Severity    Severity
	Message     string
	InputValue  string
	InputType   string
	Expected    string
}

// UnexpectedComponent is a SHACL result no classification rule matches.
type UnexpectedComponent struct {
	Component string
	FocusNode string
}

// ErrUnexpectedResult marks SHACL results that cannot be classified.
var ErrUnexpectedResult = errors.New("unexpected SHACL validation result")

// UnexpectedResultError lists every unclassified result of a report.
type UnexpectedResultError struct {
	Components []UnexpectedComponent
}

func (e *UnexpectedResultError) Error() string {
	var sb strings.Builder
	sb.WriteString("The following unknown violation types were found!")
	for _, c := range e.Components {
		fmt.Fprintf(&sb, "\n    - %s (focus node %s)", c.Component, c.FocusNode)
	}
	return sb.String()
}

func (e *UnexpectedResultError) Is(target error) bool {
	return target == ErrUnexpectedResult
}

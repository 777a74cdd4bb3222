// Package shacl holds IRIs of the SHACL core vocabulary and the DASH extensions
// used by the DSP shapes.
package shacl

// Namespaces.
const (
	Namespace     = "http://www.w3.org/ns/shacl#"
	DashNamespace = "http://datashapes.org/dash#"
)

// Report vocabulary.
const (
	ValidationReport          = Namespace + "ValidationReport"
	ValidationResult          = Namespace + "ValidationResult"
	Conforms                  = Namespace + "conforms"
	Result                    = Namespace + "result"
	FocusNode                 = Namespace + "focusNode"
	ResultPath                = Namespace + "resultPath"
	ResultMessage             = Namespace + "resultMessage"
	ResultSeverity            = Namespace + "resultSeverity"
	SourceConstraintComponent = Namespace + "sourceConstraintComponent"
	SourceShape               = Namespace + "sourceShape"
	Value                     = Namespace + "value"
	Detail                    = Namespace + "detail"
)

// Severities.
const (
	Violation = Namespace + "Violation"
	Warning   = Namespace + "Warning"
	Info      = Namespace + "Info"
)

// Shape vocabulary.
const (
	NodeShape     = Namespace + "NodeShape"
	PropertyShape = Namespace + "PropertyShape"
	Property      = Namespace + "property"
	Path          = Namespace + "path"
	MinCount      = Namespace + "minCount"
	MaxCount      = Namespace + "maxCount"
	Class         = Namespace + "class"
	Node          = Namespace + "node"
	In            = Namespace + "in"
	Message       = Namespace + "message"
	Severity      = Namespace + "severity"
	Datatype      = Namespace + "datatype"
	Pattern       = Namespace + "pattern"
	TargetClass   = Namespace + "targetClass"
)

// Constraint components.
const (
	ClassConstraintComponent        = Namespace + "ClassConstraintComponent"
	ClosedConstraintComponent       = Namespace + "ClosedConstraintComponent"
	DatatypeConstraintComponent     = Namespace + "DatatypeConstraintComponent"
	InConstraintComponent           = Namespace + "InConstraintComponent"
	LessThanConstraintComponent     = Namespace + "LessThanConstraintComponent"
	MaxCountConstraintComponent     = Namespace + "MaxCountConstraintComponent"
	MinCountConstraintComponent     = Namespace + "MinCountConstraintComponent"
	MinExclusiveConstraintComponent = Namespace + "MinExclusiveConstraintComponent"
	MinInclusiveConstraintComponent = Namespace + "MinInclusiveConstraintComponent"
	NodeConstraintComponent         = Namespace + "NodeConstraintComponent"
	PatternConstraintComponent      = Namespace + "PatternConstraintComponent"
	SPARQLConstraintComponent       = Namespace + "SPARQLConstraintComponent"
	UniqueLangConstraintComponent   = Namespace + "UniqueLangConstraintComponent"
)

// DASH extensions.
const (
	ClosedByTypes                          = DashNamespace + "closedByTypes"
	CoExistsWith                           = DashNamespace + "coExistsWith"
	SingleLine                             = DashNamespace + "singleLine"
	UniqueValueForClass                    = DashNamespace + "uniqueValueForClass"
	ClosedByTypesConstraintComponent       = DashNamespace + "ClosedByTypesConstraintComponent"
	CoExistsWithConstraintComponent        = DashNamespace + "CoExistsWithConstraintComponent"
	SingleLineConstraintComponent          = DashNamespace + "SingleLineConstraintComponent"
	UniqueValueForClassConstraintComponent = DashNamespace + "UniqueValueForClassConstraintComponent"
)

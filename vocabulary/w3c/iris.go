// Package w3c holds IRIs of the W3C core vocabularies (RDF, RDFS, OWL, XSD).
package w3c

// Namespaces.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF terms.
const (
	RDFType  = RDFNamespace + "type"
	RDFFirst = RDFNamespace + "first"
	RDFRest  = RDFNamespace + "rest"
	RDFNil   = RDFNamespace + "nil"
)

// RDFS terms.
const (
	RDFSLabel         = RDFSNamespace + "label"
	RDFSComment       = RDFSNamespace + "comment"
	RDFSSubClassOf    = RDFSNamespace + "subClassOf"
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"
)

// OWL terms.
const (
	OWLClass          = OWLNamespace + "Class"
	OWLOntology       = OWLNamespace + "Ontology"
	OWLRestriction    = OWLNamespace + "Restriction"
	OWLOnProperty     = OWLNamespace + "onProperty"
	OWLCardinality    = OWLNamespace + "cardinality"
	OWLMinCardinality = OWLNamespace + "minCardinality"
	OWLMaxCardinality = OWLNamespace + "maxCardinality"
	OWLObjectProperty = OWLNamespace + "ObjectProperty"
	OWLDatatypeProp   = OWLNamespace + "DatatypeProperty"
	OWLAnnotationProp = OWLNamespace + "AnnotationProperty"
)

// XSD datatypes.
const (
	XSDString        = XSDNamespace + "string"
	XSDBoolean       = XSDNamespace + "boolean"
	XSDInteger       = XSDNamespace + "integer"
	XSDNonNegInteger = XSDNamespace + "nonNegativeInteger"
	XSDDecimal       = XSDNamespace + "decimal"
	XSDDate          = XSDNamespace + "date"
	XSDDateTimeStamp = XSDNamespace + "dateTimeStamp"
	XSDAnyURI        = XSDNamespace + "anyURI"
)

// Package rdflike converts parsed resources into an RDF-like intermediate
// model: every resource and value becomes a list of predicate/object pairs
// that the data graph constructor turns into triples without further lookups.
package rdflike

import (
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// TriplePropertyType is the predicate of a PropertyObject.
type TriplePropertyType string

// Predicates emitted for resource and value metadata.
const (
	PropRDFType         TriplePropertyType = w3c.RDFType
	PropRDFSLabel       TriplePropertyType = w3c.RDFSLabel
	PropPermissions     TriplePropertyType = knora.HasPermissions
	PropValueComment    TriplePropertyType = knora.ValueHasComment
	PropIntervalStart   TriplePropertyType = knora.IntervalValueHasStart
	PropIntervalEnd     TriplePropertyType = knora.IntervalValueHasEnd
	PropStandoffLink    TriplePropertyType = knora.HasStandoffLinkTo
	PropLicense         TriplePropertyType = knora.HasLicense
	PropAuthorship      TriplePropertyType = knora.HasAuthorship
	PropCopyrightHolder TriplePropertyType = knora.HasCopyrightHolder
	PropDateStart       TriplePropertyType = knora.DateHasStart
	PropDateEnd         TriplePropertyType = knora.DateHasEnd
)

// TripleObjectType tells the graph constructor how to render an object.
type TripleObjectType string

// Object kinds.
const (
	// ObjectIRI is an absolute IRI.
	ObjectIRI TripleObjectType = "iri"
	// ObjectInternalID is a resource id of the same upload, resolved into the data namespace.
	ObjectInternalID TripleObjectType = "internal-id"
	ObjectString     TripleObjectType = "string"
	ObjectBoolean    TripleObjectType = "boolean"
	ObjectDecimal    TripleObjectType = "decimal"
	ObjectInteger    TripleObjectType = "integer"
	ObjectDateTime   TripleObjectType = "datetime"
	ObjectURI        TripleObjectType = "uri"
	ObjectDate       TripleObjectType = "date"
)

var objectDatatype = map[TripleObjectType]string{
	ObjectString:   w3c.XSDString,
	ObjectBoolean:  w3c.XSDBoolean,
	ObjectDecimal:  w3c.XSDDecimal,
	ObjectInteger:  w3c.XSDInteger,
	ObjectDateTime: w3c.XSDDateTimeStamp,
	ObjectURI:      w3c.XSDAnyURI,
	ObjectDate:     w3c.XSDDate,
}

// Datatype returns the XSD datatype of a literal object kind.
// IRI kinds report false.
func (t TripleObjectType) Datatype() (string, bool) {
	dt, ok := objectDatatype[t]
	return dt, ok
}

// valueObjectType is the object kind of the payload of each value kind.
var valueObjectType = map[knora.ValueType]TripleObjectType{
	knora.ValueTypeBoolean:    ObjectBoolean,
	knora.ValueTypeColor:      ObjectString,
	knora.ValueTypeDate:       ObjectString,
	knora.ValueTypeDecimal:    ObjectDecimal,
	knora.ValueTypeGeometry:   ObjectString,
	knora.ValueTypeGeoname:    ObjectString,
	knora.ValueTypeInteger:    ObjectInteger,
	knora.ValueTypeInterval:   ObjectDecimal,
	knora.ValueTypeLink:       ObjectInternalID,
	knora.ValueTypeList:       ObjectString,
	knora.ValueTypeRichtext:   ObjectString,
	knora.ValueTypeSimpleText: ObjectString,
	knora.ValueTypeTime:       ObjectDateTime,
	knora.ValueTypeURI:        ObjectURI,

	knora.ValueTypeArchiveFile:     ObjectString,
	knora.ValueTypeAudioFile:       ObjectString,
	knora.ValueTypeDocumentFile:    ObjectString,
	knora.ValueTypeMovingImageFile: ObjectString,
	knora.ValueTypeStillImageFile:  ObjectString,
	knora.ValueTypeStillImageIIIF:  ObjectURI,
	knora.ValueTypeTextFile:        ObjectString,
}

// ObjectTypeFor returns the payload object kind of a value kind.
func ObjectTypeFor(t knora.ValueType) (TripleObjectType, bool) {
	ot, ok := valueObjectType[t]
	return ot, ok
}

// PropertyObject is one predicate/object pair.
type PropertyObject struct {
	Property   TriplePropertyType
	Value      string
	ObjectType TripleObjectType
}

// Resource is the RDF-like form of a parsed resource.
type Resource struct {
	ID string
	// Properties holds type, label, permissions and stand-off links.
	Properties []PropertyObject
	Values     []Value
	Migration  *MigrationMetadata
}

// MigrationMetadata is carried over from the input and not emitted as triples.
type MigrationMetadata struct {
	IRI          string
	CreationDate string
}

// Type returns the rdf:type of the resource.
func (r Resource) Type() string {
	for _, po := range r.Properties {
		if po.Property == PropRDFType {
			return po.Value
		}
	}
	return ""
}

// Value is the RDF-like form of one value.
type Value struct {
	// Property is the ontology property linking the resource to the value.
	Property string
	// Payload is nil when the value has no single payload or it was dropped.
	Payload    *string
	Type       knora.ValueType
	ObjectType TripleObjectType
	Metadata   []PropertyObject
}

// Data is the RDF-like form of one upload.
type Data struct {
	Resources []Resource
}

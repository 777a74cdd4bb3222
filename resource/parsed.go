// Package resource holds the parsed input model of a data upload: resources,
// their values, the optional file value and the read-only lookups that are
// filled in before the data graph is built.
package resource

import (
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

// ParsedResource is one resource as read from the XML input.
type ParsedResource struct {
	ID          string
	Type        string
	Label       string
	Values      []ParsedValue
	FileValue   *ParsedFileValue
	Permissions string
	Migration   *MigrationMetadata
}

// MigrationMetadata carries an explicit IRI and creation date for resources
// that are migrated from another system.
type MigrationMetadata struct {
	IRI          string
	CreationDate string
}

// ParsedValue is one property value of a resource.
type ParsedValue struct {
	Property    string
	Type        knora.ValueType
	Payload     Payload
	Permissions string
	Comment     string
}

// Payload is the content of a value. It is one of Text, Interval or ListRef.
// A nil Payload means the input element was empty.
type Payload interface {
	payload()
}

// Text is a scalar payload in its input form.
type Text string

// Interval is the payload of an interval value. An empty bound is absent.
type Interval struct {
	Start string
	End   string
}

// ListRef is the payload of a list value: the list name and the node name or IRI.
type ListRef struct {
	List string
	Node string
}

func (Text) payload()     {}
func (Interval) payload() {}
func (ListRef) payload()  {}

// TextPayload returns the scalar payload of v and whether it has one.
func (v ParsedValue) TextPayload() (string, bool) {
	t, ok := v.Payload.(Text)
	return string(t), ok
}

// ParsedFileValue is the bitstream or IIIF URI attached to a resource.
type ParsedFileValue struct {
	Value    string
	Type     knora.ValueType
	Metadata FileMetadata
}

// FileMetadata is the legal and permission metadata of a file value.
type FileMetadata struct {
	LicenseIRI      string
	CopyrightHolder string
	AuthorshipID    string
	Permissions     string
}

// NewValue is a shorthand for a scalar value without metadata.
func NewValue(property string, t knora.ValueType, value string) ParsedValue {
	return ParsedValue{Property: property, Type: t, Payload: Text(value)}
}

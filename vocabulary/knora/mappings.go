package knora

import (
	"fmt"

	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// ValueType is the kind of a property value as it appears in the XML input.
type ValueType string

// Value kinds of ordinary properties.
const (
	ValueTypeBoolean    ValueType = "boolean"
	ValueTypeColor      ValueType = "color"
	ValueTypeDate       ValueType = "date"
	ValueTypeDecimal    ValueType = "decimal"
	ValueTypeGeometry   ValueType = "geometry"
	ValueTypeGeoname    ValueType = "geoname"
	ValueTypeInteger    ValueType = "integer"
	ValueTypeInterval   ValueType = "interval"
	ValueTypeLink       ValueType = "link"
	ValueTypeList       ValueType = "list"
	ValueTypeRichtext   ValueType = "richtext"
	ValueTypeSimpleText ValueType = "simpletext"
	ValueTypeTime       ValueType = "time"
	ValueTypeURI        ValueType = "uri"
)

// Value kinds of the file value (bitstream or IIIF URI) of a resource.
const (
	ValueTypeArchiveFile     ValueType = "archive"
	ValueTypeAudioFile       ValueType = "audio"
	ValueTypeDocumentFile    ValueType = "document"
	ValueTypeMovingImageFile ValueType = "moving-image"
	ValueTypeStillImageFile  ValueType = "still-image"
	ValueTypeStillImageIIIF  ValueType = "still-image-iiif"
	ValueTypeTextFile        ValueType = "text-file"
)

// RDFPropTypeInfo describes how a value of one ValueType is represented in RDF.
type RDFPropTypeInfo struct {
	// Class is the rdf:type of the value node.
	Class string
	// Predicate links the value node to its payload.
	Predicate string
	// Datatype of the payload literal. Empty when the payload is an IRI or
	// when the value has no single payload (intervals).
	Datatype string
}

// valueTypeInfo is the type table shared by the builder and the graph constructor.
var valueTypeInfo = map[ValueType]RDFPropTypeInfo{
	ValueTypeBoolean:    {ClassBooleanValue, BooleanValueAsBoolean, w3c.XSDBoolean},
	ValueTypeColor:      {ClassColorValue, ColorValueAsColor, w3c.XSDString},
	ValueTypeDate:       {ClassDateValue, ValueAsString, w3c.XSDString},
	ValueTypeDecimal:    {ClassDecimalValue, DecimalValueAsDecimal, w3c.XSDDecimal},
	ValueTypeGeometry:   {ClassGeomValue, GeometryValueAsGeometry, w3c.XSDString},
	ValueTypeGeoname:    {ClassGeonameValue, GeonameValueAsGeonameCode, w3c.XSDString},
	ValueTypeInteger:    {ClassIntValue, IntValueAsInt, w3c.XSDInteger},
	ValueTypeInterval:   {ClassIntervalValue, HasSegmentBounds, ""},
	ValueTypeLink:       {ClassLinkValue, LinkValueHasTargetID, ""},
	ValueTypeList:       {ClassListValue, ListValueAsListNode, w3c.XSDString},
	ValueTypeRichtext:   {ClassTextValue, TextValueAsXML, w3c.XSDString},
	ValueTypeSimpleText: {ClassTextValue, ValueAsString, w3c.XSDString},
	ValueTypeTime:       {ClassTimeValue, TimeValueAsTimeStamp, w3c.XSDDateTimeStamp},
	ValueTypeURI:        {ClassURIValue, URIValueAsURI, w3c.XSDAnyURI},

	ValueTypeArchiveFile:     {ClassArchiveFileValue, FileValueHasFilename, w3c.XSDString},
	ValueTypeAudioFile:       {ClassAudioFileValue, FileValueHasFilename, w3c.XSDString},
	ValueTypeDocumentFile:    {ClassDocumentFileValue, FileValueHasFilename, w3c.XSDString},
	ValueTypeMovingImageFile: {ClassMovingImageFileValue, FileValueHasFilename, w3c.XSDString},
	ValueTypeStillImageFile:  {ClassStillImageFileValue, FileValueHasFilename, w3c.XSDString},
	ValueTypeStillImageIIIF:  {ClassStillImageExternalFileValue, StillImageFileValueHasExternalURL, w3c.XSDAnyURI},
	ValueTypeTextFile:        {ClassTextFileValue, FileValueHasFilename, w3c.XSDString},
}

// fileValueProperty maps file value kinds to the knora-api property that holds them.
var fileValueProperty = map[ValueType]string{
	ValueTypeArchiveFile:     HasArchiveFileValue,
	ValueTypeAudioFile:       HasAudioFileValue,
	ValueTypeDocumentFile:    HasDocumentFileValue,
	ValueTypeMovingImageFile: HasMovingImageFileValue,
	ValueTypeStillImageFile:  HasStillImageFileValue,
	ValueTypeStillImageIIIF:  HasStillImageFileValue,
	ValueTypeTextFile:        HasTextFileValue,
}

// fileExtensions lists the accepted file extensions per file value property.
var fileExtensions = map[string][]string{
	HasArchiveFileValue:     {"7z", "gz", "gzip", "tar", "tar.gz", "tgz", "z", "zip"},
	HasAudioFileValue:       {"mp3", "wav"},
	HasDocumentFileValue:    {"doc", "docx", "epub", "pdf", "ppt", "pptx", "xls", "xlsx"},
	HasMovingImageFileValue: {"mp4"},
	HasStillImageFileValue:  {"jp2", "jpeg", "jpg", "jpx", "png", "tif", "tiff"},
	HasTextFileValue:        {"csv", "json", "odd", "rng", "txt", "xml", "xsd", "xsl"},
}

// legalInfoProperties hold the legal metadata of a file value.
var legalInfoProperties = map[string]bool{
	HasLicense:         true,
	HasAuthorship:      true,
	HasCopyrightHolder: true,
}

// textShapeByGUIElement selects the text value shape from the salsah-gui element.
var textShapeByGUIElement = map[string]string{
	GUIElementSimpleText: ShapeSimpleTextClassShape,
	GUIElementTextarea:   ShapeTextareaClassShape,
	GUIElementRichtext:   ShapeFormattedTextClassShape,
}

// AllValueTypes returns every value kind, ordinary and file kinds alike.
func AllValueTypes() []ValueType {
	return []ValueType{
		ValueTypeBoolean, ValueTypeColor, ValueTypeDate, ValueTypeDecimal, ValueTypeGeometry,
		ValueTypeGeoname, ValueTypeInteger, ValueTypeInterval, ValueTypeLink, ValueTypeList,
		ValueTypeRichtext, ValueTypeSimpleText, ValueTypeTime, ValueTypeURI,
		ValueTypeArchiveFile, ValueTypeAudioFile, ValueTypeDocumentFile, ValueTypeMovingImageFile,
		ValueTypeStillImageFile, ValueTypeStillImageIIIF, ValueTypeTextFile,
	}
}

// IsFileValue reports whether t is one of the file value kinds.
func (t ValueType) IsFileValue() bool {
	_, ok := fileValueProperty[t]
	return ok
}

// Valid reports whether t is a known value kind.
func (t ValueType) Valid() bool {
	_, ok := valueTypeInfo[t]
	return ok
}

// PropTypeInfo returns the RDF representation of a value kind.
// An unknown kind is an error rather than a silent default.
func PropTypeInfo(t ValueType) (RDFPropTypeInfo, error) {
	info, ok := valueTypeInfo[t]
	if !ok {
		return RDFPropTypeInfo{}, fmt.Errorf("unknown value type: %q", t)
	}
	return info, nil
}

// FileValueProperty returns the knora-api property for a file value kind.
func FileValueProperty(t ValueType) (string, bool) {
	prop, ok := fileValueProperty[t]
	return prop, ok
}

// IsFileValueProperty reports whether prop is one of the knora-api file value properties.
func IsFileValueProperty(prop string) bool {
	_, ok := fileExtensions[prop]
	return ok
}

// FileExtensions returns the accepted extensions for a file value property.
func FileExtensions(prop string) []string {
	return fileExtensions[prop]
}

// IsLegalInfoProperty reports whether prop carries legal metadata of a file value.
func IsLegalInfoProperty(prop string) bool {
	return legalInfoProperties[prop]
}

// TextShapeForGUIElement returns the text value shape for a salsah-gui element.
func TextShapeForGUIElement(guiElement string) (string, bool) {
	shape, ok := textShapeByGUIElement[guiElement]
	return shape, ok
}

// IsAPIClass reports whether iri is a term of the knora-api ontology.
func IsAPIClass(iri string) bool {
	return len(iri) > len(APINamespace) && iri[:len(APINamespace)] == APINamespace
}

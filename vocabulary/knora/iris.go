package knora

// Namespaces.
const (
	APINamespace       = "http://api.knora.org/ontology/knora-api/v2#"
	ShapesNamespace    = "http://api.knora.org/ontology/knora-api/shapes/v2#"
	SalsahGUINamespace = "http://api.knora.org/ontology/salsah-gui/v2#"
	DataNamespace      = "http://data/"
	ResourceIRIPrefix  = "http://rdfh.ch/"
)

// Prefixes bound on every serialized graph.
const (
	PrefixAPI       = "knora-api"
	PrefixShapes    = "api-shapes"
	PrefixSalsahGUI = "salsah-gui"
	PrefixData      = "data"
)

// Resource classes.
const (
	ClassResource                  = APINamespace + "Resource"
	ClassRepresentation            = APINamespace + "Representation"
	ClassArchiveRepresentation     = APINamespace + "ArchiveRepresentation"
	ClassAudioRepresentation       = APINamespace + "AudioRepresentation"
	ClassDocumentRepresentation    = APINamespace + "DocumentRepresentation"
	ClassMovingImageRepresentation = APINamespace + "MovingImageRepresentation"
	ClassStillImageRepresentation  = APINamespace + "StillImageRepresentation"
	ClassTextRepresentation        = APINamespace + "TextRepresentation"
	ClassRegion                    = APINamespace + "Region"
	ClassLinkObj                   = APINamespace + "LinkObj"
	ClassAudioSegment              = APINamespace + "AudioSegment"
	ClassVideoSegment              = APINamespace + "VideoSegment"
)

// Value classes.
const (
	ClassValue                       = APINamespace + "Value"
	ClassFileValue                   = APINamespace + "FileValue"
	ClassBooleanValue                = APINamespace + "BooleanValue"
	ClassColorValue                  = APINamespace + "ColorValue"
	ClassDateValue                   = APINamespace + "DateValue"
	ClassDecimalValue                = APINamespace + "DecimalValue"
	ClassGeomValue                   = APINamespace + "GeomValue"
	ClassGeonameValue                = APINamespace + "GeonameValue"
	ClassIntValue                    = APINamespace + "IntValue"
	ClassIntervalValue               = APINamespace + "IntervalValue"
	ClassLinkValue                   = APINamespace + "LinkValue"
	ClassListValue                   = APINamespace + "ListValue"
	ClassTextValue                   = APINamespace + "TextValue"
	ClassTimeValue                   = APINamespace + "TimeValue"
	ClassURIValue                    = APINamespace + "UriValue"
	ClassArchiveFileValue            = APINamespace + "ArchiveFileValue"
	ClassAudioFileValue              = APINamespace + "AudioFileValue"
	ClassDocumentFileValue           = APINamespace + "DocumentFileValue"
	ClassMovingImageFileValue        = APINamespace + "MovingImageFileValue"
	ClassStillImageFileValue         = APINamespace + "StillImageFileValue"
	ClassStillImageExternalFileValue = APINamespace + "StillImageExternalFileValue"
	ClassTextFileValue               = APINamespace + "TextFileValue"
)

// Value payload predicates.
const (
	BooleanValueAsBoolean             = APINamespace + "booleanValueAsBoolean"
	ColorValueAsColor                 = APINamespace + "colorValueAsColor"
	ValueAsString                     = APINamespace + "valueAsString"
	DecimalValueAsDecimal             = APINamespace + "decimalValueAsDecimal"
	GeometryValueAsGeometry           = APINamespace + "geometryValueAsGeometry"
	GeonameValueAsGeonameCode         = APINamespace + "geonameValueAsGeonameCode"
	IntValueAsInt                     = APINamespace + "intValueAsInt"
	IntervalValueHasStart             = APINamespace + "intervalValueHasStart"
	IntervalValueHasEnd               = APINamespace + "intervalValueHasEnd"
	ListValueAsListNode               = APINamespace + "listValueAsListNode"
	TextValueAsXML                    = APINamespace + "textValueAsXml"
	TimeValueAsTimeStamp              = APINamespace + "timeValueAsTimeStamp"
	URIValueAsURI                     = APINamespace + "uriValueAsUri"
	FileValueHasFilename              = APINamespace + "fileValueHasFilename"
	StillImageFileValueHasExternalURL = APINamespace + "stillImageFileValueHasExternalUrl"
)

// Resource and value metadata predicates.
const (
	HasSegmentBounds   = APINamespace + "hasSegmentBounds"
	ValueHasComment    = APINamespace + "valueHasComment"
	HasPermissions     = APINamespace + "hasPermissions"
	HasStandoffLinkTo  = APINamespace + "hasStandoffLinkTo"
	HasLicense         = APINamespace + "hasLicense"
	HasAuthorship      = APINamespace + "hasAuthorship"
	HasCopyrightHolder = APINamespace + "hasCopyrightHolder"
	IsPartOf           = APINamespace + "isPartOf"
	IsPartOfValue      = APINamespace + "isPartOfValue"
	Seqnum             = APINamespace + "seqnum"
	HasLinkTo          = APINamespace + "hasLinkTo"
)

// File value properties.
const (
	HasArchiveFileValue     = APINamespace + "hasArchiveFileValue"
	HasAudioFileValue       = APINamespace + "hasAudioFileValue"
	HasDocumentFileValue    = APINamespace + "hasDocumentFileValue"
	HasMovingImageFileValue = APINamespace + "hasMovingImageFileValue"
	HasStillImageFileValue  = APINamespace + "hasStillImageFileValue"
	HasTextFileValue        = APINamespace + "hasTextFileValue"
)

// Ontology annotation predicates.
const (
	IsResourceClass     = APINamespace + "isResourceClass"
	IsResourceProperty  = APINamespace + "isResourceProperty"
	CanBeInstantiated   = APINamespace + "canBeInstantiated"
	IsEditable          = APINamespace + "isEditable"
	IsLinkProperty      = APINamespace + "isLinkProperty"
	IsLinkValueProperty = APINamespace + "isLinkValueProperty"
	ObjectType          = APINamespace + "objectType"
)

// api-shapes helper predicates and fixed shapes.
const (
	LinkValueHasTargetID         = ShapesNamespace + "linkValueHasTargetID"
	DateHasStart                 = ShapesNamespace + "dateHasStart"
	DateHasEnd                   = ShapesNamespace + "dateHasEnd"
	ShapeHasPermissions          = ShapesNamespace + "hasPermissions_Cardinality"
	ShapeSeqnumPropShape         = ShapesNamespace + "seqnum_PropShape"
	ShapeSimpleTextClassShape    = ShapesNamespace + "SimpleTextValue_ClassShape"
	ShapeTextareaClassShape      = ShapesNamespace + "TextareaTextValue_ClassShape"
	ShapeFormattedTextClassShape = ShapesNamespace + "FormattedTextValue_ClassShape"
	ShapeFileValueLicense        = ShapesNamespace + "hasLicense_PropShape"
	ShapeRDFSLabel               = ShapesNamespace + "rdfsLabel_Cardinality"
	ShapeStandoffLink            = ShapesNamespace + "hasStandoffLinkTo_Cardinality"
	ShapeValuePermissions        = ShapesNamespace + "hasPermissions_PropShape"
	ShapeRDFSLabelContent        = ShapesNamespace + "rdfsLabel_Shape"
	ShapeStandoffLinkContent     = ShapesNamespace + "hasStandoffLinkTo_PropShape"
)

// salsah-gui predicates and GUI elements.
const (
	GUIElement           = SalsahGUINamespace + "guiElement"
	GUIAttribute         = SalsahGUINamespace + "guiAttribute"
	GUIElementSimpleText = SalsahGUINamespace + "SimpleText"
	GUIElementTextarea   = SalsahGUINamespace + "Textarea"
	GUIElementRichtext   = SalsahGUINamespace + "Richtext"
	GUIElementList       = SalsahGUINamespace + "List"
	GUIElementPulldown   = SalsahGUINamespace + "Pulldown"
	GUIElementRadio      = SalsahGUINamespace + "Radio"
	GUIElementSearchbox  = SalsahGUINamespace + "Searchbox"
)

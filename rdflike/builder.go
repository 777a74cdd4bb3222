package rdflike

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

// Builder converts parsed resources into their RDF-like form.
// It never contacts the network and tolerates malformed value content.
type Builder struct {
	authorships resource.AuthorshipLookup
	lists       *resource.ListLookup
	logger      *slog.Logger
}

// NewBuilder creates a Builder with read-only lookups.
func NewBuilder(authorships resource.AuthorshipLookup, lists *resource.ListLookup, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{authorships: authorships, lists: lists, logger: logger}
}

// Build converts every resource. An error means a value kind has no
// conversion, which is a programming error rather than bad input.
func (b *Builder) Build(resources []resource.ParsedResource) (*Data, error) {
	data := &Data{Resources: make([]Resource, 0, len(resources))}
	for _, res := range resources {
		r, err := b.buildResource(res)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", res.ID, err)
		}
		data.Resources = append(data.Resources, r)
	}
	return data, nil
}

func (b *Builder) buildResource(res resource.ParsedResource) (Resource, error) {
	values := make([]Value, 0, len(res.Values)+1)
	for _, v := range res.Values {
		val, err := b.buildValue(res.ID, v)
		if err != nil {
			return Resource{}, err
		}
		values = append(values, val)
	}
	if res.FileValue != nil {
		if fv, ok := b.buildFileValue(res.ID, *res.FileValue); ok {
			values = append(values, fv)
		}
	}

	props := []PropertyObject{
		{Property: PropRDFSLabel, Value: res.Label, ObjectType: ObjectString},
		{Property: PropRDFType, Value: res.Type, ObjectType: ObjectIRI},
	}
	props = append(props, standoffLinks(res.Values)...)
	if res.Permissions != "" {
		props = append(props, PropertyObject{Property: PropPermissions, Value: res.Permissions, ObjectType: ObjectString})
	}

	out := Resource{ID: res.ID, Properties: props, Values: values}
	if res.Migration != nil {
		out.Migration = &MigrationMetadata{IRI: res.Migration.IRI, CreationDate: res.Migration.CreationDate}
	}
	return out, nil
}

func (b *Builder) buildValue(resID string, v resource.ParsedValue) (Value, error) {
	switch v.Type {
	case knora.ValueTypeDate:
		return b.dateValue(v), nil
	case knora.ValueTypeInterval:
		return b.intervalValue(v), nil
	case knora.ValueTypeList:
		return b.listValue(resID, v), nil
	case knora.ValueTypeGeometry:
		return b.geometryValue(resID, v), nil
	case knora.ValueTypeBoolean, knora.ValueTypeColor, knora.ValueTypeDecimal, knora.ValueTypeGeoname,
		knora.ValueTypeInteger, knora.ValueTypeLink, knora.ValueTypeRichtext, knora.ValueTypeSimpleText,
		knora.ValueTypeTime, knora.ValueTypeURI:
		return b.genericValue(v, textPointer(v)), nil
	default:
		return Value{}, fmt.Errorf("no conversion for value type %q of property %s", v.Type, v.Property)
	}
}

func (b *Builder) genericValue(v resource.ParsedValue, payload *string) Value {
	ot, _ := ObjectTypeFor(v.Type)
	return Value{
		Property:   v.Property,
		Payload:    payload,
		Type:       v.Type,
		ObjectType: ot,
		Metadata:   valueMetadata(v),
	}
}

func (b *Builder) dateValue(v resource.ParsedValue) Value {
	val := b.genericValue(v, textPointer(v))
	if val.Payload != nil && *val.Payload != "" {
		val.Metadata = append(val.Metadata, xsdLikeDates(*val.Payload)...)
	}
	return val
}

func (b *Builder) intervalValue(v resource.ParsedValue) Value {
	var bounds []PropertyObject
	if iv, ok := v.Payload.(resource.Interval); ok {
		if iv.Start != "" {
			bounds = append(bounds, PropertyObject{Property: PropIntervalStart, Value: iv.Start, ObjectType: ObjectDecimal})
		}
		if iv.End != "" {
			bounds = append(bounds, PropertyObject{Property: PropIntervalEnd, Value: iv.End, ObjectType: ObjectDecimal})
		}
	}
	val := b.genericValue(v, nil)
	val.Metadata = append(bounds, val.Metadata...)
	return val
}

// listValue resolves the node IRI. Unknown nodes keep their input as
// "list / node" so the user can recognise it in the validation message.
func (b *Builder) listValue(resID string, v resource.ParsedValue) Value {
	ref, ok := v.Payload.(resource.ListRef)
	if !ok {
		return b.genericValue(v, textPointer(v))
	}
	if iri, found := b.lists.Resolve(ref); found {
		val := b.genericValue(v, &iri)
		val.ObjectType = ObjectIRI
		return val
	}
	var parts []string
	for _, p := range []string{ref.List, ref.Node} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	joined := strings.Join(parts, " / ")
	b.logger.Warn("List node not found",
		slog.String("resource", resID),
		slog.String("property", v.Property),
		slog.String("node", joined))
	return b.genericValue(v, &joined)
}

// geometryValue canonicalises the JSON payload. Malformed JSON leaves the
// value without payload.
func (b *Builder) geometryValue(resID string, v resource.ParsedValue) Value {
	text, ok := v.TextPayload()
	if !ok {
		return b.genericValue(v, nil)
	}
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		b.logger.Warn("Geometry value is not valid JSON",
			slog.String("resource", resID),
			slog.String("property", v.Property),
			slog.String("error", err.Error()))
		return b.genericValue(v, nil)
	}
	canonical, err := json.Marshal(parsed)
	if err != nil {
		return b.genericValue(v, nil)
	}
	s := string(canonical)
	return b.genericValue(v, &s)
}

func (b *Builder) buildFileValue(resID string, fv resource.ParsedFileValue) (Value, bool) {
	if fv.Value == "" || fv.Type == "" {
		return Value{}, false
	}
	prop, ok := knora.FileValueProperty(fv.Type)
	if !ok {
		b.logger.Warn("Unknown file value type",
			slog.String("resource", resID),
			slog.String("type", string(fv.Type)))
		return Value{}, false
	}
	ot, _ := ObjectTypeFor(fv.Type)
	payload := fv.Value
	return Value{
		Property:   prop,
		Payload:    &payload,
		Type:       fv.Type,
		ObjectType: ot,
		Metadata:   b.fileMetadata(resID, fv.Metadata),
	}, true
}

func (b *Builder) fileMetadata(resID string, md resource.FileMetadata) []PropertyObject {
	var props []PropertyObject
	if md.LicenseIRI != "" {
		props = append(props, PropertyObject{Property: PropLicense, Value: md.LicenseIRI, ObjectType: ObjectIRI})
	}
	if md.CopyrightHolder != "" {
		props = append(props, PropertyObject{Property: PropCopyrightHolder, Value: md.CopyrightHolder, ObjectType: ObjectString})
	}
	if md.AuthorshipID != "" {
		authors, found := b.authorships.Authors(md.AuthorshipID)
		if !found {
			// An empty authorship is reported by the content shapes.
			b.logger.Warn("Authorship id not found",
				slog.String("resource", resID),
				slog.String("authorship_id", md.AuthorshipID))
			authors = []string{""}
		}
		for _, a := range authors {
			props = append(props, PropertyObject{Property: PropAuthorship, Value: a, ObjectType: ObjectString})
		}
	}
	if md.Permissions != "" {
		props = append(props, PropertyObject{Property: PropPermissions, Value: md.Permissions, ObjectType: ObjectString})
	}
	return props
}

func valueMetadata(v resource.ParsedValue) []PropertyObject {
	var props []PropertyObject
	if v.Permissions != "" {
		props = append(props, PropertyObject{Property: PropPermissions, Value: v.Permissions, ObjectType: ObjectString})
	}
	if v.Comment != "" {
		props = append(props, PropertyObject{Property: PropValueComment, Value: v.Comment, ObjectType: ObjectString})
	}
	return props
}

func textPointer(v resource.ParsedValue) *string {
	text, ok := v.TextPayload()
	if !ok {
		return nil
	}
	return &text
}

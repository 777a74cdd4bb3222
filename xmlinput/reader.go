// Package xmlinput reads DSP XML data files into parsed resources.
package xmlinput

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/net/html/charset"

	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

// ErrNotXML is returned for input files that are not XML.
var ErrNotXML = errors.New("input file is not an XML document")

// sniffLen is the number of bytes inspected to detect the file type.
const sniffLen = 3072

// Document is the content of one DSP XML file.
type Document struct {
	Shortcode       string
	DefaultOntology string
	Resources       []resource.ParsedResource
	Authorships     resource.AuthorshipLookup
	PermissionIDs   []string
	// Ontologies are the namespaces of the project ontologies the file
	// refers to.
	Ontologies []string
}

// ResourceTypes returns the distinct resource classes in order of first use.
func (d *Document) ResourceTypes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Resources {
		if !seen[r.Type] {
			seen[r.Type] = true
			out = append(out, r.Type)
		}
	}
	return out
}

var propertyTypes = map[string]knora.ValueType{
	"boolean-prop":  knora.ValueTypeBoolean,
	"color-prop":    knora.ValueTypeColor,
	"date-prop":     knora.ValueTypeDate,
	"decimal-prop":  knora.ValueTypeDecimal,
	"geometry-prop": knora.ValueTypeGeometry,
	"geoname-prop":  knora.ValueTypeGeoname,
	"integer-prop":  knora.ValueTypeInteger,
	"interval-prop": knora.ValueTypeInterval,
	"list-prop":     knora.ValueTypeList,
	"resptr-prop":   knora.ValueTypeLink,
	"time-prop":     knora.ValueTypeTime,
	"uri-prop":      knora.ValueTypeURI,
}

var fileTypes = []knora.ValueType{
	knora.ValueTypeArchiveFile,
	knora.ValueTypeAudioFile,
	knora.ValueTypeDocumentFile,
	knora.ValueTypeMovingImageFile,
	knora.ValueTypeStillImageFile,
	knora.ValueTypeTextFile,
}

// Reader parses DSP XML files.
type Reader struct {
	apiURL string
	logger *slog.Logger
}

// NewReader creates a Reader. Project ontology names are expanded against
// apiURL. A nil logger uses slog.Default().
func NewReader(apiURL string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{apiURL: apiURL, logger: logger}
}

// ReadFile checks that the file is XML and parses it.
func (r *Reader) ReadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	if mt := mimetype.Detect(head); !isXML(mt) {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotXML, name, mt.String())
	}
	return r.Read(br)
}

func isXML(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/xml") || m.Is("application/xml") {
			return true
		}
	}
	return false
}

// Read parses a DSP XML document.
func (r *Reader) Read(in io.Reader) (*Document, error) {
	dec := xml.NewDecoder(in)
	dec.CharsetReader = charset.NewReaderLabel

	var raw document
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse XML: %w", err)
	}
	if raw.Shortcode == "" {
		return nil, errors.New("parse XML: the root element has no shortcode")
	}

	ns := NewNamespaces(r.apiURL, raw.Shortcode, raw.DefaultOntology)
	doc := &Document{
		Shortcode:       raw.Shortcode,
		DefaultOntology: raw.DefaultOntology,
		Authorships:     make(resource.AuthorshipLookup, len(raw.Authorships)),
		Resources:       make([]resource.ParsedResource, 0, len(raw.Resources)),
	}
	for _, p := range raw.Permissions {
		doc.PermissionIDs = append(doc.PermissionIDs, p.ID)
	}
	for _, a := range raw.Authorships {
		authors := make([]string, 0, len(a.Authors))
		for _, name := range a.Authors {
			authors = append(authors, strings.TrimSpace(name))
		}
		doc.Authorships[a.ID] = authors
	}
	for _, res := range raw.Resources {
		parsed, err := r.resource(ns, res)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", res.ID, err)
		}
		doc.Resources = append(doc.Resources, parsed)
	}
	doc.Ontologies = ns.Used()

	r.logger.Debug("Parsed XML input",
		slog.String("shortcode", doc.Shortcode),
		slog.Int("resources", len(doc.Resources)),
		slog.Int("permissions", len(doc.PermissionIDs)))
	return doc, nil
}

func (r *Reader) resource(ns *Namespaces, res xmlResource) (resource.ParsedResource, error) {
	restype, err := ns.Expand(res.Restype)
	if err != nil {
		return resource.ParsedResource{}, err
	}
	out := resource.ParsedResource{
		ID:          res.ID,
		Type:        restype,
		Label:       res.Label,
		Permissions: res.Permissions,
	}
	if res.IRI != "" || res.ARK != "" || res.CreationDate != "" {
		out.Migration = &resource.MigrationMetadata{IRI: res.IRI, CreationDate: res.CreationDate}
	}

	for _, prop := range res.Properties {
		switch tag := prop.XMLName.Local; tag {
		case "bitstream":
			out.FileValue = r.bitstream(res.ID, prop)
		case "iiif-uri":
			if uri := strings.TrimSpace(prop.Text); uri != "" {
				out.FileValue = &resource.ParsedFileValue{
					Value:    uri,
					Type:     knora.ValueTypeStillImageIIIF,
					Metadata: fileMetadata(prop),
				}
			}
		default:
			values, err := r.values(ns, prop)
			if err != nil {
				return resource.ParsedResource{}, err
			}
			out.Values = append(out.Values, values...)
		}
	}
	return out, nil
}

func (r *Reader) bitstream(resID string, prop xmlProperty) *resource.ParsedFileValue {
	name := strings.TrimSpace(prop.Text)
	if name == "" {
		return nil
	}
	t, ok := fileValueType(name)
	if !ok {
		r.logger.Warn("Unsupported file extension",
			slog.String("resource", resID),
			slog.String("file", name))
		return nil
	}
	return &resource.ParsedFileValue{Value: name, Type: t, Metadata: fileMetadata(prop)}
}

// fileValueType derives the file value kind from the file extension.
func fileValueType(name string) (knora.ValueType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	for _, t := range fileTypes {
		prop, _ := knora.FileValueProperty(t)
		for _, e := range knora.FileExtensions(prop) {
			if e == ext {
				return t, true
			}
		}
	}
	return "", false
}

func fileMetadata(prop xmlProperty) resource.FileMetadata {
	return resource.FileMetadata{
		LicenseIRI:      prop.License,
		CopyrightHolder: prop.CopyrightHolder,
		AuthorshipID:    prop.AuthorshipID,
		Permissions:     prop.Permissions,
	}
}

func (r *Reader) values(ns *Namespaces, prop xmlProperty) ([]resource.ParsedValue, error) {
	tag := prop.XMLName.Local
	t, known := propertyTypes[tag]
	if !known && tag != "text-prop" {
		r.logger.Debug("Skipping unknown element", slog.String("element", tag))
		return nil, nil
	}
	name, err := ns.Expand(prop.Name)
	if err != nil {
		return nil, err
	}

	out := make([]resource.ParsedValue, 0, len(prop.Values))
	for _, v := range prop.Values {
		pv := resource.ParsedValue{
			Property:    name,
			Type:        t,
			Permissions: v.Permissions,
			Comment:     v.Comment,
		}
		text := strings.TrimSpace(v.Text)
		switch tag {
		case "text-prop":
			switch v.Encoding {
			case "utf8":
				pv.Type = knora.ValueTypeSimpleText
			case "xml":
				pv.Type = knora.ValueTypeRichtext
				text = strings.TrimSpace(v.Inner)
			default:
				return nil, fmt.Errorf("unknown encoding %q of property %s", v.Encoding, prop.Name)
			}
			pv.Payload = textPayload(text)
		case "list-prop":
			if text != "" {
				pv.Payload = resource.ListRef{List: prop.List, Node: text}
			}
		case "interval-prop":
			if text != "" {
				start, end, _ := strings.Cut(text, ":")
				pv.Payload = resource.Interval{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
			}
		default:
			pv.Payload = textPayload(text)
		}
		out = append(out, pv)
	}
	return out, nil
}

// textPayload keeps an empty element as a value without payload.
func textPayload(s string) resource.Payload {
	if s == "" {
		return nil
	}
	return resource.Text(s)
}

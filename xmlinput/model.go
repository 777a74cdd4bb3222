package xmlinput

import "encoding/xml"

// document mirrors the parts of a DSP XML file that are validated.
// Element names match regardless of the XML namespace.
type document struct {
	XMLName         xml.Name         `xml:"knora"`
	Shortcode       string           `xml:"shortcode,attr"`
	DefaultOntology string           `xml:"default-ontology,attr"`
	Permissions     []xmlPermissions `xml:"permissions"`
	Authorships     []xmlAuthorship  `xml:"authorship"`
	Resources       []xmlResource    `xml:"resource"`
}

type xmlPermissions struct {
	ID string `xml:"id,attr"`
}

type xmlAuthorship struct {
	ID      string   `xml:"id,attr"`
	Authors []string `xml:"author"`
}

type xmlResource struct {
	ID           string        `xml:"id,attr"`
	Label        string        `xml:"label,attr"`
	Restype      string        `xml:"restype,attr"`
	Permissions  string        `xml:"permissions,attr"`
	IRI          string        `xml:"iri,attr"`
	ARK          string        `xml:"ark,attr"`
	CreationDate string        `xml:"creation_date,attr"`
	Properties   []xmlProperty `xml:",any"`
}

// xmlProperty is a *-prop element, or a bitstream or iiif-uri element whose
// content is the file name.
type xmlProperty struct {
	XMLName         xml.Name
	Name            string     `xml:"name,attr"`
	List            string     `xml:"list,attr"`
	License         string     `xml:"license,attr"`
	CopyrightHolder string     `xml:"copyright-holder,attr"`
	AuthorshipID    string     `xml:"authorship-id,attr"`
	Permissions     string     `xml:"permissions,attr"`
	Text            string     `xml:",chardata"`
	Values          []xmlValue `xml:",any"`
}

type xmlValue struct {
	XMLName     xml.Name
	Encoding    string   `xml:"encoding,attr"`
	Permissions string   `xml:"permissions,attr"`
	Comment     string   `xml:"comment,attr"`
	Text        string   `xml:",chardata"`
	Inner       string   `xml:",innerxml"`
}

package shapes

import (
	"fmt"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

func propShapeIRI(prop string) graph.Term { return graph.IRI(prop + "_PropShape") }
func nodeShapeIRI(prop string) graph.Term { return graph.IRI(prop + "_NodeShape") }

// constructContentShapes builds the property shapes that check the value
// nodes of every editable property used by a resource class.
func (c *Constructor) constructContentShapes(onto *ontology, lists []resource.List) *graph.Graph {
	g := graph.New()
	listsByIRI := make(map[string]resource.List, len(lists))
	for _, l := range lists {
		listsByIRI[l.IRI] = l
	}

	done := make(map[string]bool)
	for _, class := range onto.resourceClasses() {
		g.Add(class, rdfType, shNodeShape)
		g.Add(class, shProperty, graph.IRI(knora.ShapeRDFSLabelContent))
		g.Add(class, shProperty, graph.IRI(knora.ShapeStandoffLinkContent))

		for _, card := range onto.cardinalities(class) {
			if card.property == knora.Seqnum || card.property == knora.IsPartOf {
				g.Add(class, shProperty, graph.IRI(knora.ShapeSeqnumPropShape))
			}
			if !onto.editableProperty(card.property) {
				continue
			}
			g.Add(class, shProperty, propShapeIRI(card.property))
			if done[card.property] {
				continue
			}
			done[card.property] = true
			c.propertyShape(g, onto, card.property, listsByIRI)
		}
	}
	return g
}

func (c *Constructor) propertyShape(g *graph.Graph, onto *ontology, prop string, lists map[string]resource.List) {
	shape := propShapeIRI(prop)
	g.Add(shape, rdfType, shPropertyShape)
	g.Add(shape, shPath, graph.IRI(prop))

	if onto.isLinkProperty(prop) {
		g.Add(shape, shClass, graph.IRI(knora.ClassLinkValue))
		g.Add(shape, shMessage, graph.String("This property requires a LinkValue"))
		if rng, ok := onto.objectType(prop); ok {
			linkTargetShape(g, prop, rng)
			g.Add(shape, shNode, nodeShapeIRI(prop))
		}
		return
	}

	objType, ok := onto.objectType(prop)
	if !ok {
		c.logger.Debug("Property has no object type", "property", prop)
		return
	}
	g.Add(shape, shClass, graph.IRI(objType))
	g.Add(shape, shMessage, graph.String("This property requires a "+graph.LocalName(objType)))

	switch objType {
	case knora.ClassTextValue:
		if node, ok := knora.TextShapeForGUIElement(onto.guiElement(prop)); ok {
			g.Add(shape, shNode, graph.IRI(node))
		}
	case knora.ClassListValue:
		listIRI, ok := onto.listIRI(prop)
		if !ok {
			return
		}
		list, ok := lists[listIRI]
		if !ok {
			c.logger.Warn("List of property not found in project", "property", prop, "list", listIRI)
			return
		}
		listNodeShape(g, list)
		g.Add(shape, shNode, graph.IRI(list.IRI))
		g.Add(shape, shSeverity, shViolation)
	}
}

// linkTargetShape restricts the target of a link value to the range of
// the link property. The message carries the range so that the expected
// resource type can be reported.
func linkTargetShape(g *graph.Graph, prop, rng string) {
	node := nodeShapeIRI(prop)
	g.Add(node, rdfType, shNodeShape)
	g.Add(node, shSeverity, shViolation)
	inner := graph.NewBlank()
	g.Add(node, shProperty, inner)
	g.Add(inner, rdfType, shPropertyShape)
	g.Add(inner, shPath, graph.IRI(knora.LinkValueHasTargetID))
	g.Add(inner, shClass, graph.IRI(rng))
	g.Add(inner, shMessage, graph.String(rng))
}

func listNodeShape(g *graph.Graph, list resource.List) {
	node := graph.IRI(list.IRI)
	if g.Has(node, rdfType, shNodeShape) {
		return
	}
	g.Add(node, rdfType, shNodeShape)
	inner := graph.NewBlank()
	g.Add(node, shProperty, inner)
	g.Add(inner, rdfType, shPropertyShape)
	g.Add(inner, shPath, graph.IRI(knora.ListValueAsListNode))
	items := make([]graph.Term, 0, len(list.Nodes))
	for _, n := range list.Nodes {
		items = append(items, graph.IRI(n.IRI))
	}
	g.Add(inner, shIn, g.AddList(items))
	g.Add(inner, shSeverity, shViolation)
	g.Add(inner, shMessage, graph.String(fmt.Sprintf(
		"A valid node from the list '%s' must be used with this property (input displayed in format 'listName / NodeName').",
		list.Name)))
}

// licenseShape restricts knora-api:hasLicense to the licenses enabled for
// the project.
func licenseShape(g *graph.Graph, licenseIRIs []string) {
	shape := graph.IRI(knora.ShapeFileValueLicense)
	g.Add(shape, rdfType, shPropertyShape)
	g.Add(shape, shPath, graph.IRI(knora.HasLicense))
	items := make([]graph.Term, 0, len(licenseIRIs))
	for _, iri := range licenseIRIs {
		items = append(items, graph.IRI(iri))
	}
	g.Add(shape, shIn, g.AddList(items))
	g.Add(shape, shSeverity, shViolation)
	g.Add(shape, shMessage, graph.String("Files and IIIF-URIs require a reference to a license that is enabled in the project."))
}

package shapes

import (
	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

var (
	shNodeShape     = graph.IRI(shacl.NodeShape)
	shPropertyShape = graph.IRI(shacl.PropertyShape)
	shProperty      = graph.IRI(shacl.Property)
	shPath          = graph.IRI(shacl.Path)
	shMinCount      = graph.IRI(shacl.MinCount)
	shMaxCount      = graph.IRI(shacl.MaxCount)
	shMessage       = graph.IRI(shacl.Message)
	shSeverity      = graph.IRI(shacl.Severity)
	shViolation     = graph.IRI(shacl.Violation)
	shClass         = graph.IRI(shacl.Class)
	shNode          = graph.IRI(shacl.Node)
	shIn            = graph.IRI(shacl.In)
)

// cardinalityRule translates one owl restriction into min/max counts.
type cardinalityRule struct {
	min, max int // -1 means not constrained
	message  string
}

func ruleFor(c cardinality) (cardinalityRule, bool) {
	switch {
	case c.kind == w3c.OWLCardinality && c.count == 1:
		return cardinalityRule{min: 1, max: 1, message: "Cardinality 1"}, true
	case c.kind == w3c.OWLMaxCardinality && c.count == 1:
		return cardinalityRule{min: -1, max: 1, message: "Cardinality 0-1"}, true
	case c.kind == w3c.OWLMinCardinality && c.count == 1:
		return cardinalityRule{min: 1, max: -1, message: "Cardinality 1-n"}, true
	case c.kind == w3c.OWLMinCardinality && c.count == 0:
		return cardinalityRule{min: -1, max: -1}, true
	}
	return cardinalityRule{}, false
}

// constructCardinalityShapes builds one closed node shape per resource class
// with one property shape per cardinality. Classes the template already
// covers are skipped.
func (c *Constructor) constructCardinalityShapes(onto *ontology) *graph.Graph {
	g := graph.New()
	for _, class := range onto.resourceClasses() {
		if c.templates.Cardinality.HasType(class, shacl.NodeShape) {
			continue
		}
		g.Add(class, rdfType, shNodeShape)
		g.Add(class, graph.IRI(shacl.ClosedByTypes), graph.Bool(true))
		g.Add(class, shProperty, graph.IRI(knora.ShapeHasPermissions))
		g.Add(class, shProperty, graph.IRI(knora.ShapeRDFSLabel))
		g.Add(class, shProperty, graph.IRI(knora.ShapeStandoffLink))

		for _, card := range onto.cardinalities(class) {
			if !onto.editableProperty(card.property) {
				continue
			}
			rule, ok := ruleFor(card)
			if !ok {
				c.logger.Debug("Skipping unsupported cardinality",
					"class", class.Value, "property", card.property, "kind", graph.LocalName(card.kind), "count", card.count)
				continue
			}
			shape := graph.NewBlank()
			g.Add(class, shProperty, shape)
			g.Add(shape, rdfType, shPropertyShape)
			g.Add(shape, shPath, graph.IRI(card.property))
			if rule.min >= 0 {
				g.Add(shape, shMinCount, graph.Int(rule.min))
			}
			if rule.max >= 0 {
				g.Add(shape, shMaxCount, graph.Int(rule.max))
			}
			if rule.message != "" {
				g.Add(shape, shSeverity, shViolation)
				g.Add(shape, shMessage, graph.String(rule.message))
			}
		}
	}
	return g
}

// permissionsShape restricts knora-api:hasPermissions to the permission ids
// defined in the input.
func permissionsShape(g *graph.Graph, iri string, permissionIDs []string, maxOne bool) {
	shape := graph.IRI(iri)
	g.Add(shape, rdfType, shPropertyShape)
	g.Add(shape, shPath, graph.IRI(knora.HasPermissions))
	if maxOne {
		g.Add(shape, shMaxCount, graph.Int(1))
	}
	items := make([]graph.Term, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		items = append(items, graph.String(id))
	}
	g.Add(shape, shIn, g.AddList(items))
	g.Add(shape, shSeverity, shViolation)
	g.Add(shape, shMessage, graph.String("You must reference one of the permission ids defined in your data."))
}

package shapes

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

var (
	rdfType      = graph.IRI(w3c.RDFType)
	subClassOf   = graph.IRI(w3c.RDFSSubClassOf)
	owlClass     = graph.IRI(w3c.OWLClass)
	owlOnProp    = graph.IRI(w3c.OWLOnProperty)
	owlRestrict  = graph.IRI(w3c.OWLRestriction)
	objectType   = graph.IRI(knora.ObjectType)
	guiElement   = graph.IRI(knora.GUIElement)
	guiAttribute = graph.IRI(knora.GUIAttribute)
)

// cardinality is one owl:Restriction of a resource class.
type cardinality struct {
	property string
	kind     string // owl:cardinality, owl:minCardinality or owl:maxCardinality
	count    int
}

// ontology answers the questions shape construction asks about the merged
// project and knora-api ontologies.
type ontology struct {
	g *graph.Graph
}

func newOntology(graphs ...*graph.Graph) *ontology {
	return &ontology{g: graph.Union(graphs...)}
}

// isTrue reports whether s has a boolean true for p.
func (o *ontology) isTrue(s graph.Term, p string) bool {
	for _, obj := range o.g.Objects(s, graph.IRI(p)) {
		if obj.IsLiteral() && (obj.Value == "true" || obj.Value == "1") {
			return true
		}
	}
	return false
}

// resourceClasses returns the instantiable resource classes, sorted.
func (o *ontology) resourceClasses() []graph.Term {
	var classes []graph.Term
	for _, c := range o.g.Subjects(rdfType, owlClass) {
		if c.IsIRI() && o.isTrue(c, knora.IsResourceClass) && o.isTrue(c, knora.CanBeInstantiated) {
			classes = append(classes, c)
		}
	}
	sortTerms(classes)
	return classes
}

// cardinalities returns the restrictions declared on class.
func (o *ontology) cardinalities(class graph.Term) []cardinality {
	var out []cardinality
	for _, r := range o.g.Objects(class, subClassOf) {
		if !o.g.Has(r, rdfType, owlRestrict) {
			continue
		}
		prop, ok := o.g.Object(r, owlOnProp)
		if !ok || !prop.IsIRI() {
			continue
		}
		for _, kind := range []string{w3c.OWLCardinality, w3c.OWLMinCardinality, w3c.OWLMaxCardinality} {
			lit, ok := o.g.Object(r, graph.IRI(kind))
			if !ok {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(lit.Value))
			if err != nil {
				continue
			}
			out = append(out, cardinality{property: prop.Value, kind: kind, count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].property < out[j].property })
	return out
}

// editableProperty reports whether prop is validated: editable, and not the
// link value twin of a link property.
func (o *ontology) editableProperty(prop string) bool {
	p := graph.IRI(prop)
	return o.isTrue(p, knora.IsEditable) && !o.isTrue(p, knora.IsLinkValueProperty)
}

func (o *ontology) isLinkProperty(prop string) bool {
	return o.isTrue(graph.IRI(prop), knora.IsLinkProperty)
}

func (o *ontology) objectType(prop string) (string, bool) {
	t, ok := o.g.Object(graph.IRI(prop), objectType)
	if !ok || !t.IsIRI() {
		return "", false
	}
	return t.Value, true
}

func (o *ontology) guiElement(prop string) string {
	t, ok := o.g.Object(graph.IRI(prop), guiElement)
	if !ok {
		return ""
	}
	return t.Value
}

// listIRI reads the list a list property is bound to from its
// salsah-gui:guiAttribute "hlist=<iri>".
func (o *ontology) listIRI(prop string) (string, bool) {
	for _, attr := range o.g.Objects(graph.IRI(prop), guiAttribute) {
		v := strings.TrimSpace(attr.Value)
		if !strings.HasPrefix(v, "hlist=") {
			continue
		}
		v = strings.TrimPrefix(v, "hlist=")
		v = strings.TrimSuffix(strings.TrimPrefix(v, "<"), ">")
		return v, v != ""
	}
	return "", false
}

// classes returns every owl:Class of the ontology.
func (o *ontology) classes() map[string]bool {
	out := make(map[string]bool)
	for _, c := range o.g.Subjects(rdfType, owlClass) {
		if c.IsIRI() {
			out[c.Value] = true
		}
	}
	return out
}

func sortTerms(terms []graph.Term) {
	sort.Slice(terms, func(i, j int) bool { return terms[i].Value < terms[j].Value })
}

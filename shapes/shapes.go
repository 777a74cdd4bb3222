// Package shapes builds the SHACL shape graphs a project's data is validated
// against. The cardinality graph checks which properties a resource may use
// and how often. The content graph checks the value nodes themselves.
//
// Shapes are derived by walking the project ontologies merged with the
// knora-api ontology, then merged with the fixed API templates.
package shapes

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
)

// ErrNoOntologies is returned when there is no project ontology to derive
// shapes from.
var ErrNoOntologies = errors.New("no project ontologies to construct shapes from")

// ProjectInfo is the project data shape construction depends on besides the
// ontologies.
type ProjectInfo struct {
	Lists         []resource.List
	LicenseIRIs   []string
	PermissionIDs []string
}

// Graphs holds the two constructed shape graphs.
type Graphs struct {
	Cardinality *graph.Graph
	Content     *graph.Graph
}

// Constructor builds shape graphs.
type Constructor struct {
	templates *Templates
	logger    *slog.Logger
}

// Option configures a Constructor.
type Option func(*Constructor)

// WithTemplates replaces the embedded templates.
func WithTemplates(t *Templates) Option {
	return func(c *Constructor) { c.templates = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Constructor) { c.logger = l }
}

// NewConstructor creates a Constructor. Without WithTemplates the
// process-wide templates are used.
func NewConstructor(opts ...Option) (*Constructor, error) {
	c := &Constructor{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.templates == nil {
		t, err := DefaultTemplates()
		if err != nil {
			return nil, err
		}
		c.templates = t
	}
	return c, nil
}

// Construct derives the cardinality and content shapes for the project
// ontologies. The knora-api ontology is walked together with the project
// ontologies because the file value properties are defined there.
func (c *Constructor) Construct(projectOntology, knoraAPI *graph.Graph, info ProjectInfo) (*Graphs, error) {
	if projectOntology == nil || projectOntology.Len() == 0 {
		return nil, ErrNoOntologies
	}
	onto := newOntology(projectOntology, knoraAPI)

	card := c.constructCardinalityShapes(onto)
	permissionsShape(card, knora.ShapeHasPermissions, info.PermissionIDs, true)
	card.AddGraph(c.templates.Cardinality)

	content := c.constructContentShapes(onto, info.Lists)
	permissionsShape(content, knora.ShapeValuePermissions, info.PermissionIDs, false)
	licenseShape(content, info.LicenseIRIs)
	content.AddGraph(c.templates.Content)

	c.logger.Info("Constructed shape graphs",
		slog.Int("cardinality_triples", card.Len()),
		slog.Int("content_triples", content.Len()))
	return &Graphs{Cardinality: card, Content: content}, nil
}

// BindPrefixes binds the API prefixes and one prefix per ontology IRI.
func BindPrefixes(g *graph.Graph, ontologyIRIs []string) {
	g.Bind(knora.PrefixAPI, knora.APINamespace)
	g.Bind(knora.PrefixShapes, knora.ShapesNamespace)
	g.Bind(knora.PrefixSalsahGUI, knora.SalsahGUINamespace)
	g.Bind("dash", shacl.DashNamespace)
	for _, iri := range ontologyIRIs {
		if prefix := OntologyPrefix(iri); prefix != "" {
			g.Bind(prefix, strings.TrimSuffix(iri, "#")+"#")
		}
	}
}

// OntologyPrefix returns the ontology name of an ontology IRI, the second
// to last path segment of http://host/ontology/0001/<name>/v2.
func OntologyPrefix(iri string) string {
	parts := strings.Split(strings.TrimSuffix(strings.TrimSuffix(iri, "#"), "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// UnknownClasses returns the used resource classes defined neither in the
// project ontologies nor in knora-api, sorted.
func UnknownClasses(used []string, ontologies ...*graph.Graph) []string {
	known := newOntology(ontologies...).classes()
	seen := make(map[string]bool)
	var unknown []string
	for _, class := range used {
		if known[class] || seen[class] {
			continue
		}
		seen[class] = true
		unknown = append(unknown, class)
	}
	sort.Strings(unknown)
	return unknown
}

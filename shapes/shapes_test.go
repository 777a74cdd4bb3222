package shapes

import (
	_ "embed"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
)

//go:embed testdata/onto.ttl
var ontoTTL string

const onto = "http://0.0.0.0:3333/ontology/9999/onto/v2#"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testInfo() ProjectInfo {
	return ProjectInfo{
		Lists: []resource.List{{
			Name: "colors",
			IRI:  "http://rdfh.ch/lists/9999/colors",
			Nodes: []resource.ListNode{
				{Name: "red", IRI: "http://rdfh.ch/lists/9999/red"},
				{Name: "blue", IRI: "http://rdfh.ch/lists/9999/blue"},
			},
		}},
		LicenseIRIs:   []string{"http://rdfh.ch/licenses/cc-by-4.0"},
		PermissionIDs: []string{"open", "restricted"},
	}
}

func construct(t *testing.T) *Graphs {
	t.Helper()
	c, err := NewConstructor(WithTemplates(&Templates{Content: graph.New(), Cardinality: graph.New()}), WithLogger(testLogger()))
	require.NoError(t, err)
	g, err := c.Construct(graph.MustParseTurtle(ontoTTL), graph.New(), testInfo())
	require.NoError(t, err)
	return g
}

// propertyShapeFor returns the blank property shape of class with path prop.
func propertyShapeFor(g *graph.Graph, class, prop string) (graph.Term, bool) {
	for _, shape := range g.Objects(graph.IRI(class), shProperty) {
		if shape.IsBlank() && g.Has(shape, shPath, graph.IRI(prop)) {
			return shape, true
		}
	}
	return graph.Term{}, false
}

func TestConstructCardinalityShapes(t *testing.T) {
	g := construct(t).Cardinality
	thing := graph.IRI(onto + "Thing")

	assert.True(t, g.HasType(thing, shacl.NodeShape))
	assert.True(t, g.Has(thing, graph.IRI(shacl.ClosedByTypes), graph.Bool(true)))
	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeHasPermissions)))
	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeRDFSLabel)))
	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeStandoffLink)))

	tests := []struct {
		prop     string
		min, max string
		message  string
	}{
		{onto + "hasInt", "1", "1", "Cardinality 1"},
		{onto + "hasText", "", "1", "Cardinality 0-1"},
		{onto + "hasList", "1", "", "Cardinality 1-n"},
		{onto + "hasLinkTo", "", "", ""},
		{knora.Seqnum, "", "1", "Cardinality 0-1"},
	}
	for _, tt := range tests {
		t.Run(graph.LocalName(tt.prop), func(t *testing.T) {
			shape, ok := propertyShapeFor(g, thing.Value, tt.prop)
			require.True(t, ok)
			check := func(p graph.Term, want string) {
				got, ok := g.Object(shape, p)
				if want == "" {
					assert.False(t, ok)
					return
				}
				require.True(t, ok)
				assert.Equal(t, want, got.Value)
			}
			check(shMinCount, tt.min)
			check(shMaxCount, tt.max)
			check(shMessage, tt.message)
		})
	}

	_, ok := propertyShapeFor(g, thing.Value, onto+"hasLinkToValue")
	assert.False(t, ok, "link value properties are not constrained")
	assert.False(t, g.HasType(graph.IRI(onto+"Abstract"), shacl.NodeShape))
	assert.True(t, g.HasType(graph.IRI(onto+"Person"), shacl.NodeShape))
}

func TestConstructPermissionShapes(t *testing.T) {
	g := construct(t)

	for _, tc := range []struct {
		name  string
		graph *graph.Graph
		shape string
	}{
		{"cardinality", g.Cardinality, knora.ShapeHasPermissions},
		{"content", g.Content, knora.ShapeValuePermissions},
	} {
		t.Run(tc.name, func(t *testing.T) {
			head, ok := tc.graph.Object(graph.IRI(tc.shape), shIn)
			require.True(t, ok)
			assert.Equal(t, []graph.Term{graph.String("open"), graph.String("restricted")}, tc.graph.List(head))
		})
	}
}

func TestConstructContentShapes(t *testing.T) {
	g := construct(t).Content
	thing := graph.IRI(onto + "Thing")

	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeRDFSLabelContent)))
	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeStandoffLinkContent)))
	assert.True(t, g.Has(thing, shProperty, graph.IRI(knora.ShapeSeqnumPropShape)))

	t.Run("value type", func(t *testing.T) {
		shape := propShapeIRI(onto + "hasInt")
		assert.True(t, g.Has(thing, shProperty, shape))
		assert.True(t, g.Has(shape, shClass, graph.IRI(knora.ClassIntValue)))
		assert.True(t, g.Has(shape, shMessage, graph.String("This property requires a IntValue")))
	})

	t.Run("text", func(t *testing.T) {
		shape := propShapeIRI(onto + "hasText")
		assert.True(t, g.Has(shape, shClass, graph.IRI(knora.ClassTextValue)))
		assert.True(t, g.Has(shape, shNode, graph.IRI(knora.ShapeSimpleTextClassShape)))
	})

	t.Run("link", func(t *testing.T) {
		shape := propShapeIRI(onto + "hasLinkTo")
		assert.True(t, g.Has(shape, shClass, graph.IRI(knora.ClassLinkValue)))
		assert.True(t, g.Has(shape, shNode, nodeShapeIRI(onto+"hasLinkTo")))

		inner, ok := g.Object(nodeShapeIRI(onto+"hasLinkTo"), shProperty)
		require.True(t, ok)
		assert.True(t, g.Has(inner, shPath, graph.IRI(knora.LinkValueHasTargetID)))
		assert.True(t, g.Has(inner, shClass, graph.IRI(onto+"Person")))
		assert.True(t, g.Has(inner, shMessage, graph.String(onto+"Person")))
	})

	t.Run("list", func(t *testing.T) {
		listIRI := graph.IRI("http://rdfh.ch/lists/9999/colors")
		shape := propShapeIRI(onto + "hasList")
		assert.True(t, g.Has(shape, shNode, listIRI))

		inner, ok := g.Object(listIRI, shProperty)
		require.True(t, ok)
		head, ok := g.Object(inner, shIn)
		require.True(t, ok)
		assert.Equal(t, []graph.Term{
			graph.IRI("http://rdfh.ch/lists/9999/red"),
			graph.IRI("http://rdfh.ch/lists/9999/blue"),
		}, g.List(head))
		msg, ok := g.Object(inner, shMessage)
		require.True(t, ok)
		assert.Contains(t, msg.Value, "list 'colors'")
	})

	t.Run("link value property", func(t *testing.T) {
		assert.False(t, g.Has(thing, shProperty, propShapeIRI(onto+"hasLinkToValue")))
	})

	t.Run("license", func(t *testing.T) {
		head, ok := g.Object(graph.IRI(knora.ShapeFileValueLicense), shIn)
		require.True(t, ok)
		assert.Equal(t, []graph.Term{graph.IRI("http://rdfh.ch/licenses/cc-by-4.0")}, g.List(head))
	})
}

func TestConstructMergesTemplates(t *testing.T) {
	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	c, err := NewConstructor(WithTemplates(tmpl), WithLogger(testLogger()))
	require.NoError(t, err)
	g, err := c.Construct(graph.MustParseTurtle(ontoTTL), graph.New(), testInfo())
	require.NoError(t, err)

	assert.True(t, g.Cardinality.HasType(graph.IRI(knora.ClassRegion), shacl.NodeShape))
	assert.True(t, g.Cardinality.HasType(graph.IRI(knora.ShapeRDFSLabel), shacl.PropertyShape))
	assert.True(t, g.Content.HasType(graph.IRI(knora.ShapeSeqnumPropShape), shacl.PropertyShape))
	assert.True(t, g.Content.HasType(graph.IRI(knora.ShapeSimpleTextClassShape), shacl.NodeShape))
}

func TestConstructWithoutOntology(t *testing.T) {
	c, err := NewConstructor(WithTemplates(&Templates{Content: graph.New(), Cardinality: graph.New()}))
	require.NoError(t, err)

	_, err = c.Construct(graph.New(), graph.New(), ProjectInfo{})
	assert.ErrorIs(t, err, ErrNoOntologies)
}

func TestDefaultTemplatesSingleton(t *testing.T) {
	ResetTemplates()
	defer ResetTemplates()

	fixture := &Templates{Content: graph.New(), Cardinality: graph.New()}
	InitTemplates(fixture)

	got, err := DefaultTemplates()
	require.NoError(t, err)
	assert.Same(t, fixture, got)
}

func TestOntologyPrefix(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://0.0.0.0:3333/ontology/9999/onto/v2", "onto"},
		{"http://0.0.0.0:3333/ontology/9999/onto/v2#", "onto"},
		{"http://api.knora.org/ontology/knora-api/v2#", "knora-api"},
		{"onto", ""},
	}
	for _, tt := range tests {
		t.Run(tt.iri, func(t *testing.T) {
			assert.Equal(t, tt.want, OntologyPrefix(tt.iri))
		})
	}
}

func TestBindPrefixes(t *testing.T) {
	g := graph.New()
	BindPrefixes(g, []string{"http://0.0.0.0:3333/ontology/9999/onto/v2"})

	prefixes := g.Prefixes()
	assert.Equal(t, onto, prefixes["onto"])
	assert.Equal(t, knora.APINamespace, prefixes[knora.PrefixAPI])
	assert.Equal(t, knora.ShapesNamespace, prefixes[knora.PrefixShapes])
	assert.Equal(t, knora.SalsahGUINamespace, prefixes[knora.PrefixSalsahGUI])
	assert.Equal(t, shacl.DashNamespace, prefixes["dash"])
}

func TestUnknownClasses(t *testing.T) {
	ontology := graph.MustParseTurtle(ontoTTL)
	used := []string{onto + "Thing", onto + "Missing", onto + "Missing", onto + "Another", onto + "Person"}

	assert.Equal(t, []string{onto + "Another", onto + "Missing"}, UnknownClasses(used, ontology, graph.New()))
	assert.Empty(t, UnknownClasses([]string{onto + "Thing"}, ontology))
}

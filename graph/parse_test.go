package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

const report = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

[] a sh:ValidationReport ;
    sh:conforms false ;
    sh:result _:r1 .

_:r1 a sh:ValidationResult ;
    sh:focusNode <http://data/res> ;
    sh:resultMessage "1" ;
    sh:resultSeverity sh:Violation .
`

func TestParseTurtle(t *testing.T) {
	g, err := graph.ParseTurtle(strings.NewReader(report))
	require.NoError(t, err)

	reports := g.Subjects(graph.IRI(w3c.RDFType), graph.IRI(shacl.ValidationReport))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].IsBlank())

	conforms, ok := g.Object(reports[0], graph.IRI(shacl.Conforms))
	require.True(t, ok)
	assert.Equal(t, "false", conforms.Value)
	assert.Equal(t, w3c.XSDBoolean, conforms.Datatype)

	assert.Equal(t, shacl.Namespace, g.Prefixes()["sh"])
}

func TestParseTurtleScopesBlankNodes(t *testing.T) {
	g1, err := graph.ParseTurtleString(report)
	require.NoError(t, err)
	g2, err := graph.ParseTurtleString(report)
	require.NoError(t, err)

	merged := graph.Union(g1, g2)
	results := merged.Subjects(graph.IRI(w3c.RDFType), graph.IRI(shacl.ValidationResult))
	assert.Len(t, results, 2)
}

func TestParseTurtleError(t *testing.T) {
	_, err := graph.ParseTurtleString("<http://a> <http://b> .")
	assert.Error(t, err)
}

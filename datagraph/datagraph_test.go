package datagraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/rdflike"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

const ontoNS = "http://0.0.0.0:3333/ontology/9999/onto/v2#"

func ptr(s string) *string { return &s }

func oneValue(v rdflike.Value) *rdflike.Data {
	return &rdflike.Data{Resources: []rdflike.Resource{{
		ID: "id",
		Properties: []rdflike.PropertyObject{
			{Property: rdflike.PropRDFSLabel, Value: "lbl", ObjectType: rdflike.ObjectString},
			{Property: rdflike.PropRDFType, Value: ontoNS + "ClassWithEverything", ObjectType: rdflike.ObjectIRI},
		},
		Values: []rdflike.Value{v},
	}}}
}

func valueNode(t *testing.T, g *graph.Graph, prop string) graph.Term {
	t.Helper()
	nodes := g.Objects(ResourceIRI("id"), graph.IRI(prop))
	require.Len(t, nodes, 1)
	require.True(t, IsValueNode(nodes[0]))
	return nodes[0]
}

func TestMakeResource(t *testing.T) {
	g, err := Make(oneValue(rdflike.Value{}))
	require.Error(t, err)
	assert.Nil(t, g)

	data := &rdflike.Data{Resources: []rdflike.Resource{{
		ID: "id",
		Properties: []rdflike.PropertyObject{
			{Property: rdflike.PropRDFSLabel, Value: "lbl", ObjectType: rdflike.ObjectString},
			{Property: rdflike.PropRDFType, Value: ontoNS + "ClassWithEverything", ObjectType: rdflike.ObjectIRI},
			{Property: rdflike.PropStandoffLink, Value: "other", ObjectType: rdflike.ObjectInternalID},
		},
	}}}
	g, err = Make(data)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.HasType(ResourceIRI("id"), ontoNS+"ClassWithEverything"))
	assert.True(t, g.Has(ResourceIRI("id"), graph.IRI(w3c.RDFSLabel), graph.String("lbl")))
	assert.True(t, g.Has(ResourceIRI("id"), graph.IRI(knora.HasStandoffLinkTo), graph.IRI(knora.DataNamespace+"other")))
}

// Every value kind must produce a node typed and linked per the type table.
func TestMakeValueMatchesTypeTable(t *testing.T) {
	b := rdflike.NewBuilder(nil, nil, nil)
	for _, vt := range knora.AllValueTypes() {
		t.Run(string(vt), func(t *testing.T) {
			res := resource.ParsedResource{ID: "id", Type: ontoNS + "Thing", Label: "lbl"}
			prop := ontoNS + "testProp"
			if vt.IsFileValue() {
				res.FileValue = &resource.ParsedFileValue{Value: "file.txt", Type: vt}
				prop, _ = knora.FileValueProperty(vt)
			} else if vt == knora.ValueTypeInterval {
				res.Values = []resource.ParsedValue{{Property: prop, Type: vt, Payload: resource.Interval{Start: "1", End: "2"}}}
			} else {
				res.Values = []resource.ParsedValue{resource.NewValue(prop, vt, "{}")}
			}
			data, err := b.Build([]resource.ParsedResource{res})
			require.NoError(t, err)
			g, err := Make(data)
			require.NoError(t, err)

			info, err := knora.PropTypeInfo(vt)
			require.NoError(t, err)
			node := valueNode(t, g, prop)
			assert.True(t, g.HasType(node, info.Class))
			if vt == knora.ValueTypeInterval {
				assert.Len(t, g.Objects(node, graph.IRI(knora.IntervalValueHasStart)), 1)
				assert.Len(t, g.Objects(node, graph.IRI(knora.IntervalValueHasEnd)), 1)
				return
			}
			assert.Len(t, g.Objects(node, graph.IRI(info.Predicate)), 1)
		})
	}
}

func TestMakeValueNodesAreUnique(t *testing.T) {
	v := rdflike.Value{Property: ontoNS + "testInt", Payload: ptr("1"), Type: knora.ValueTypeInteger, ObjectType: rdflike.ObjectInteger}
	data := oneValue(v)
	data.Resources[0].Values = append(data.Resources[0].Values, v)

	g, err := Make(data)
	require.NoError(t, err)
	nodes := g.Objects(ResourceIRI("id"), graph.IRI(ontoNS+"testInt"))
	require.Len(t, nodes, 2)
	assert.NotEqual(t, nodes[0], nodes[1])

	again, err := Make(data)
	require.NoError(t, err)
	other := again.Objects(ResourceIRI("id"), graph.IRI(ontoNS+"testInt"))
	assert.NotContains(t, nodes, other[0])
}

func TestMakeValueWithoutPayload(t *testing.T) {
	v := rdflike.Value{Property: ontoNS + "testGeom", Type: knora.ValueTypeGeometry, ObjectType: rdflike.ObjectString}
	g, err := Make(oneValue(v))
	require.NoError(t, err)
	node := valueNode(t, g, ontoNS+"testGeom")
	assert.True(t, g.HasType(node, knora.ClassGeomValue))
	assert.Len(t, g.Match(node, graph.Any, graph.Any), 1)
}

func TestObject(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ot    rdflike.TripleObjectType
		want  graph.Term
	}{
		{"boolean one", "1", rdflike.ObjectBoolean, graph.Bool(true)},
		{"boolean upper", "TRUE", rdflike.ObjectBoolean, graph.Bool(true)},
		{"boolean zero", "0", rdflike.ObjectBoolean, graph.Bool(false)},
		{"boolean invalid", "yes", rdflike.ObjectBoolean, graph.String("yes")},
		{"integer", "5", rdflike.ObjectInteger, graph.Literal("5", w3c.XSDInteger)},
		{"decimal", "2.5", rdflike.ObjectDecimal, graph.Literal("2.5", w3c.XSDDecimal)},
		{"time", "2019-10-23T13:45:12.01-14:00", rdflike.ObjectDateTime, graph.Literal("2019-10-23T13:45:12.01-14:00", w3c.XSDDateTimeStamp)},
		{"uri", "https://dasch.swiss", rdflike.ObjectURI, graph.Literal("https://dasch.swiss", w3c.XSDAnyURI)},
		{"date", "2000-01-01", rdflike.ObjectDate, graph.Literal("2000-01-01", w3c.XSDDate)},
		{"invalid date", "2000-50-01", rdflike.ObjectDate, graph.String("2000-50-01")},
		{"iri", "http://rdfh.ch/lists/9999/n1", rdflike.ObjectIRI, graph.IRI("http://rdfh.ch/lists/9999/n1")},
		{"empty iri", "", rdflike.ObjectIRI, graph.String("")},
		{"malformed iri", "not an iri", rdflike.ObjectIRI, graph.String("not an iri")},
		{"internal id", "res_1", rdflike.ObjectInternalID, graph.IRI(knora.DataNamespace + "res_1")},
		{"empty internal id", "", rdflike.ObjectInternalID, graph.IRI(knora.DataNamespace)},
		{"string", "text", rdflike.ObjectString, graph.String("text")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, object(tt.value, tt.ot))
		})
	}
}

func TestMakeSerializes(t *testing.T) {
	v := rdflike.Value{Property: ontoNS + "testInt", Payload: ptr("1"), Type: knora.ValueTypeInteger, ObjectType: rdflike.ObjectInteger}
	g, err := Make(oneValue(v))
	require.NoError(t, err)

	out := graph.SerializeTurtle(g)
	parsed, err := graph.ParseTurtleString(out)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), parsed.Len())
}

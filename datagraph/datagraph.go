// Package datagraph turns the RDF-like model into the data graph that is
// validated against the SHACL shapes.
package datagraph

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/rdflike"
	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// valueNodePrefix prefixes every value node IRI.
const valueNodePrefix = knora.DataNamespace + "value_"

// Make builds the data graph. Every value gets a fresh node that is never
// shared, even between values with identical content.
func Make(data *rdflike.Data) (*graph.Graph, error) {
	g := graph.New()
	BindPrefixes(g)
	if data == nil {
		return g, nil
	}
	for _, res := range data.Resources {
		if err := addResource(g, res); err != nil {
			return nil, fmt.Errorf("resource %s: %w", res.ID, err)
		}
	}
	return g, nil
}

// BindPrefixes binds the prefixes of the data graph.
func BindPrefixes(g *graph.Graph) {
	g.Bind(knora.PrefixData, knora.DataNamespace)
	g.Bind(knora.PrefixAPI, knora.APINamespace)
	g.Bind(knora.PrefixShapes, knora.ShapesNamespace)
}

// ResourceIRI returns the data graph node of a resource id.
func ResourceIRI(id string) graph.Term {
	return graph.IRI(knora.DataNamespace + escapeID(id))
}

// IsValueNode reports whether t is a value node minted by Make.
func IsValueNode(t graph.Term) bool {
	return t.IsIRI() && strings.HasPrefix(t.Value, valueNodePrefix)
}

func addResource(g *graph.Graph, res rdflike.Resource) error {
	subject := ResourceIRI(res.ID)
	for _, po := range res.Properties {
		g.Add(subject, graph.IRI(string(po.Property)), object(po.Value, po.ObjectType))
	}
	for _, v := range res.Values {
		if err := addValue(g, subject, v); err != nil {
			return err
		}
	}
	return nil
}

func addValue(g *graph.Graph, subject graph.Term, v rdflike.Value) error {
	info, err := knora.PropTypeInfo(v.Type)
	if err != nil {
		return err
	}
	node := newValueNode()
	g.Add(subject, graph.IRI(v.Property), node)
	g.Add(node, graph.IRI(w3c.RDFType), graph.IRI(info.Class))
	if v.Payload != nil {
		g.Add(node, graph.IRI(info.Predicate), object(*v.Payload, v.ObjectType))
	}
	for _, po := range v.Metadata {
		g.Add(node, graph.IRI(string(po.Property)), object(po.Value, po.ObjectType))
	}
	return nil
}

func newValueNode() graph.Term {
	return graph.IRI(valueNodePrefix + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// object renders a payload. Content that does not fit its declared kind is
// kept as a plain string so the shapes report it.
func object(value string, ot rdflike.TripleObjectType) graph.Term {
	switch ot {
	case rdflike.ObjectIRI:
		if !validIRI(value) {
			return graph.String(value)
		}
		return graph.IRI(value)
	case rdflike.ObjectInternalID:
		return ResourceIRI(value)
	case rdflike.ObjectBoolean:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true":
			return graph.Bool(true)
		case "0", "false":
			return graph.Bool(false)
		}
		return graph.String(value)
	case rdflike.ObjectDate:
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return graph.String(value)
		}
		return graph.Literal(value, w3c.XSDDate)
	}
	dt, ok := ot.Datatype()
	if !ok {
		dt = w3c.XSDString
	}
	return graph.Literal(value, dt)
}

func validIRI(s string) bool {
	if s == "" || strings.ContainsAny(s, " <>\"{}|\\^`\n\t") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// escapeID keeps resource ids that are not valid IRI segments serializable.
func escapeID(id string) string {
	if strings.ContainsAny(id, " <>\"{}|\\^`\n\t%") {
		return url.PathEscape(id)
	}
	return id
}

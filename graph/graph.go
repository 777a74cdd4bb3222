// Package graph provides the in-memory RDF graph every pipeline stage builds on:
// data graphs, shape graphs, ontologies and SHACL validation reports.
//
// A Graph is a set of triples with subject, predicate and object indexes. It
// is not safe for concurrent mutation; stages hand finished graphs to the next
// stage and combine them with Union, which never mutates its inputs.
package graph

import (
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// Triple is a single RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is an indexed set of triples plus the namespace prefixes bound to it.
type Graph struct {
	triples     []Triple
	seen        map[Triple]struct{}
	bySubject   map[Term][]int
	byPredicate map[Term][]int
	byObject    map[Term][]int
	prefixes    map[string]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		seen:        make(map[Triple]struct{}),
		bySubject:   make(map[Term][]int),
		byPredicate: make(map[Term][]int),
		byObject:    make(map[Term][]int),
		prefixes:    make(map[string]string),
	}
}

// Add inserts a triple. Duplicates are ignored.
func (g *Graph) Add(s, p, o Term) {
	g.AddTriple(Triple{Subject: s, Predicate: p, Object: o})
}

// AddTriple inserts a triple. Duplicates are ignored.
func (g *Graph) AddTriple(t Triple) {
	if _, ok := g.seen[t]; ok {
		return
	}
	idx := len(g.triples)
	g.triples = append(g.triples, t)
	g.seen[t] = struct{}{}
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], idx)
	g.byPredicate[t.Predicate] = append(g.byPredicate[t.Predicate], idx)
	g.byObject[t.Object] = append(g.byObject[t.Object], idx)
}

// AddGraph copies all triples and prefixes of other into g.
func (g *Graph) AddGraph(other *Graph) {
	if other == nil {
		return
	}
	for _, t := range other.triples {
		g.AddTriple(t)
	}
	for p, ns := range other.prefixes {
		if _, ok := g.prefixes[p]; !ok {
			g.prefixes[p] = ns
		}
	}
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(s, p, o Term) bool {
	_, ok := g.seen[Triple{Subject: s, Predicate: p, Object: o}]
	return ok
}

// Match returns all triples matching the pattern. Any is a wildcard.
func (g *Graph) Match(s, p, o Term) []Triple {
	candidates := g.candidates(s, p, o)
	var out []Triple
	for _, idx := range candidates {
		t := g.triples[idx]
		if matches(s, t.Subject) && matches(p, t.Predicate) && matches(o, t.Object) {
			out = append(out, t)
		}
	}
	return out
}

func (g *Graph) candidates(s, p, o Term) []int {
	var best []int
	found := false
	pick := func(index map[Term][]int, key Term) {
		if key.IsAny() {
			return
		}
		list := index[key]
		if !found || len(list) < len(best) {
			best = list
			found = true
		}
	}
	pick(g.bySubject, s)
	pick(g.byObject, o)
	pick(g.byPredicate, p)
	if found {
		return best
	}
	all := make([]int, len(g.triples))
	for i := range all {
		all[i] = i
	}
	return all
}

func matches(pattern, term Term) bool {
	return pattern.IsAny() || pattern == term
}

// Objects returns the objects of all triples with subject s and predicate p.
func (g *Graph) Objects(s, p Term) []Term {
	var out []Term
	for _, t := range g.Match(s, p, Any) {
		out = append(out, t.Object)
	}
	return out
}

// Object returns the first object for s and p.
func (g *Graph) Object(s, p Term) (Term, bool) {
	for _, idx := range g.bySubject[s] {
		if t := g.triples[idx]; t.Predicate == p {
			return t.Object, true
		}
	}
	return Term{}, false
}

// Subjects returns the subjects of all triples with predicate p and object o.
func (g *Graph) Subjects(p, o Term) []Term {
	var out []Term
	for _, t := range g.Match(Any, p, o) {
		out = append(out, t.Subject)
	}
	return out
}

// Types returns the rdf:type objects of node.
func (g *Graph) Types(node Term) []Term {
	return g.Objects(node, IRI(w3c.RDFType))
}

// HasType reports whether node is typed with class.
func (g *Graph) HasType(node Term, class string) bool {
	return g.Has(node, IRI(w3c.RDFType), IRI(class))
}

// Bind registers a namespace prefix used when serializing.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the bound prefixes.
func (g *Graph) Prefixes() map[string]string {
	return maps.Clone(g.prefixes)
}

// NewBlank mints a blank node with a globally unique label.
func NewBlank() Term {
	return Blank("b" + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// AddList writes items as an RDF collection and returns its head node.
func (g *Graph) AddList(items []Term) Term {
	if len(items) == 0 {
		return IRI(w3c.RDFNil)
	}
	head := NewBlank()
	current := head
	for i, item := range items {
		g.Add(current, IRI(w3c.RDFFirst), item)
		if i == len(items)-1 {
			g.Add(current, IRI(w3c.RDFRest), IRI(w3c.RDFNil))
			break
		}
		next := NewBlank()
		g.Add(current, IRI(w3c.RDFRest), next)
		current = next
	}
	return head
}

// List reads the RDF collection starting at head.
func (g *Graph) List(head Term) []Term {
	var out []Term
	visited := make(map[Term]bool)
	for head.IsNode() && head != IRI(w3c.RDFNil) && !visited[head] {
		visited[head] = true
		if first, ok := g.Object(head, IRI(w3c.RDFFirst)); ok {
			out = append(out, first)
		}
		next, ok := g.Object(head, IRI(w3c.RDFRest))
		if !ok {
			break
		}
		head = next
	}
	return out
}

// Union returns a new graph holding the triples and prefixes of all inputs.
// The inputs are not modified.
func Union(graphs ...*Graph) *Graph {
	out := New()
	for _, g := range graphs {
		out.AddGraph(g)
	}
	return out
}

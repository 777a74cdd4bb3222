package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

var localNameRe = regexp.MustCompile(`^[A-Za-z0-9_]([A-Za-z0-9_\-.]*[A-Za-z0-9_\-])?$`)

// defaultPrefixes returns the standard namespace prefixes for serialization.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  w3c.RDFNamespace,
		"rdfs": w3c.RDFSNamespace,
		"owl":  w3c.OWLNamespace,
		"xsd":  w3c.XSDNamespace,
		"sh":   shacl.Namespace,
		"dash": shacl.DashNamespace,
	}
}

// Serialize renders g in the given format.
func Serialize(g *Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return SerializeTurtle(g), nil
	case FormatNTriples:
		return SerializeNTriples(g)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// SerializeTurtle renders g as Turtle using its bound prefixes.
func SerializeTurtle(g *Graph) string {
	w := NewTurtleWriter()
	for prefix, ns := range g.prefixes {
		w.SetPrefix(prefix, ns)
	}
	w.WritePrefixes()

	order, bySubject := groupBySubject(g.triples)
	for _, subj := range order {
		triples := bySubject[subj]
		w.WriteSubject(subj)
		for i, t := range triples {
			w.WritePredicate(t.Predicate, t.Object, i == len(triples)-1)
		}
		w.WriteBlank()
	}
	return w.String()
}

// SerializeNTriples renders g as N-Triples in insertion order.
func SerializeNTriples(g *Graph) (string, error) {
	var sb strings.Builder
	enc := rdf.NewTripleEncoder(&sb, rdf.NTriples)
	for _, t := range g.triples {
		tr, err := toRDFTriple(t)
		if err != nil {
			return "", err
		}
		if err := enc.Encode(tr); err != nil {
			return "", fmt.Errorf("encode triple: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush n-triples: %w", err)
	}
	return sb.String(), nil
}

func toRDFTriple(t Triple) (rdf.Triple, error) {
	s, err := toRDFTerm(t.Subject)
	if err != nil {
		return rdf.Triple{}, err
	}
	p, err := toRDFTerm(t.Predicate)
	if err != nil {
		return rdf.Triple{}, err
	}
	o, err := toRDFTerm(t.Object)
	if err != nil {
		return rdf.Triple{}, err
	}
	subj, ok := s.(rdf.Subject)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("invalid subject %s", t.Subject)
	}
	pred, ok := p.(rdf.Predicate)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("invalid predicate %s", t.Predicate)
	}
	obj, ok := o.(rdf.Object)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("invalid object %s", t.Object)
	}
	return rdf.Triple{Subj: subj, Pred: pred, Obj: obj}, nil
}

// toRDFTerm is the inverse of convertTerm.
func toRDFTerm(t Term) (rdf.Term, error) {
	switch t.Kind {
	case KindIRI:
		iri, err := rdf.NewIRI(t.Value)
		if err != nil {
			return nil, fmt.Errorf("encode IRI %q: %w", t.Value, err)
		}
		return iri, nil
	case KindBlank:
		b, err := rdf.NewBlank(t.Value)
		if err != nil {
			return nil, fmt.Errorf("encode blank node %q: %w", t.Value, err)
		}
		return b, nil
	case KindLiteral:
		if t.Lang != "" {
			lit, err := rdf.NewLangLiteral(t.Value, t.Lang)
			if err != nil {
				return nil, fmt.Errorf("encode literal %q: %w", t.Value, err)
			}
			return lit, nil
		}
		dt, err := rdf.NewIRI(t.Datatype)
		if err != nil {
			return nil, fmt.Errorf("encode datatype %q: %w", t.Datatype, err)
		}
		return rdf.NewTypedLiteral(t.Value, dt), nil
	default:
		return nil, fmt.Errorf("cannot encode wildcard term")
	}
}

func groupBySubject(triples []Triple) ([]Term, map[Term][]Triple) {
	var order []Term
	bySubject := make(map[Term][]Triple)
	for _, t := range triples {
		if _, ok := bySubject[t.Subject]; !ok {
			order = append(order, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	return order, bySubject
}

// TurtleWriter writes RDF in Turtle format.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WritePrefixes writes prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
	}
	w.sb.WriteString("\n")
}

// WriteSubject starts a new subject block.
func (w *TurtleWriter) WriteSubject(subject Term) {
	w.sb.WriteString(w.format(subject))
	w.sb.WriteString("\n")
}

// WritePredicate writes a predicate-object pair.
func (w *TurtleWriter) WritePredicate(predicate, object Term, last bool) {
	terminator := " ;"
	if last {
		terminator = " ."
	}
	pred := w.format(predicate)
	if predicate.Value == w3c.RDFType {
		pred = "a"
	}
	w.sb.WriteString(fmt.Sprintf("    %s %s%s\n", pred, w.format(object), terminator))
}

// WriteBlank writes a blank line for readability.
func (w *TurtleWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

func (w *TurtleWriter) format(t Term) string {
	switch t.Kind {
	case KindIRI:
		return w.compact(t.Value)
	case KindLiteral:
		lex := `"` + escapeString(t.Value) + `"`
		if t.Lang != "" {
			return lex + "@" + t.Lang
		}
		return lex + "^^" + w.compact(t.Datatype)
	default:
		return t.String()
	}
}

// compact renders iri as prefix:local when a bound namespace allows it.
func (w *TurtleWriter) compact(iri string) string {
	bestPrefix, bestNS := "", ""
	for prefix, ns := range w.prefixes {
		if len(ns) > len(bestNS) && strings.HasPrefix(iri, ns) && localNameRe.MatchString(iri[len(ns):]) {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS == "" {
		return "<" + iri + ">"
	}
	return bestPrefix + ":" + iri[len(bestNS):]
}

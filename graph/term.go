package graph

import (
	"fmt"
	"strings"

	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

// Kind distinguishes the three RDF term kinds.
type Kind uint8

// Term kinds. The zero Kind marks the wildcard term Any.
const (
	KindAny Kind = iota
	KindIRI
	KindBlank
	KindLiteral
)

// Term is an RDF term. Terms are comparable and can be used as map keys.
type Term struct {
	Kind     Kind
	Value    string // IRI, blank node label or lexical form
	Datatype string // literals only
	Lang     string // language tagged literals only
}

// Any matches every term in Graph.Match.
var Any = Term{}

// IRI returns an IRI term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Literal returns a typed literal. An empty datatype means xsd:string.
func Literal(value, datatype string) Term {
	if datatype == "" {
		datatype = w3c.XSDString
	}
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// LangLiteral returns a language tagged string.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: w3c.RDFNamespace + "langString", Lang: lang}
}

// String returns an xsd:string literal.
func String(value string) Term {
	return Literal(value, w3c.XSDString)
}

// Bool returns an xsd:boolean literal.
func Bool(v bool) Term {
	return Literal(fmt.Sprintf("%t", v), w3c.XSDBoolean)
}

// Int returns an xsd:integer literal.
func Int(v int) Term {
	return Literal(fmt.Sprintf("%d", v), w3c.XSDInteger)
}

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsAny reports whether t is the wildcard.
func (t Term) IsAny() bool { return t.Kind == KindAny }

// IsNode reports whether t can be a subject.
func (t Term) IsNode() bool { return t.Kind == KindIRI || t.Kind == KindBlank }

// String returns the N-Triples form of the term.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		lex := `"` + escapeString(t.Value) + `"`
		if t.Lang != "" {
			return lex + "@" + t.Lang
		}
		return lex + "^^<" + t.Datatype + ">"
	default:
		return "*"
	}
}

// LocalName returns the part of an IRI after the last '#' or '/'.
func LocalName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

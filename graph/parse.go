package graph

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/knakk/rdf"
)

var prefixDeclRe = regexp.MustCompile(`(?mi)^\s*@?prefix\s+([A-Za-z][\w\-.]*)?:\s*<([^>]*)>`)

// ParseTurtle reads a Turtle document into a new graph.
// Blank node labels are scoped to the document, so parsing two documents that
// both use _:b0 yields two distinct nodes.
func ParseTurtle(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read turtle: %w", err)
	}
	return ParseTurtleString(string(data))
}

// ParseTurtleString reads a Turtle document held in memory.
func ParseTurtleString(doc string) (*Graph, error) {
	g := New()
	scope := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	dec := rdf.NewTripleDecoder(strings.NewReader(doc), rdf.Turtle)
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse turtle: %w", err)
		}
		s, err := convertTerm(tr.Subj, scope)
		if err != nil {
			return nil, err
		}
		p, err := convertTerm(tr.Pred, scope)
		if err != nil {
			return nil, err
		}
		o, err := convertTerm(tr.Obj, scope)
		if err != nil {
			return nil, err
		}
		g.Add(s, p, o)
	}

	for _, m := range prefixDeclRe.FindAllStringSubmatch(doc, -1) {
		if m[1] != "" {
			g.Bind(m[1], m[2])
		}
	}
	return g, nil
}

// MustParseTurtle is ParseTurtleString for documents compiled into the binary.
func MustParseTurtle(doc string) *Graph {
	g, err := ParseTurtleString(doc)
	if err != nil {
		panic(err)
	}
	return g
}

func convertTerm(t rdf.Term, scope string) (Term, error) {
	switch v := t.(type) {
	case rdf.IRI:
		return IRI(v.String()), nil
	case rdf.Blank:
		return Blank(scope + "_" + strings.TrimPrefix(v.String(), "_:")), nil
	case rdf.Literal:
		if lang := v.Lang(); lang != "" {
			return LangLiteral(v.String(), lang), nil
		}
		return Literal(v.String(), v.DataType.String()), nil
	default:
		return Term{}, fmt.Errorf("unsupported RDF term %T", t)
	}
}

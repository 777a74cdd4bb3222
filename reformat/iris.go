package reformat

import (
	"net/url"
	"strings"

	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
	"github.com/dasch-swiss/dspvalidate/vocabulary/w3c"
)

var wellKnown = []struct{ prefix, namespace string }{
	{knora.PrefixAPI, knora.APINamespace},
	{"rdf", w3c.RDFNamespace},
	{"rdfs", w3c.RDFSNamespace},
	{"xsd", w3c.XSDNamespace},
}

// DataIRI returns the resource id of a data IRI. Ids that were escaped
// to form the IRI are unescaped; other IRIs are returned as is.
func DataIRI(iri string) string {
	id, ok := strings.CutPrefix(iri, knora.DataNamespace)
	if !ok {
		return iri
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}

// OntoIRI renders an ontology term as prefix:name. The prefix of a project
// ontology term is the ontology name, e.g. onto for
// http://0.0.0.0:3333/ontology/9999/onto/v2#Thing.
func OntoIRI(iri string) string {
	if iri == "" {
		return ""
	}
	for _, ns := range wellKnown {
		if strings.HasPrefix(iri, ns.namespace) {
			return ns.prefix + ":" + strings.TrimPrefix(iri, ns.namespace)
		}
	}
	base, local, ok := strings.Cut(iri, "#")
	if !ok {
		return iri
	}
	parts := strings.Split(strings.TrimSuffix(base, "/"), "/")
	if len(parts) < 2 {
		return iri
	}
	return parts[len(parts)-2] + ":" + local
}

// AnyIRI reformats data and ontology IRIs and returns any other IRI as is.
func AnyIRI(iri string) string {
	switch {
	case strings.HasPrefix(iri, knora.DataNamespace):
		return DataIRI(iri)
	case strings.HasPrefix(iri, knora.APINamespace),
		strings.HasPrefix(iri, "http://") && strings.Contains(iri, "/ontology/") && strings.Contains(iri, "#"):
		return OntoIRI(iri)
	default:
		return iri
	}
}

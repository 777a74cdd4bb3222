package xmlinput

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dasch-swiss/dspvalidate/vocabulary/knora"
)

// ErrColonInName is returned for class or property names with more than one
// colon.
var ErrColonInName = errors.New("it is not permissible to have a colon in a property or resource class name")

// Namespaces expands the prefixed names of a DSP XML file into IRIs.
//
//	hasColor       -> knora-api
//	:hasName       -> the default ontology
//	other:hasName  -> <api>/ontology/<shortcode>/other/v2#
type Namespaces struct {
	apiURL          string
	shortcode       string
	defaultOntology string
	used            map[string]bool
}

// NewNamespaces creates the lookup for one project.
func NewNamespaces(apiURL, shortcode, defaultOntology string) *Namespaces {
	return &Namespaces{
		apiURL:          strings.TrimSuffix(apiURL, "/"),
		shortcode:       shortcode,
		defaultOntology: defaultOntology,
		used:            make(map[string]bool),
	}
}

// OntologyNamespace returns the namespace of a project ontology.
func (n *Namespaces) OntologyNamespace(name string) string {
	return fmt.Sprintf("%s/ontology/%s/%s/v2#", n.apiURL, n.shortcode, name)
}

// Expand returns the full IRI of a class or property name. Absolute IRIs are
// returned unchanged.
func (n *Namespaces) Expand(name string) (string, error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name, nil
	}
	parts := strings.Split(name, ":")
	switch len(parts) {
	case 1:
		return knora.APINamespace + name, nil
	case 2:
		prefix := parts[0]
		if prefix == "" {
			prefix = n.defaultOntology
		}
		var ns string
		if prefix == knora.PrefixAPI {
			ns = knora.APINamespace
		} else {
			ns = n.OntologyNamespace(prefix)
			n.used[ns] = true
		}
		return ns + parts[1], nil
	default:
		return "", fmt.Errorf("%w. Please correct the following: %s", ErrColonInName, name)
	}
}

// Used returns the project ontology namespaces seen so far, sorted.
func (n *Namespaces) Used() []string {
	out := make([]string, 0, len(n.used))
	for ns := range n.used {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

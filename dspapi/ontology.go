package dspapi

import (
	"context"
	"encoding/json"
	"fmt"
)

const turtle = "text/turtle"

// Ontology is one project ontology as served by the API.
type Ontology struct {
	IRI    string
	Turtle string
}

type projectResponse struct {
	Project *struct {
		Ontologies []string `json:"ontologies"`
	} `json:"project"`
}

// OntologyIRIs returns the IRIs of the ontologies of the project.
func (c *Client) OntologyIRIs(ctx context.Context, shortcode string) ([]string, error) {
	body, err := c.get(ctx, c.endpoint("admin/projects/shortcode/"+shortcode), "application/json", "ontology IRIs")
	if err != nil {
		return nil, err
	}

	var resp projectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewFatalError(fmt.Errorf("decode project response: %w", err))
	}
	if resp.Project == nil || len(resp.Project.Ontologies) == 0 {
		c.logger.Error("Project has no ontologies", "shortcode", shortcode, "response", string(body))
		return nil, fmt.Errorf("%w (shortcode %s)", ErrNoOntologies, shortcode)
	}
	return resp.Project.Ontologies, nil
}

// Ontologies fetches every ontology of the project as Turtle.
func (c *Client) Ontologies(ctx context.Context, shortcode string) ([]Ontology, error) {
	iris, err := c.OntologyIRIs(ctx, shortcode)
	if err != nil {
		return nil, err
	}

	out := make([]Ontology, 0, len(iris))
	for _, iri := range iris {
		body, err := c.get(ctx, iri, turtle, iri)
		if err != nil {
			return nil, fmt.Errorf("get ontology %s: %w", iri, err)
		}
		out = append(out, Ontology{IRI: iri, Turtle: string(body)})
	}
	c.logger.Debug("Fetched project ontologies", "shortcode", shortcode, "count", len(out))
	return out, nil
}

// KnoraAPI fetches the knora-api ontology as Turtle.
func (c *Client) KnoraAPI(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.endpoint("ontology/knora-api/v2#"), turtle, "knora-api")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

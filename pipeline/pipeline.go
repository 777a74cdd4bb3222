// Package pipeline runs a complete validation of one DSP XML file: it reads
// the file, fetches the project from the API, builds the data and shape
// graphs, validates them and turns the reports into user-facing problems.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dasch-swiss/dspvalidate/datagraph"
	"github.com/dasch-swiss/dspvalidate/dspapi"
	"github.com/dasch-swiss/dspvalidate/export"
	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/rdflike"
	"github.com/dasch-swiss/dspvalidate/reformat"
	"github.com/dasch-swiss/dspvalidate/report"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/shapes"
	"github.com/dasch-swiss/dspvalidate/validation"
	"github.com/dasch-swiss/dspvalidate/xmlinput"
)

// API is the part of the DSP-API a run needs. *dspapi.Client implements it.
type API interface {
	validation.Validator
	Ontologies(ctx context.Context, shortcode string) ([]dspapi.Ontology, error)
	KnoraAPI(ctx context.Context) (string, error)
	Lists(ctx context.Context, shortcode string) ([]resource.List, error)
	EnabledLicenses(ctx context.Context, shortcode string) ([]string, error)
}

// Outcome is the result of one run.
type Outcome struct {
	Conforms bool
	// UnknownClasses are resource classes of the data that no ontology
	// defines. When there are any, no SHACL validation takes place.
	UnknownClasses []string
	Problems       []reformat.InputProblem
	Sorted         report.Sorted
}

// project is everything fetched from the API for one shortcode.
type project struct {
	ontologies   *graph.Graph
	ontologyIRIs []string
	knoraAPI     *graph.Graph
	lists        []resource.List
	licenses     []string
}

// Pipeline runs validations against one API server.
type Pipeline struct {
	api         API
	logger      *slog.Logger
	metrics     *validation.Metrics
	parallel    bool
	saveGraphs  bool
	graphFormat graph.Format
	sink        validation.GraphSink
	constructor *shapes.Constructor
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics records validation metrics.
func WithMetrics(m *validation.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithParallel runs both validation passes concurrently.
func WithParallel(parallel bool) Option {
	return func(p *Pipeline) { p.parallel = parallel }
}

// WithSavedGraphs writes every graph of a run next to the input file.
func WithSavedGraphs(format graph.Format) Option {
	return func(p *Pipeline) {
		p.saveGraphs = true
		p.graphFormat = format
	}
}

// WithGraphSink sends every graph of a run to sink. It takes precedence over
// WithSavedGraphs.
func WithGraphSink(sink validation.GraphSink) Option {
	return func(p *Pipeline) { p.sink = sink }
}

// New creates a Pipeline.
func New(api API, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		api:         api,
		logger:      slog.Default(),
		graphFormat: graph.FormatTurtle,
	}
	for _, opt := range opts {
		opt(p)
	}
	c, err := shapes.NewConstructor(shapes.WithLogger(p.logger))
	if err != nil {
		return nil, fmt.Errorf("create shape constructor: %w", err)
	}
	p.constructor = c
	return p, nil
}

// Run validates the XML file at path. apiURL expands the ontology names of
// the file.
func (p *Pipeline) Run(ctx context.Context, path, apiURL string) (*Outcome, error) {
	doc, err := xmlinput.NewReader(apiURL, p.logger).ReadFile(path)
	if err != nil {
		return nil, err
	}

	sink := p.sink
	if sink == nil && p.saveGraphs {
		dumper, err := export.NewFileDumper(path, export.WithFormat(p.graphFormat), export.WithLogger(p.logger))
		if err != nil {
			return nil, fmt.Errorf("prepare graph directory: %w", err)
		}
		sink = dumper
	}
	return p.validate(ctx, doc, sink)
}

// Validate validates a parsed document.
func (p *Pipeline) Validate(ctx context.Context, doc *xmlinput.Document) (*Outcome, error) {
	return p.validate(ctx, doc, p.sink)
}

func (p *Pipeline) validate(ctx context.Context, doc *xmlinput.Document, sink validation.GraphSink) (*Outcome, error) {
	proj, err := p.fetchProject(ctx, doc.Shortcode)
	if err != nil {
		return nil, err
	}

	if unknown := shapes.UnknownClasses(doc.ResourceTypes(), proj.ontologies, proj.knoraAPI); len(unknown) > 0 {
		p.logger.Warn("Data uses unknown resource classes", slog.Int("count", len(unknown)))
		return &Outcome{UnknownClasses: unknown}, nil
	}

	rdfLike, err := rdflike.NewBuilder(doc.Authorships, resource.NewListLookup(proj.lists), p.logger).Build(doc.Resources)
	if err != nil {
		return nil, fmt.Errorf("build data: %w", err)
	}
	data, err := datagraph.Make(rdfLike)
	if err != nil {
		return nil, fmt.Errorf("make data graph: %w", err)
	}

	shapeGraphs, err := p.constructor.Construct(proj.ontologies, proj.knoraAPI, shapes.ProjectInfo{
		Lists:         proj.lists,
		LicenseIRIs:   proj.licenses,
		PermissionIDs: doc.PermissionIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("construct shapes: %w", err)
	}

	opts := []validation.Option{
		validation.WithLogger(p.logger),
		validation.WithParallel(p.parallel),
	}
	if p.metrics != nil {
		opts = append(opts, validation.WithMetrics(p.metrics))
	}
	if sink != nil {
		opts = append(opts, validation.WithGraphSink(sink))
	}
	result, err := validation.New(p.api, opts...).Validate(ctx, validation.Input{
		Data:         data,
		Ontologies:   proj.ontologies,
		KnoraAPI:     proj.knoraAPI,
		Shapes:       shapeGraphs,
		OntologyIRIs: proj.ontologyIRIs,
	})
	if err != nil {
		return nil, err
	}
	if result.Conforms {
		return &Outcome{Conforms: true}, nil
	}

	problems, err := reformat.NewReformatter(p.logger).Reformat(reformat.Reports{
		Cardinality: result.CardinalityReport,
		Content:     result.ContentReport,
		Data:        data,
		Ontologies:  graph.Union(proj.ontologies, proj.knoraAPI),
	})
	if err != nil {
		return nil, fmt.Errorf("reformat validation reports: %w", err)
	}
	sorted := report.Sort(problems)
	return &Outcome{Conforms: sorted.Len() == 0, Problems: problems, Sorted: sorted}, nil
}

// fetchProject retrieves ontologies, lists and licenses concurrently.
func (p *Pipeline) fetchProject(ctx context.Context, shortcode string) (*project, error) {
	var (
		ontologies []dspapi.Ontology
		knoraTTL   string
		proj       project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ontologies, err = p.api.Ontologies(gctx, shortcode)
		return err
	})
	g.Go(func() error {
		var err error
		knoraTTL, err = p.api.KnoraAPI(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		proj.lists, err = p.api.Lists(gctx, shortcode)
		return err
	})
	g.Go(func() error {
		var err error
		proj.licenses, err = p.api.EnabledLicenses(gctx, shortcode)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch project %s: %w", shortcode, err)
	}

	proj.ontologies = graph.New()
	for _, o := range ontologies {
		og, err := graph.ParseTurtleString(o.Turtle)
		if err != nil {
			return nil, fmt.Errorf("parse ontology %s: %w", o.IRI, err)
		}
		proj.ontologies.AddGraph(og)
		proj.ontologyIRIs = append(proj.ontologyIRIs, o.IRI)
	}
	knora, err := graph.ParseTurtleString(knoraTTL)
	if err != nil {
		return nil, fmt.Errorf("parse knora-api ontology: %w", err)
	}
	proj.knoraAPI = knora

	p.logger.Info("Fetched project information",
		slog.String("shortcode", shortcode),
		slog.Int("ontologies", len(ontologies)),
		slog.Int("lists", len(proj.lists)),
		slog.Int("licenses", len(proj.licenses)))
	return &proj, nil
}

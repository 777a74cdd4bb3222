// Package validation runs the two SHACL passes over a data graph: the
// cardinality pass checks which properties a resource uses, the content pass
// checks the values themselves.
//
// The passes share only read-only input. They run one after the other unless
// parallel validation is enabled.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/shapes"
	"github.com/dasch-swiss/dspvalidate/vocabulary/shacl"
)

// Pass names one of the two validation passes.
type Pass string

const (
	PassCardinality Pass = "cardinality"
	PassContent     Pass = "content"
)

// Validator submits shapes and data to a SHACL engine and returns the report
// as Turtle.
type Validator interface {
	ValidateSHACL(ctx context.Context, label, shaclTTL, dataTTL string) (string, error)
}

// GraphSink receives the graphs of a run for inspection. Names are the
// upper-case graph kinds, e.g. DATA or CARDINALITY_REPORT.
type GraphSink interface {
	Save(name string, g *graph.Graph) error
}

// Input is everything a validation run needs.
type Input struct {
	Data         *graph.Graph
	Ontologies   *graph.Graph
	KnoraAPI     *graph.Graph
	Shapes       *shapes.Graphs
	OntologyIRIs []string
}

// Result is the outcome of both passes. A report is nil when its pass
// conforms.
type Result struct {
	Conforms          bool
	CardinalityReport *graph.Graph
	ContentReport     *graph.Graph
}

// Orchestrator runs validation passes.
type Orchestrator struct {
	validator Validator
	logger    *slog.Logger
	metrics   *Metrics
	sink      GraphSink
	parallel  bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithGraphSink saves every graph of a run to sink.
func WithGraphSink(sink GraphSink) Option {
	return func(o *Orchestrator) { o.sink = sink }
}

// WithParallel runs both passes concurrently.
func WithParallel(parallel bool) Option {
	return func(o *Orchestrator) { o.parallel = parallel }
}

// New creates an Orchestrator validating through v.
func New(v Validator, opts ...Option) *Orchestrator {
	o := &Orchestrator{validator: v}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}
	return o
}

// Validate runs the cardinality and the content pass.
func (o *Orchestrator) Validate(ctx context.Context, in Input) (*Result, error) {
	if in.Data == nil || in.Shapes == nil {
		return nil, fmt.Errorf("validation input requires data and shapes")
	}

	card := o.cardinalityGraphs(in)
	content := o.contentGraphs(in)
	o.save(in, card, content)

	var cardReport, contentReport *graph.Graph
	if o.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			cardReport, err = o.run(gctx, PassCardinality, card)
			return err
		})
		g.Go(func() error {
			var err error
			contentReport, err = o.run(gctx, PassContent, content)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if cardReport, err = o.run(ctx, PassCardinality, card); err != nil {
			return nil, err
		}
		if contentReport, err = o.run(ctx, PassContent, content); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Conforms:          cardReport == nil && contentReport == nil,
		CardinalityReport: cardReport,
		ContentReport:     contentReport,
	}
	if cardReport != nil {
		o.saveGraph("CARDINALITY_REPORT", cardReport)
	}
	if contentReport != nil {
		o.saveGraph("CONTENT_REPORT", contentReport)
	}
	o.logger.Info("Validation finished", slog.Bool("conforms", result.Conforms))
	return result, nil
}

// passGraphs is the shapes and data graph one pass submits.
type passGraphs struct {
	shapes *graph.Graph
	data   *graph.Graph
}

func (o *Orchestrator) cardinalityGraphs(in Input) passGraphs {
	sh := graph.Union(in.Shapes.Cardinality, in.Ontologies, in.KnoraAPI)
	shapes.BindPrefixes(sh, in.OntologyIRIs)
	data := graph.Union(in.Data)
	shapes.BindPrefixes(data, in.OntologyIRIs)
	return passGraphs{shapes: sh, data: data}
}

func (o *Orchestrator) contentGraphs(in Input) passGraphs {
	sh := graph.Union(in.Shapes.Content, in.Ontologies, in.KnoraAPI)
	shapes.BindPrefixes(sh, in.OntologyIRIs)
	data := graph.Union(in.Data, in.Ontologies, in.KnoraAPI)
	shapes.BindPrefixes(data, in.OntologyIRIs)
	return passGraphs{shapes: sh, data: data}
}

// run submits one pass and returns its report, or nil if the data conforms.
func (o *Orchestrator) run(ctx context.Context, pass Pass, graphs passGraphs) (*graph.Graph, error) {
	label := string(pass)
	o.metrics.passes.WithLabelValues(label).Inc()
	start := time.Now()
	defer func() {
		o.metrics.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	}()

	o.logger.Debug("Running validation pass", "pass", label,
		"shape_triples", graphs.shapes.Len(), "data_triples", graphs.data.Len())

	body, err := o.validator.ValidateSHACL(ctx, label, graph.SerializeTurtle(graphs.shapes), graph.SerializeTurtle(graphs.data))
	if err != nil {
		o.metrics.failures.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("%s validation: %w", label, err)
	}
	report, err := graph.ParseTurtleString(body)
	if err != nil {
		o.metrics.failures.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("%s validation: parse report: %w", label, err)
	}

	conforms, err := Conforms(report)
	if err != nil {
		o.metrics.failures.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("%s validation: %w", label, err)
	}
	o.logger.Info("Validation pass finished", "pass", label, "conforms", conforms)
	if conforms {
		return nil, nil
	}
	o.metrics.nonConforming.WithLabelValues(label).Inc()
	return report, nil
}

// Conforms reads sh:conforms from a validation report.
func Conforms(report *graph.Graph) (bool, error) {
	triples := report.Match(graph.Any, graph.IRI(shacl.Conforms), graph.Any)
	if len(triples) == 0 {
		return false, fmt.Errorf("report has no sh:conforms")
	}
	switch v := triples[0].Object.Value; v {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid sh:conforms value %q", v)
	}
}

func (o *Orchestrator) save(in Input, card, content passGraphs) {
	if o.sink == nil {
		return
	}
	o.saveGraph("ONTO", in.Ontologies)
	o.saveGraph("CARDINALITY_SHACL", in.Shapes.Cardinality)
	o.saveGraph("CONTENT_SHACL", in.Shapes.Content)
	o.saveGraph("DATA", card.data)
	o.saveGraph("ONTO_DATA", graph.Union(in.Data, in.Ontologies))
	o.saveGraph("SHACL_ONTO", content.shapes)
}

// saveGraph is best effort; a failing sink never fails validation.
func (o *Orchestrator) saveGraph(name string, g *graph.Graph) {
	if o.sink == nil || g == nil {
		return
	}
	if err := o.sink.Save(name, g); err != nil {
		o.logger.Warn("Failed to save graph", "graph", name, "error", err)
	}
}

package pipeline

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/dspvalidate/dspapi"
	"github.com/dasch-swiss/dspvalidate/graph"
	"github.com/dasch-swiss/dspvalidate/reformat"
	"github.com/dasch-swiss/dspvalidate/resource"
	"github.com/dasch-swiss/dspvalidate/validation"
)

//go:embed testdata/onto.ttl
var ontoTTL string

const (
	apiURL  = "http://0.0.0.0:3333"
	ontoIRI = "http://0.0.0.0:3333/ontology/9999/onto/v2"

	knoraTTL = `@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix knora-api: <http://api.knora.org/ontology/knora-api/v2#> .
knora-api:IntValue rdfs:subClassOf knora-api:Value .
knora-api:TextValue rdfs:subClassOf knora-api:Value .
`

	conforming = `@prefix sh: <http://www.w3.org/ns/shacl#> .
_:report a sh:ValidationReport ; sh:conforms "true"^^<http://www.w3.org/2001/XMLSchema#boolean> .
`

	missingInt = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix onto: <http://0.0.0.0:3333/ontology/9999/onto/v2#> .
_:report a sh:ValidationReport ;
  sh:conforms "false"^^<http://www.w3.org/2001/XMLSchema#boolean> ;
  sh:result _:res .
_:res a sh:ValidationResult ;
  sh:focusNode <http://data/res_1> ; sh:resultPath onto:hasInt ;
  sh:sourceConstraintComponent sh:MinCountConstraintComponent ;
  sh:resultSeverity sh:Violation ; sh:resultMessage "Cardinality 1" .
`

	inputXML = `<?xml version="1.0" encoding="UTF-8"?>
<knora shortcode="9999" default-ontology="onto">
    <permissions id="open"><allow group="UnknownUser">V</allow></permissions>
    <resource label="First" restype=":Thing" id="res_1" permissions="open">
        <text-prop name=":hasText"><text encoding="utf8">hello</text></text-prop>
    </resource>
</knora>
`
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeAPI struct {
	mu      sync.Mutex
	reports map[string]string
	ontoErr error
	calls   map[string]string
}

func newFakeAPI(cardinality, content string) *fakeAPI {
	return &fakeAPI{reports: map[string]string{
		string(validation.PassCardinality): cardinality,
		string(validation.PassContent):     content,
	}}
}

func (f *fakeAPI) Ontologies(_ context.Context, shortcode string) ([]dspapi.Ontology, error) {
	if f.ontoErr != nil {
		return nil, f.ontoErr
	}
	if shortcode != "9999" {
		return nil, dspapi.ErrNoOntologies
	}
	return []dspapi.Ontology{{IRI: ontoIRI, Turtle: ontoTTL}}, nil
}

func (f *fakeAPI) KnoraAPI(context.Context) (string, error) {
	return knoraTTL, nil
}

func (f *fakeAPI) Lists(context.Context, string) ([]resource.List, error) {
	return nil, nil
}

func (f *fakeAPI) EnabledLicenses(context.Context, string) ([]string, error) {
	return []string{"http://rdfh.ch/licenses/cc-by-4.0"}, nil
}

func (f *fakeAPI) ValidateSHACL(_ context.Context, label, shaclTTL, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]string)
	}
	f.calls[label] = shaclTTL
	return f.reports[label], nil
}

type memSink struct {
	mu    sync.Mutex
	names []string
}

func (m *memSink) Save(name string, _ *graph.Graph) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = append(m.names, name)
	return nil
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Conforms(t *testing.T) {
	api := newFakeAPI(conforming, conforming)
	p, err := New(api, WithLogger(testLogger()))
	require.NoError(t, err)

	out, err := p.Run(context.Background(), writeInput(t, inputXML), apiURL)
	require.NoError(t, err)
	assert.True(t, out.Conforms)
	assert.Empty(t, out.Problems)
	assert.Len(t, api.calls, 2)
	assert.Contains(t, api.calls[string(validation.PassCardinality)], "Thing")
}

func TestRun_ReportsProblems(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := validation.NewMetrics(reg)
	sink := &memSink{}
	p, err := New(newFakeAPI(conforming, missingInt),
		WithLogger(testLogger()), WithMetrics(metrics), WithParallel(true), WithGraphSink(sink))
	require.NoError(t, err)

	out, err := p.Run(context.Background(), writeInput(t, inputXML), apiURL)
	require.NoError(t, err)
	assert.False(t, out.Conforms)
	require.Len(t, out.Problems, 1)
	assert.Equal(t, reformat.InputProblem{
		ProblemType: reformat.ProblemMinCard,
		ResID:       "res_1",
		ResType:     "onto:Thing",
		PropName:    "onto:hasInt",
		Severity:    reformat.SeverityViolation,
		Expected:    "Cardinality 1",
	}, out.Problems[0])
	assert.Len(t, out.Sorted.Violations, 1)
	assert.Empty(t, out.Sorted.Warnings)

	assert.Contains(t, sink.names, "CONTENT_REPORT")
	assert.NotContains(t, sink.names, "CARDINALITY_REPORT")
	count, err := testutil.GatherAndCount(reg, "dspvalidate_validation_nonconforming_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRun_UnknownClasses(t *testing.T) {
	api := newFakeAPI(conforming, conforming)
	p, err := New(api, WithLogger(testLogger()))
	require.NoError(t, err)

	xml := strings.Replace(inputXML, `restype=":Thing"`, `restype=":Missing"`, 1)
	out, err := p.Run(context.Background(), writeInput(t, xml), apiURL)
	require.NoError(t, err)
	assert.False(t, out.Conforms)
	assert.Equal(t, []string{ontoIRI + "#Missing"}, out.UnknownClasses)
	assert.Empty(t, api.calls, "no SHACL validation for unknown classes")
}

func TestRun_SavedGraphs(t *testing.T) {
	p, err := New(newFakeAPI(conforming, conforming), WithLogger(testLogger()), WithSavedGraphs(graph.FormatNTriples))
	require.NoError(t, err)

	path := writeInput(t, inputXML)
	_, err = p.Run(context.Background(), path, apiURL)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(path), "graphs", "data_DATA.nt"))
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p, err := New(newFakeAPI(conforming, conforming), WithLogger(testLogger()))
		require.NoError(t, err)
		_, err = p.Run(context.Background(), filepath.Join(t.TempDir(), "missing.xml"), apiURL)
		assert.Error(t, err)
	})

	t.Run("unknown project", func(t *testing.T) {
		p, err := New(newFakeAPI(conforming, conforming), WithLogger(testLogger()))
		require.NoError(t, err)
		xml := strings.Replace(inputXML, `shortcode="9999"`, `shortcode="0000"`, 1)
		_, err = p.Run(context.Background(), writeInput(t, xml), apiURL)
		assert.ErrorIs(t, err, dspapi.ErrNoOntologies)
	})

	t.Run("api failure", func(t *testing.T) {
		api := newFakeAPI(conforming, conforming)
		api.ontoErr = dspapi.NewTransientError(errors.New("connection refused"))
		p, err := New(api, WithLogger(testLogger()))
		require.NoError(t, err)
		_, err = p.Run(context.Background(), writeInput(t, inputXML), apiURL)
		require.Error(t, err)
		assert.True(t, dspapi.IsTransient(err))
	})

	t.Run("unparseable report", func(t *testing.T) {
		p, err := New(newFakeAPI("not turtle {", conforming), WithLogger(testLogger()))
		require.NoError(t, err)
		_, err = p.Run(context.Background(), writeInput(t, inputXML), apiURL)
		assert.ErrorContains(t, err, "cardinality validation")
	})
}

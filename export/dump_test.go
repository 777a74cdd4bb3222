package export

import (
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/dspvalidate/graph"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.Add(graph.IRI("http://data/r1"), graph.IRI("http://www.w3.org/2000/01/rdf-schema#label"), graph.String("first"))
	return g
}

func TestDumper_SaveTurtle(t *testing.T) {
	fs := memfs.New()
	d, err := NewDumper(fs, "data", WithLogger(testLogger()))
	require.NoError(t, err)

	require.NoError(t, d.Save("DATA", sampleGraph()))

	content, err := util.ReadFile(fs, "graphs/data_DATA.ttl")
	require.NoError(t, err)
	parsed, err := graph.ParseTurtleString(string(content))
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Len())
	assert.Equal(t, []string{"graphs/data_DATA.ttl"}, d.Saved())
}

func TestDumper_SaveNTriples(t *testing.T) {
	fs := memfs.New()
	d, err := NewDumper(fs, "data", WithFormat(graph.FormatNTriples), WithLogger(testLogger()))
	require.NoError(t, err)

	require.NoError(t, d.Save("CONTENT_REPORT", sampleGraph()))

	content, err := util.ReadFile(fs, "graphs/data_CONTENT_REPORT.nt")
	require.NoError(t, err)
	assert.Contains(t, string(content), `<http://data/r1> <http://www.w3.org/2000/01/rdf-schema#label> "first"`)
}

func TestDumper_ConcurrentSaves(t *testing.T) {
	fs := memfs.New()
	d, err := NewDumper(fs, "data", WithLogger(testLogger()))
	require.NoError(t, err)

	names := []string{"ONTO", "DATA", "CARDINALITY_SHACL", "CONTENT_SHACL"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Save(name, sampleGraph()))
		}()
	}
	wg.Wait()

	assert.Len(t, d.Saved(), len(names))
	for _, name := range names {
		_, err := fs.Stat(d.FileName(name))
		assert.NoError(t, err, name)
	}
}

func TestNewDumper_UnsupportedFormat(t *testing.T) {
	_, err := NewDumper(memfs.New(), "data", WithFormat("jsonld"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    graph.Format
		wantErr bool
	}{
		{"turtle", graph.FormatTurtle, false},
		{"ntriples", graph.FormatNTriples, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFileDumper(t *testing.T) {
	dir := t.TempDir()
	d, err := NewFileDumper(dir+"/project.xml", WithLogger(testLogger()))
	require.NoError(t, err)

	require.NoError(t, d.Save("ONTO", sampleGraph()))
	_, err = os.Stat(dir + "/graphs/project_ONTO.ttl")
	assert.NoError(t, err)
}

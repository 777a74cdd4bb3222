// Package export writes the graphs of a validation run to disk for
// inspection.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/dasch-swiss/dspvalidate/graph"
)

// GraphDir is the directory the graphs are written to, next to the input file.
const GraphDir = "graphs"

// Dumper saves graphs as <stem>_<NAME><ext> below GraphDir.
// It is safe for concurrent use.
type Dumper struct {
	fs     billy.Filesystem
	stem   string
	format graph.Format
	logger *slog.Logger

	mu    sync.Mutex
	saved []string
}

// Option configures a Dumper.
type Option func(*Dumper)

// WithFormat sets the serialization format. The default is Turtle.
func WithFormat(format graph.Format) Option {
	return func(d *Dumper) { d.format = format }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dumper) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDumper creates a Dumper writing to fs.
func NewDumper(fs billy.Filesystem, stem string, opts ...Option) (*Dumper, error) {
	d := &Dumper{
		fs:     fs,
		stem:   stem,
		format: graph.FormatTurtle,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if _, ok := GetFormatInfo(d.format); !ok {
		return nil, fmt.Errorf("unsupported graph format %q", d.format)
	}
	if err := fs.MkdirAll(GraphDir, 0o755); err != nil {
		return nil, fmt.Errorf("create graph directory: %w", err)
	}
	return d, nil
}

// NewFileDumper creates a Dumper for the input file at path. Graphs go to
// the graphs directory next to the input file.
func NewFileDumper(path string, opts ...Option) (*Dumper, error) {
	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewDumper(osfs.New(dir), stem, opts...)
}

// FileName returns the file name of a graph below GraphDir.
func (d *Dumper) FileName(name string) string {
	info, _ := GetFormatInfo(d.format)
	return d.fs.Join(GraphDir, fmt.Sprintf("%s_%s%s", d.stem, name, info.Extension))
}

// Save serializes g and writes it.
func (d *Dumper) Save(name string, g *graph.Graph) error {
	content, err := graph.Serialize(g, d.format)
	if err != nil {
		return fmt.Errorf("serialize %s graph: %w", name, err)
	}
	path := d.FileName(name)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := util.WriteFile(d.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s graph: %w", name, err)
	}
	d.saved = append(d.saved, path)
	d.logger.Debug("Saved graph",
		slog.String("name", name),
		slog.String("path", path),
		slog.Int("triples", g.Len()))
	return nil
}

// Saved returns the paths written so far, in order.
func (d *Dumper) Saved() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.saved...)
}

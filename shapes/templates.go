package shapes

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/dasch-swiss/dspvalidate/graph"
)

//go:embed templates/api-shapes.ttl
var contentTemplateTTL string

//go:embed templates/api-shapes-resource-cardinalities.ttl
var cardinalityTemplateTTL string

// Templates are the fixed API shapes merged into every constructed shape graph.
// They are read-only once loaded.
type Templates struct {
	Content     *graph.Graph
	Cardinality *graph.Graph
}

// LoadTemplates parses the embedded template graphs.
func LoadTemplates() (*Templates, error) {
	content, err := graph.ParseTurtleString(contentTemplateTTL)
	if err != nil {
		return nil, fmt.Errorf("parse content template: %w", err)
	}
	card, err := graph.ParseTurtleString(cardinalityTemplateTTL)
	if err != nil {
		return nil, fmt.Errorf("parse cardinality template: %w", err)
	}
	return &Templates{Content: content, Cardinality: card}, nil
}

// Global template instance and initialization guard.
var (
	globalTemplates *Templates
	globalErr       error
	globalOnce      sync.Once
)

// DefaultTemplates returns the process-wide templates, loading them on first use.
func DefaultTemplates() (*Templates, error) {
	globalOnce.Do(func() {
		globalTemplates, globalErr = LoadTemplates()
	})
	return globalTemplates, globalErr
}

// InitTemplates installs custom templates, e.g. fixtures in tests.
// Must be called before any call to DefaultTemplates() to take effect.
func InitTemplates(t *Templates) {
	globalOnce.Do(func() {
		globalTemplates = t
	})
}

// ResetTemplates resets the global templates for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetTemplates() {
	globalOnce = sync.Once{}
	globalTemplates = nil
	globalErr = nil
}

package export

import (
	"fmt"
	"sort"

	"github.com/dasch-swiss/dspvalidate/graph"
)

// FormatInfo provides metadata about a dump format.
type FormatInfo struct {
	// Name is the format identifier.
	Name graph.Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[graph.Format]FormatInfo{
	graph.FormatTurtle: {
		Name:      graph.FormatTurtle,
		MIMEType:  "text/turtle",
		Extension: ".ttl",
	},
	graph.FormatNTriples: {
		Name:      graph.FormatNTriples,
		MIMEType:  "application/n-triples",
		Extension: ".nt",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format graph.Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat validates a format name from configuration.
func ParseFormat(name string) (graph.Format, error) {
	if _, ok := FormatRegistry[graph.Format(name)]; ok {
		return graph.Format(name), nil
	}
	known := make([]string, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		known = append(known, string(f))
	}
	sort.Strings(known)
	return "", fmt.Errorf("unsupported graph format %q (supported: %v)", name, known)
}

package report

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/dasch-swiss/dspvalidate/reformat"
)

// DefaultTableThreshold is the number of problems of one severity above
// which they are written to a table.
const DefaultTableThreshold = 60

const (
	passedBanner = "\n   Validation passed!   "
	failedBanner = "\n   Validation errors found!   "
)

// Printer writes the user message.
type Printer struct {
	out       io.Writer
	fs        billy.Filesystem
	threshold int
	logger    *slog.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithTables writes problem tables to fs. Without a filesystem every
// problem is printed.
func WithTables(fs billy.Filesystem) Option {
	return func(p *Printer) {
		p.fs = fs
	}
}

// WithTableThreshold sets the number of problems above which a table is
// written.
func WithTableThreshold(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.threshold = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:       out,
		threshold: DefaultTableThreshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintConforms reports that the data passed validation.
func (p *Printer) PrintConforms() error {
	_, err := fmt.Fprintln(p.out, passedBanner)
	return err
}

// Print writes the sections of sorted. Tables are named after stem.
func (p *Printer) Print(stem string, sorted Sorted) error {
	if sorted.Len() == 0 {
		return p.PrintConforms()
	}

	var sb strings.Builder
	sb.WriteString(failedBanner)
	sb.WriteString("\n")
	for _, sec := range Sections(sorted) {
		body := sec.Body
		if p.fs != nil && len(sec.Problems) > p.threshold {
			path, err := p.writeTable(stem, sec)
			if err != nil {
				return err
			}
			kind := tableSuffix(sec.Severity)
			body = fmt.Sprintf("Due to the large number of %s, the validation %s were saved at:\n%s", kind, kind, path)
		}
		sb.WriteString("\n" + sec.Header + "\n\n" + body + "\n")
	}

	_, err := io.WriteString(p.out, sb.String())
	return err
}

func (p *Printer) writeTable(stem string, sec Section) (string, error) {
	data, err := EncodeTable(sec.Problems)
	if err != nil {
		return "", err
	}
	name := TableName(stem, sec.Severity)
	if err := util.WriteFile(p.fs, name, data, 0o644); err != nil {
		return "", fmt.Errorf("write problem table %q: %w", name, err)
	}
	path := p.fs.Join(p.fs.Root(), name)
	p.logger.Info("Wrote problem table",
		slog.String("path", path),
		slog.Int("problems", len(sec.Problems)))
	return path, nil
}

// PrintUnknownClasses reports resource classes used in the data that no
// ontology defines.
func (p *Printer) PrintUnknownClasses(classes []string) error {
	msg := UnknownClassesMessage(classes)
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// UnknownClassesMessage lists unknown resource classes, or returns "" when
// there are none.
func UnknownClassesMessage(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, reformat.OntoIRI(c))
	}
	sort.Strings(names)
	return "Your data uses resource classes that do not exist in the ontologies in the database." +
		ListSeparator + strings.Join(names, ListSeparator)
}

// UnexpectedMessage lists SHACL components no classification rule matched.
// Each component appears once.
func UnexpectedMessage(components []reformat.UnexpectedComponent) string {
	if len(components) == 0 {
		return ""
	}
	seen := make(map[string]bool)
	var names []string
	for _, c := range components {
		if !seen[c.Component] {
			seen[c.Component] = true
			names = append(names, c.Component)
		}
	}
	sort.Strings(names)
	return "The following unknown violation types were found!" + ListSeparator + strings.Join(names, ListSeparator)
}

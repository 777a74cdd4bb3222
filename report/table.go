package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/dasch-swiss/dspvalidate/reformat"
)

// Columns of the problem table.
var Columns = []string{
	"Resource Type", "Resource ID", "Property", "Your Input", "Input Type", "Expected", "Message", "Problem",
}

// TableName is the name of the table written for a severity, e.g.
// data_validation_errors.csv for the violations of data.xml.
func TableName(stem string, severity reformat.Severity) string {
	return fmt.Sprintf("%s_validation_%s.csv", stem, tableSuffix(severity))
}

func tableSuffix(severity reformat.Severity) string {
	switch severity {
	case reformat.SeverityWarning:
		return "warnings"
	case reformat.SeverityInfo:
		return "info"
	default:
		return "errors"
	}
}

// Rows returns the table rows sorted by resource type, resource id and
// property.
func Rows(problems []reformat.InputProblem) [][]string {
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, row(p))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for c := 0; c < 3; c++ {
			if rows[i][c] != rows[j][c] {
				return rows[i][c] < rows[j][c]
			}
		}
		return false
	})
	return rows
}

func row(p reformat.InputProblem) []string {
	expected, message := p.Expected, p.Message
	if expected != "" {
		if prefix := strings.TrimSpace(expectedPrefix(p.ProblemType)); prefix != "" {
			expected = prefix + ": " + expected
		}
	} else {
		expected, message = message, ""
	}
	problem := ""
	if showProblemType(p.ProblemType) {
		problem = p.ProblemType.Title()
	}
	input := ""
	if p.InputValue != "" {
		input = ShortenInput(p.InputValue, p.ProblemType)
	}
	return []string{p.ResType, p.ResID, p.PropName, input, p.InputType, expected, message, problem}
}

// EncodeTable renders the problems as CSV with a header row.
func EncodeTable(problems []reformat.InputProblem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write table header: %w", err)
	}
	if err := w.WriteAll(Rows(problems)); err != nil {
		return nil, fmt.Errorf("write table rows: %w", err)
	}
	return buf.Bytes(), nil
}

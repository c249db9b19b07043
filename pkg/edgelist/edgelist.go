// Package edgelist loads character-interaction edge lists from local files,
// HTTP endpoints, or S3 objects. Records are (from, to, weight) triples; the
// single parsing pass defines the edge set, nothing is deduplicated here.
package edgelist

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// Edge is one interaction record between two characters.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// ParseCSV reads from,to,weight records. A first row whose third field is not
// numeric is treated as a header and skipped. Any structurally unparseable
// row, empty endpoint, or non-positive weight aborts the parse.
func ParseCSV(r io.Reader, source string) ([]Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	edges := make([]Edge, 0)
	line := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, malformed(source, line, "%v", err)
		}

		from := strings.TrimSpace(record[0])
		to := strings.TrimSpace(record[1])
		rawWeight := strings.TrimSpace(record[2])

		weight, err := strconv.ParseFloat(rawWeight, 64)
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, malformed(source, line, "weight %q is not numeric", rawWeight)
		}

		if from == "" || to == "" {
			return nil, malformed(source, line, "empty endpoint in record %q", strings.Join(record, ","))
		}
		if weight <= 0 {
			return nil, malformed(source, line, "weight %v is not positive", weight)
		}

		edges = append(edges, Edge{From: from, To: to, Weight: weight})
	}

	if len(edges) == 0 {
		return nil, &ParseError{Source: source, Cause: ErrEmptyInput}
	}

	return edges, nil
}

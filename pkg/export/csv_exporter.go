package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset is the tabular body of an advisor report download. Rows are keyed
// by header name so report builders can assemble them without caring about
// column order.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Validate rejects datasets that would render a broken table: no headers, or
// a row carrying a column the header list never declared.
func (d Dataset) Validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("report requires at least one column")
	}
	known := make(map[string]struct{}, len(d.Headers))
	for _, header := range d.Headers {
		known[header] = struct{}{}
	}
	for i, row := range d.Rows {
		for column := range row {
			if _, ok := known[column]; !ok {
				return fmt.Errorf("row %d has undeclared column %q", i, column)
			}
		}
	}
	return nil
}

// CSVExporter renders progress and recommendation reports as spreadsheet
// friendly CSV.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render encodes the dataset, one record per row in header order. Missing
// cells render empty so partial rows stay aligned.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

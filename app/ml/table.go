package ml

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// NumericColumns are the predictor columns fed to the classifier as plain
// numbers; every other predictor column is one-hot encoded.
var NumericColumns = []string{"Student_Age", "Scholarship", "Weekly_Study_Hours"}

// TargetColumn is the label the classifier predicts.
const TargetColumn = "Grade"

// Table is a flat dataset: a header plus string-valued rows in header order.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all values of one column.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column %q in table", name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// ReadCSV loads a dataset and checks its header against the expected
// student CSV layout.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	if len(header) != len(models.ExpectedCSVHeader) {
		return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(models.ExpectedCSVHeader), len(header))
	}
	for i, want := range models.ExpectedCSVHeader {
		if header[i] != want {
			return nil, fmt.Errorf("%s: column %d is %q, want %q", path, i+1, header[i], want)
		}
	}

	return &Table{Header: header, Rows: records[1:]}, nil
}

// WriteCSV writes the table with its header row.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

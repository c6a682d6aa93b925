package ml

import (
	"fmt"
	"sort"
)

// Feature is one column of the encoded feature matrix. Source is the
// dataset column the feature came from; for one-hot features Value is the
// category the feature indicates.
type Feature struct {
	Name   string
	Source string
	Value  string
}

// OneHotEncoder maps categorical columns onto indicator features.
//
// Unknown-as-zero policy: a category never seen during fitting encodes as
// all zeros across its column's indicators instead of failing. Inference
// must keep working when a form submits a value the training data lacked;
// the classifier then leans on the remaining features.
type OneHotEncoder struct {
	// Columns is the categorical column order; Categories holds the sorted
	// category list seen per column at fit time.
	Columns    []string
	Categories map[string][]string
}

// FitOneHot scans the given categorical columns of the table and records
// their category sets.
func FitOneHot(t *Table, columns []string) (*OneHotEncoder, error) {
	enc := &OneHotEncoder{
		Columns:    append([]string(nil), columns...),
		Categories: make(map[string][]string, len(columns)),
	}
	for _, col := range columns {
		values, err := t.Column(col)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		for _, v := range values {
			seen[v] = true
		}
		categories := make([]string, 0, len(seen))
		for v := range seen {
			categories = append(categories, v)
		}
		sort.Strings(categories)
		enc.Categories[col] = categories
	}
	return enc, nil
}

// Features lists the encoded feature columns in output order.
func (e *OneHotEncoder) Features() []Feature {
	var features []Feature
	for _, col := range e.Columns {
		for _, cat := range e.Categories[col] {
			features = append(features, Feature{
				Name:   fmt.Sprintf("%s_%s", col, cat),
				Source: col,
				Value:  cat,
			})
		}
	}
	return features
}

// Width is the total number of indicator columns.
func (e *OneHotEncoder) Width() int {
	n := 0
	for _, col := range e.Columns {
		n += len(e.Categories[col])
	}
	return n
}

// Transform encodes one record's categorical values. Unknown categories
// leave their column's indicators at zero.
func (e *OneHotEncoder) Transform(values map[string]string) []float64 {
	out := make([]float64, e.Width())
	offset := 0
	for _, col := range e.Columns {
		categories := e.Categories[col]
		v := values[col]
		for i, cat := range categories {
			if v == cat {
				out[offset+i] = 1
				break
			}
		}
		offset += len(categories)
	}
	return out
}

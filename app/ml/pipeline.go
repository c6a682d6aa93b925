package ml

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// Pipeline is the fitted feature-encoding plus classifier bundle used for
// both training and inference. Once fitted it is immutable; concurrent
// reads from request handlers need no locking.
type Pipeline struct {
	Encoder     *OneHotEncoder
	NumericCols []string
	Forest      *RandomForest
	// FeatureList names the columns of the feature matrix: one-hot
	// indicators first, numeric passthrough columns after.
	FeatureList []Feature
	Classes     []string
}

// FeatureImportance is one entry of the ranked importance table. Source is
// the original dataset column behind the (possibly one-hot) feature.
type FeatureImportance struct {
	Feature    string
	Source     string
	Importance float64
}

// TrainPipeline fits the full pipeline on the labelled table: an 80/20
// stratified split, one-hot encoding fitted on the training rows, a
// 100-tree balanced random forest, then held-out evaluation and a ranked
// top-10 importance table. Any failure aborts training.
func TrainPipeline(t *Table, seed uint64) (*Pipeline, *Evaluation, []FeatureImportance, error) {
	classes := make([]string, len(models.AllGrades))
	classIndex := make(map[string]int, len(classes))
	for i, g := range models.AllGrades {
		classes[i] = string(g)
		classIndex[string(g)] = i
	}

	gradeIdx := t.ColumnIndex(TargetColumn)
	y := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		c, ok := classIndex[row[gradeIdx]]
		if !ok {
			return nil, nil, nil, fmt.Errorf("row %d: unknown grade %q", i+1, row[gradeIdx])
		}
		y[i] = c
	}

	trainIdx, testIdx := StratifiedSplit(y, len(classes), 0.2, seed)

	trainTable := &Table{Header: t.Header, Rows: subset(t.Rows, trainIdx)}
	encoder, err := FitOneHot(trainTable, categoricalColumns(t.Header))
	if err != nil {
		return nil, nil, nil, err
	}

	p := &Pipeline{
		Encoder:     encoder,
		NumericCols: append([]string(nil), NumericColumns...),
		Forest:      &RandomForest{NumTrees: 100, NumClasses: len(classes)},
		Classes:     classes,
	}
	p.FeatureList = append(encoder.Features(), numericFeatures(p.NumericCols)...)

	trainX, err := p.featureMatrix(trainTable)
	if err != nil {
		return nil, nil, nil, err
	}
	trainY := subsetInts(y, trainIdx)

	if err := p.Forest.Fit(trainX, trainY, seed); err != nil {
		return nil, nil, nil, err
	}

	testTable := &Table{Header: t.Header, Rows: subset(t.Rows, testIdx)}
	testX, err := p.featureMatrix(testTable)
	if err != nil {
		return nil, nil, nil, err
	}
	testY := subsetInts(y, testIdx)

	yPred := make([]int, len(testX))
	for i, x := range testX {
		yPred[i] = p.Forest.Predict(x)
	}
	eval := Evaluate(testY, yPred, classes)

	return p, eval, p.rankedImportances(10), nil
}

// PredictRow runs one record through the pipeline and returns the
// predicted class with the maximum class probability as confidence.
func (p *Pipeline) PredictRow(values map[string]string) (string, float64, error) {
	x, err := p.featureVector(values)
	if err != nil {
		return "", 0, err
	}
	probs := p.Forest.PredictProba(x)
	best := 0
	for c, prob := range probs {
		if prob > probs[best] {
			best = c
		}
	}
	return p.Classes[best], probs[best], nil
}

func (p *Pipeline) featureVector(values map[string]string) ([]float64, error) {
	x := p.Encoder.Transform(values)
	for _, col := range p.NumericCols {
		n, err := strconv.Atoi(values[col])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col, err)
		}
		x = append(x, float64(n))
	}
	return x, nil
}

func (p *Pipeline) featureMatrix(t *Table) ([][]float64, error) {
	X := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		values := make(map[string]string, len(t.Header))
		for j, col := range t.Header {
			values[col] = row[j]
		}
		x, err := p.featureVector(values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		X[i] = x
	}
	return X, nil
}

// rankedImportances returns the top-n features by importance, descending.
func (p *Pipeline) rankedImportances(n int) []FeatureImportance {
	ranked := make([]FeatureImportance, 0, len(p.FeatureList))
	for i, f := range p.FeatureList {
		ranked = append(ranked, FeatureImportance{
			Feature:    f.Name,
			Source:     f.Source,
			Importance: p.Forest.FeatureImportances[i],
		})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Importance > ranked[b].Importance
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// categoricalColumns is every predictor column that is neither numeric nor
// the target.
func categoricalColumns(header []string) []string {
	var cols []string
	for _, col := range header {
		if col == TargetColumn || isNumericColumn(col) {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

func isNumericColumn(col string) bool {
	for _, n := range NumericColumns {
		if col == n {
			return true
		}
	}
	return false
}

func numericFeatures(cols []string) []Feature {
	features := make([]Feature, len(cols))
	for i, col := range cols {
		features[i] = Feature{Name: col, Source: col}
	}
	return features
}

func subset(rows [][]string, indices []int) [][]string {
	out := make([][]string, len(indices))
	for i, idx := range indices {
		out[i] = rows[idx]
	}
	return out
}

func subsetInts(values []int, indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

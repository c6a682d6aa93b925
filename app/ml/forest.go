package ml

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// RandomForest bags CART trees over bootstrap samples. Class imbalance is
// counteracted with balanced sample weights (n / (k * n_c) for class c),
// matching the label-imbalance handling the grade data needs.
type RandomForest struct {
	Trees      []*DecisionTree
	NumTrees   int
	NumClasses int
	// FeatureImportances is the per-feature mean decrease in impurity,
	// averaged over trees and normalised to sum to one.
	FeatureImportances []float64
}

// Fit trains the forest. Each tree sees a bootstrap sample of the rows and
// sqrt(p) candidate features per split.
func (f *RandomForest) Fit(X [][]float64, y []int, seed uint64) error {
	if len(X) == 0 {
		return fmt.Errorf("empty training set")
	}
	if f.NumTrees <= 0 {
		f.NumTrees = 100
	}

	n := len(X)
	numFeatures := len(X[0])
	maxFeatures := int(math.Sqrt(float64(numFeatures)))
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	weights := balancedWeights(y, f.NumClasses)
	rng := rand.New(rand.NewSource(seed))

	f.Trees = make([]*DecisionTree, f.NumTrees)
	f.FeatureImportances = make([]float64, numFeatures)

	sampleX := make([][]float64, n)
	sampleY := make([]int, n)
	sampleW := make([]float64, n)
	for i := range f.Trees {
		for j := 0; j < n; j++ {
			k := rng.Intn(n)
			sampleX[j] = X[k]
			sampleY[j] = y[k]
			sampleW[j] = weights[k]
		}

		tree := &DecisionTree{
			NumClasses:      f.NumClasses,
			MinSamplesSplit: 2,
			MaxFeatures:     maxFeatures,
		}
		tree.Fit(sampleX, sampleY, sampleW, rng)
		f.Trees[i] = tree

		for j, imp := range tree.Importances {
			f.FeatureImportances[j] += imp
		}
	}

	total := 0.0
	for _, imp := range f.FeatureImportances {
		total += imp
	}
	if total > 0 {
		for i := range f.FeatureImportances {
			f.FeatureImportances[i] /= total
		}
	}
	return nil
}

// PredictProba averages the leaf class distributions of every tree.
func (f *RandomForest) PredictProba(x []float64) []float64 {
	probs := make([]float64, f.NumClasses)
	for _, tree := range f.Trees {
		for c, p := range tree.PredictProba(x) {
			probs[c] += p
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs
}

// Predict returns the class index with the highest averaged probability.
func (f *RandomForest) Predict(x []float64) int {
	probs := f.PredictProba(x)
	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}
	return best
}

// balancedWeights gives every class the same total weight: each sample of
// class c weighs n / (k * n_c).
func balancedWeights(y []int, numClasses int) []float64 {
	counts := make([]float64, numClasses)
	for _, label := range y {
		counts[label]++
	}

	n := float64(len(y))
	k := float64(numClasses)
	weights := make([]float64, len(y))
	for i, label := range y {
		if counts[label] > 0 {
			weights[i] = n / (k * counts[label])
		}
	}
	return weights
}

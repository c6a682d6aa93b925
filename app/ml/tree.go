package ml

import (
	"sort"

	"golang.org/x/exp/rand"
)

// TreeNode is one node of a fitted CART tree. Fields are exported for gob
// encoding.
type TreeNode struct {
	Leaf      bool
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	// Probs is the weighted class distribution of the samples that reached
	// this node; populated on leaves.
	Probs []float64
}

// DecisionTree is a CART classifier over a numeric feature matrix. Splits
// minimise weighted gini impurity, so per-sample class weights balance the
// label distribution.
type DecisionTree struct {
	Root            *TreeNode
	NumClasses      int
	MinSamplesSplit int
	// MaxFeatures is the number of features considered per split; 0 means
	// all of them.
	MaxFeatures int
	// Importances accumulates each feature's weighted impurity decrease,
	// normalised to sum to one after fitting.
	Importances []float64
}

// Fit grows the tree on rows X with class labels y and sample weights w.
func (t *DecisionTree) Fit(X [][]float64, y []int, w []float64, rng *rand.Rand) {
	if t.MinSamplesSplit < 2 {
		t.MinSamplesSplit = 2
	}
	numFeatures := len(X[0])
	t.Importances = make([]float64, numFeatures)

	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}
	t.Root = t.grow(X, y, w, indices, rng)

	total := 0.0
	for _, imp := range t.Importances {
		total += imp
	}
	if total > 0 {
		for i := range t.Importances {
			t.Importances[i] /= total
		}
	}
}

// PredictProba returns the class distribution of the leaf x lands in.
func (t *DecisionTree) PredictProba(x []float64) []float64 {
	node := t.Root
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Probs
}

func (t *DecisionTree) grow(X [][]float64, y []int, w []float64, indices []int, rng *rand.Rand) *TreeNode {
	classWeights, totalWeight := weightByClass(y, w, indices, t.NumClasses)
	nodeImpurity := gini(classWeights, totalWeight)

	if len(indices) < t.MinSamplesSplit || nodeImpurity == 0 {
		return leafNode(classWeights, totalWeight)
	}

	feature, threshold, gain := t.bestSplit(X, y, w, indices, nodeImpurity, totalWeight, rng)
	if gain <= 0 {
		return leafNode(classWeights, totalWeight)
	}
	t.Importances[feature] += totalWeight * gain

	var left, right []int
	for _, i := range indices {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      t.grow(X, y, w, left, rng),
		Right:     t.grow(X, y, w, right, rng),
	}
}

// bestSplit scans a random feature subset for the threshold with the
// largest weighted impurity decrease.
func (t *DecisionTree) bestSplit(X [][]float64, y []int, w []float64, indices []int,
	nodeImpurity, totalWeight float64, rng *rand.Rand) (int, float64, float64) {

	numFeatures := len(X[0])
	candidates := rng.Perm(numFeatures)
	if t.MaxFeatures > 0 && t.MaxFeatures < numFeatures {
		candidates = candidates[:t.MaxFeatures]
	}

	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0

	order := make([]int, len(indices))
	for _, feature := range candidates {
		copy(order, indices)
		sort.Slice(order, func(a, b int) bool {
			return X[order[a]][feature] < X[order[b]][feature]
		})

		leftWeights := make([]float64, t.NumClasses)
		rightWeights, _ := weightByClass(y, w, indices, t.NumClasses)
		leftTotal := 0.0
		rightTotal := totalWeight

		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			leftWeights[y[i]] += w[i]
			rightWeights[y[i]] -= w[i]
			leftTotal += w[i]
			rightTotal -= w[i]

			cur, next := X[i][feature], X[order[pos+1]][feature]
			if cur == next {
				continue
			}

			gain := nodeImpurity -
				(leftTotal/totalWeight)*gini(leftWeights, leftTotal) -
				(rightTotal/totalWeight)*gini(rightWeights, rightTotal)
			if gain > bestGain {
				bestFeature = feature
				bestThreshold = (cur + next) / 2
				bestGain = gain
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, 0
	}
	return bestFeature, bestThreshold, bestGain
}

func leafNode(classWeights []float64, totalWeight float64) *TreeNode {
	probs := make([]float64, len(classWeights))
	if totalWeight > 0 {
		for i, cw := range classWeights {
			probs[i] = cw / totalWeight
		}
	}
	return &TreeNode{Leaf: true, Probs: probs}
}

func weightByClass(y []int, w []float64, indices []int, numClasses int) ([]float64, float64) {
	classWeights := make([]float64, numClasses)
	total := 0.0
	for _, i := range indices {
		classWeights[y[i]] += w[i]
		total += w[i]
	}
	return classWeights, total
}

func gini(classWeights []float64, totalWeight float64) float64 {
	if totalWeight == 0 {
		return 0
	}
	impurity := 1.0
	for _, cw := range classWeights {
		p := cw / totalWeight
		impurity -= p * p
	}
	return impurity
}

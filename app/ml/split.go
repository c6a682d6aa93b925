package ml

import (
	"golang.org/x/exp/rand"
)

// StratifiedSplit partitions row indices into train and test sets, keeping
// each label's share of the test set close to testFraction. Deterministic
// for a given seed.
func StratifiedSplit(y []int, numClasses int, testFraction float64, seed uint64) (train, test []int) {
	byClass := make([][]int, numClasses)
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	rng := rand.New(rand.NewSource(seed))
	for _, indices := range byClass {
		rng.Shuffle(len(indices), func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})

		testCount := int(float64(len(indices))*testFraction + 0.5)
		if testCount == len(indices) && testCount > 0 {
			testCount-- // keep at least one training sample per class
		}
		test = append(test, indices[:testCount]...)
		train = append(train, indices[testCount:]...)
	}
	return train, test
}

package ml

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Evaluation holds the held-out test metrics persisted alongside the
// fitted pipeline.
type Evaluation struct {
	Accuracy        float64
	Report          string
	ConfusionMatrix [][]int
	TargetNames     []string
}

// Evaluate computes accuracy, a per-class precision/recall/F1 report and
// the confusion matrix for predicted vs. true labels.
func Evaluate(yTrue, yPred []int, classes []string) *Evaluation {
	k := len(classes)
	confusion := make([][]int, k)
	for i := range confusion {
		confusion[i] = make([]int, k)
	}

	correct := 0
	for i := range yTrue {
		confusion[yTrue[i]][yPred[i]]++
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	accuracy := 0.0
	if len(yTrue) > 0 {
		accuracy = float64(correct) / float64(len(yTrue))
	}

	return &Evaluation{
		Accuracy:        accuracy,
		Report:          classificationReport(confusion, classes, accuracy, len(yTrue)),
		ConfusionMatrix: confusion,
		TargetNames:     append([]string(nil), classes...),
	}
}

// classificationReport renders per-class precision, recall, F1 and support
// in the familiar tabular text form. Classes with no predicted or true
// samples report zero, not NaN.
func classificationReport(confusion [][]int, classes []string, accuracy float64, total int) string {
	k := len(classes)
	rowSums := make([]float64, k) // support per true class
	colSums := make([]float64, k) // predictions per class
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			rowSums[i] += float64(confusion[i][j])
			colSums[j] += float64(confusion[i][j])
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%12s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	b.WriteString("\n")

	precisions := make([]float64, k)
	recalls := make([]float64, k)
	for c := 0; c < k; c++ {
		tp := float64(confusion[c][c])
		if colSums[c] > 0 {
			precisions[c] = tp / colSums[c]
		}
		if rowSums[c] > 0 {
			recalls[c] = tp / rowSums[c]
		}
		fmt.Fprintf(&b, "%12s %9.2f %9.2f %9.2f %9d\n",
			classes[c], precisions[c], recalls[c], f1Score(precisions[c], recalls[c]), int(rowSums[c]))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%12s %29.2f %9d\n", "accuracy", accuracy, total)
	fmt.Fprintf(&b, "%12s %9.2f %9.2f %9.2f %9d\n", "macro avg",
		floats.Sum(precisions)/float64(k), floats.Sum(recalls)/float64(k),
		macroF1(precisions, recalls), total)
	return b.String()
}

func f1Score(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

func macroF1(precisions, recalls []float64) float64 {
	sum := 0.0
	for i := range precisions {
		sum += f1Score(precisions[i], recalls[i])
	}
	return sum / float64(len(precisions))
}

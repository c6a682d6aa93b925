package ml

import (
	"math"
	"strings"
	"testing"
)

func TestEvaluateKnownConfusion(t *testing.T) {
	classes := []string{"A", "B"}
	yTrue := []int{0, 0, 0, 1, 1, 1}
	yPred := []int{0, 0, 1, 1, 1, 0}

	eval := Evaluate(yTrue, yPred, classes)

	if math.Abs(eval.Accuracy-4.0/6.0) > 1e-9 {
		t.Errorf("Accuracy = %f, want %f", eval.Accuracy, 4.0/6.0)
	}

	want := [][]int{{2, 1}, {1, 2}}
	for i := range want {
		for j := range want[i] {
			if eval.ConfusionMatrix[i][j] != want[i][j] {
				t.Errorf("ConfusionMatrix[%d][%d] = %d, want %d", i, j, eval.ConfusionMatrix[i][j], want[i][j])
			}
		}
	}

	for _, class := range classes {
		if !strings.Contains(eval.Report, class) {
			t.Errorf("report does not mention class %q:\n%s", class, eval.Report)
		}
	}
	if !strings.Contains(eval.Report, "macro avg") {
		t.Errorf("report lacks macro avg row:\n%s", eval.Report)
	}
}

func TestEvaluateEmpty(t *testing.T) {
	eval := Evaluate(nil, nil, []string{"A", "B"})
	if eval.Accuracy != 0 {
		t.Errorf("Accuracy = %f, want 0 for empty input", eval.Accuracy)
	}
}

func TestEvaluateClassNeverPredicted(t *testing.T) {
	// Class B never predicted and never true: report must stay finite.
	eval := Evaluate([]int{0, 0}, []int{0, 0}, []string{"A", "B"})
	if strings.Contains(eval.Report, "NaN") {
		t.Errorf("report contains NaN:\n%s", eval.Report)
	}
	if eval.Accuracy != 1 {
		t.Errorf("Accuracy = %f, want 1", eval.Accuracy)
	}
}

func TestF1Score(t *testing.T) {
	if got := f1Score(0, 0); got != 0 {
		t.Errorf("f1Score(0, 0) = %f, want 0", got)
	}
	if got := f1Score(1, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("f1Score(1, 1) = %f, want 1", got)
	}
	if got := f1Score(0.5, 1); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("f1Score(0.5, 1) = %f, want %f", got, 2.0/3.0)
	}
}

package ml

import (
	"errors"
	"strings"
	"testing"
)

func TestPredictorDegradedMode(t *testing.T) {
	p := LoadPredictor(t.TempDir())

	if p.Loaded() {
		t.Fatal("predictor claims to be loaded with no artifacts on disk")
	}
	if got := p.Accuracy(); got != "N/A" {
		t.Errorf("Accuracy() = %q, want N/A", got)
	}
	if got := p.Report(); got != "N/A" {
		t.Errorf("Report() = %q, want N/A", got)
	}
	if got := p.TopImportances(5); len(got) != 0 {
		t.Errorf("TopImportances(5) = %v, want empty", got)
	}

	_, err := p.Predict(PredictionInput{})
	if !errors.Is(err, ErrModelNotLoaded) {
		t.Fatalf("Predict error = %v, want ErrModelNotLoaded", err)
	}
}

func TestPredictorEndToEnd(t *testing.T) {
	dir := t.TempDir()

	table := GenerateStudents(200, 42)
	pipeline, eval, importances, err := TrainPipeline(table, 42)
	if err != nil {
		t.Fatal(err)
	}
	if err := SavePipeline(dir, pipeline); err != nil {
		t.Fatal(err)
	}
	if err := SaveEvaluation(dir, eval); err != nil {
		t.Fatal(err)
	}
	if err := SaveImportances(dir, importances); err != nil {
		t.Fatal(err)
	}

	p := LoadPredictor(dir)
	if !p.Loaded() {
		t.Fatal("predictor failed to load saved artifacts")
	}
	if !strings.HasSuffix(p.Accuracy(), "%") {
		t.Errorf("Accuracy() = %q, want a percentage", p.Accuracy())
	}

	result, err := p.Predict(PredictionInput{
		StudentAge:       "20",
		Sex:              "Male",
		HighSchoolType:   "State",
		Scholarship:      "50",
		AdditionalWork:   "No",
		SportsActivity:   "No",
		Transportation:   "Bus",
		WeeklyStudyHours: "8",
		Attendance:       "Always",
		Reading:          "Yes",
		Notes:            "Yes",
		ListeningInClass: "Yes",
		ProjectWork:      "Yes",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.PredictedGrade == "" || result.Recommendation == "" {
		t.Errorf("incomplete result: %+v", result)
	}
	if !strings.HasSuffix(result.Confidence, "%") {
		t.Errorf("Confidence = %q, want a percentage", result.Confidence)
	}
}

func TestRecommendationDecisionTable(t *testing.T) {
	withTop := &Predictor{importances: []FeatureImportance{
		{Feature: "Weekly_Study_Hours", Source: "Weekly_Study_Hours", Importance: 0.4},
	}}
	withOtherTop := &Predictor{importances: []FeatureImportance{
		{Feature: "Sex_Male", Source: "Sex", Importance: 0.4},
	}}
	noTop := &Predictor{}

	tests := []struct {
		name  string
		p     *Predictor
		grade string
		want  string
	}{
		{"high grade praises", withTop, "A", "Excellent work"},
		{"B praises too", noTop, "B", "Excellent work"},
		{"mid grade names top feature", withTop, "C", "Weekly Study Hours"},
		{"mid grade without importances", noTop, "D", "consider increasing"},
		{"low grade with actionable top", withTop, "Fail", "urgent focus"},
		{"low grade with unactionable top", withOtherTop, "E", "Focus immediately"},
		{"low grade without importances", noTop, "Fail", "Focus immediately"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.recommendationFor(tt.grade)
			if !strings.Contains(got, tt.want) {
				t.Errorf("recommendationFor(%q) = %q, want it to contain %q", tt.grade, got, tt.want)
			}
		})
	}
}

func TestCleanFeatureName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Weekly_Study_Hours", "Weekly Study Hours"},
		{"Attendance_Always", "Attendance Always"},
		{"notes", "Notes"},
	}
	for _, tt := range tests {
		if got := cleanFeatureName(tt.in); got != tt.want {
			t.Errorf("cleanFeatureName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

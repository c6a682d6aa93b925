package ml

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrModelNotLoaded is returned by Predict while the predictor runs in
// degraded mode, i.e. the training artifacts were missing at startup.
var ErrModelNotLoaded = errors.New("model not loaded; run the trainer to produce ML artifacts")

// Predictor owns the fitted pipeline for the process lifetime. It is
// constructed once at startup and never mutated afterwards, so request
// handlers may share it freely.
type Predictor struct {
	pipeline    *Pipeline
	evaluation  *Evaluation
	importances []FeatureImportance
}

// PredictionInput carries one prediction form submission, every field as
// the raw string the form posted.
type PredictionInput struct {
	StudentAge       string `json:"Student_Age" form:"Student_Age"`
	Sex              string `json:"Sex" form:"Sex"`
	HighSchoolType   string `json:"High_School_Type" form:"High_School_Type"`
	Scholarship      string `json:"Scholarship" form:"Scholarship"`
	AdditionalWork   string `json:"Additional_Work" form:"Additional_Work"`
	SportsActivity   string `json:"Sports_activity" form:"Sports_activity"`
	Transportation   string `json:"Transportation" form:"Transportation"`
	WeeklyStudyHours string `json:"Weekly_Study_Hours" form:"Weekly_Study_Hours"`
	Attendance       string `json:"Attendance" form:"Attendance"`
	Reading          string `json:"Reading" form:"Reading"`
	Notes            string `json:"Notes" form:"Notes"`
	ListeningInClass string `json:"Listening_in_Class" form:"Listening_in_Class"`
	ProjectWork      string `json:"Project_work" form:"Project_work"`
}

// PredictionResult is the response payload for a successful prediction.
type PredictionResult struct {
	PredictedGrade string `json:"predicted_grade"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
}

// LoadPredictor loads the persisted artifacts once. Missing artifacts are
// not fatal: the predictor comes up in degraded mode with an absent model,
// zero metrics and an empty importance table, and every prediction returns
// ErrModelNotLoaded until the trainer has produced artifacts.
func LoadPredictor(dir string) *Predictor {
	p := &Predictor{}

	pipeline, err := LoadPipeline(dir)
	if err != nil {
		log.Printf("WARNING: ML pipeline not loaded from %s: %v. Run cmd/train first.", dir, err)
		return p
	}
	p.pipeline = pipeline

	if p.evaluation, err = LoadEvaluation(dir); err != nil {
		log.Printf("WARNING: ML metrics not loaded from %s: %v", dir, err)
	}
	if p.importances, err = LoadImportances(dir); err != nil {
		log.Printf("WARNING: ML feature importances not loaded from %s: %v", dir, err)
	}
	return p
}

// Loaded reports whether a pipeline is available.
func (p *Predictor) Loaded() bool {
	return p.pipeline != nil
}

// Accuracy returns the held-out accuracy as a percentage string for
// display, "N/A" in degraded mode.
func (p *Predictor) Accuracy() string {
	if p.evaluation == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", p.evaluation.Accuracy*100)
}

// Report returns the persisted classification report text.
func (p *Predictor) Report() string {
	if p.evaluation == nil {
		return "N/A"
	}
	return p.evaluation.Report
}

// TopImportances returns up to n entries of the ranked importance table.
func (p *Predictor) TopImportances(n int) []FeatureImportance {
	if len(p.importances) < n {
		n = len(p.importances)
	}
	return p.importances[:n]
}

// Predict parses the form input, runs the pipeline and attaches the
// recommendation for the predicted grade. Parse and pipeline failures come
// back as errors for the caller to surface; they never panic the process.
func (p *Predictor) Predict(in PredictionInput) (*PredictionResult, error) {
	if !p.Loaded() {
		return nil, ErrModelNotLoaded
	}

	values := map[string]string{
		"Student_Age":        in.StudentAge,
		"Sex":                in.Sex,
		"High_School_Type":   in.HighSchoolType,
		"Scholarship":        in.Scholarship,
		"Additional_Work":    in.AdditionalWork,
		"Sports_activity":    in.SportsActivity,
		"Transportation":     in.Transportation,
		"Weekly_Study_Hours": in.WeeklyStudyHours,
		"Attendance":         in.Attendance,
		"Reading":            in.Reading,
		"Notes":              in.Notes,
		"Listening_in_Class": in.ListeningInClass,
		"Project_work":       in.ProjectWork,
	}

	grade, confidence, err := p.pipeline.PredictRow(values)
	if err != nil {
		return nil, fmt.Errorf("prediction failed due to processing error: %w", err)
	}

	return &PredictionResult{
		PredictedGrade: grade,
		Recommendation: p.recommendationFor(grade),
		Confidence:     fmt.Sprintf("%.2f%%", confidence*100),
	}, nil
}

// recommendationFor selects the advice text by a fixed decision table
// keyed on the predicted grade.
func (p *Predictor) recommendationFor(grade string) string {
	var top *FeatureImportance
	if len(p.importances) > 0 {
		top = &p.importances[0]
	}

	switch grade {
	case "A", "B":
		return "Excellent work! Your current profile strongly indicates success. " +
			"To maintain this, ensure your <b>Weekly Study Hours</b> remain consistent " +
			"and high-impact activities like <b>Project Work</b> are prioritized."

	case "C", "D":
		if top != nil {
			return fmt.Sprintf("Good performance, but there is room for improvement. "+
				"The analysis suggests that improving your focus on <b>%s</b> could boost "+
				"your grade significantly.", cleanFeatureName(top.Feature))
		}
		return "Good work, but consider increasing your Weekly Study Hours and " +
			"ensuring consistent attendance to push for a higher grade."

	default: // E, Fail
		if top != nil && (top.Source == "Weekly_Study_Hours" || top.Source == "Attendance") {
			return fmt.Sprintf("Your predicted grade suggests a high risk. We recommend "+
				"urgent focus on <b>%s</b> and re-evaluating your learning methods "+
				"(Notes, Listening). Every small improvement here will help.", cleanFeatureName(top.Feature))
		}
		return "Your predicted grade suggests a high risk. Focus immediately on improving " +
			"your <b>Attendance</b> and increasing your <b>Weekly Study Hours</b>."
	}
}

// cleanFeatureName de-slugs a feature name for display: underscores become
// spaces and every word is title-cased.
func cleanFeatureName(feature string) string {
	words := strings.Fields(strings.ReplaceAll(feature, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

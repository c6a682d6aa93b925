package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the artifacts directory. The trainer writes
// all three; the web application loads them by path at startup.
const (
	PipelineFile   = "ml_model_pipeline.gob"
	MetricsFile    = "ml_metrics.gob"
	ImportanceFile = "ml_feature_importance.gob"
)

// SavePipeline gob-encodes the fitted pipeline.
func SavePipeline(dir string, p *Pipeline) error {
	return saveGob(filepath.Join(dir, PipelineFile), p)
}

// LoadPipeline restores a fitted pipeline from disk.
func LoadPipeline(dir string) (*Pipeline, error) {
	p := &Pipeline{}
	if err := loadGob(filepath.Join(dir, PipelineFile), p); err != nil {
		return nil, err
	}
	return p, nil
}

func SaveEvaluation(dir string, e *Evaluation) error {
	return saveGob(filepath.Join(dir, MetricsFile), e)
}

func LoadEvaluation(dir string) (*Evaluation, error) {
	e := &Evaluation{}
	if err := loadGob(filepath.Join(dir, MetricsFile), e); err != nil {
		return nil, err
	}
	return e, nil
}

func SaveImportances(dir string, imp []FeatureImportance) error {
	return saveGob(filepath.Join(dir, ImportanceFile), &imp)
}

func LoadImportances(dir string) ([]FeatureImportance, error) {
	var imp []FeatureImportance
	if err := loadGob(filepath.Join(dir, ImportanceFile), &imp); err != nil {
		return nil, err
	}
	return imp, nil
}

func saveGob(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func loadGob(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

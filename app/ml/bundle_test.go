package ml

import (
	"reflect"
	"testing"
)

func TestArtifactRoundTrip(t *testing.T) {
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

	loaded, err := LoadPipeline(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Classes, pipeline.Classes) {
		t.Errorf("loaded classes = %v, want %v", loaded.Classes, pipeline.Classes)
	}
	if len(loaded.Forest.Trees) != len(pipeline.Forest.Trees) {
		t.Errorf("loaded %d trees, want %d", len(loaded.Forest.Trees), len(pipeline.Forest.Trees))
	}

	// The restored pipeline must predict identically to the original.
	values := map[string]string{}
	for i, col := range table.Header {
		values[col] = table.Rows[0][i]
	}
	wantGrade, wantConf, err := pipeline.PredictRow(values)
	if err != nil {
		t.Fatal(err)
	}
	gotGrade, gotConf, err := loaded.PredictRow(values)
	if err != nil {
		t.Fatal(err)
	}
	if gotGrade != wantGrade || gotConf != wantConf {
		t.Errorf("loaded pipeline predicts (%s, %f), original (%s, %f)", gotGrade, gotConf, wantGrade, wantConf)
	}

	loadedEval, err := LoadEvaluation(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loadedEval.Accuracy != eval.Accuracy {
		t.Errorf("loaded accuracy = %f, want %f", loadedEval.Accuracy, eval.Accuracy)
	}

	loadedImp, err := LoadImportances(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loadedImp, importances) {
		t.Errorf("loaded importances differ from saved ones")
	}
}

func TestLoadPipelineMissingFile(t *testing.T) {
	if _, err := LoadPipeline(t.TempDir()); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

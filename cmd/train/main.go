package main

import (
	"flag"
	"log"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/ml"
)

// Trains the grade classifier from the CSV dataset and persists the fitted
// pipeline, its held-out metrics and the ranked feature importances to the
// artifacts directory for the web application to load.
func main() {
	var (
		dataset = flag.String("dataset", "DataSets/student_performance_dummy_data_1000.csv", "training dataset CSV path")
		outDir  = flag.String("out", "ml_artifacts", "artifacts output directory")
		seed    = flag.Uint64("seed", 42, "random seed")
	)
	flag.Parse()

	table, err := ml.ReadCSV(*dataset)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	log.Printf("Training on %d rows from %s", len(table.Rows), *dataset)

	pipeline, eval, importances, err := ml.TrainPipeline(table, *seed)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	log.Printf("Test accuracy: %.4f", eval.Accuracy)
	log.Printf("Classification report:\n%s", eval.Report)
	log.Println("Top feature importances:")
	for _, imp := range importances {
		log.Printf("  %-40s %.4f", imp.Feature, imp.Importance)
	}

	if err := ml.SavePipeline(*outDir, pipeline); err != nil {
		log.Fatalf("Failed to save pipeline: %v", err)
	}
	if err := ml.SaveEvaluation(*outDir, eval); err != nil {
		log.Fatalf("Failed to save metrics: %v", err)
	}
	if err := ml.SaveImportances(*outDir, importances); err != nil {
		log.Fatalf("Failed to save feature importances: %v", err)
	}
	log.Printf("Artifacts written to %s", *outDir)
}

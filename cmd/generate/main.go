package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/ml"
)

// Generates a synthetic student performance dataset and writes it as CSV.
// The web application and the trainer both read the default output path.
func main() {
	var (
		rows = flag.Int("rows", 1000, "number of student rows to generate")
		seed = flag.Uint64("seed", 42, "random seed")
		out  = flag.String("out", "DataSets/student_performance_dummy_data_1000.csv", "output CSV path")
	)
	flag.Parse()

	if *rows <= 0 {
		log.Fatal("rows must be positive")
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	table := ml.GenerateStudents(*rows, *seed)
	if err := table.WriteCSV(*out); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
	log.Printf("Wrote %d rows to %s", len(table.Rows), *out)
}

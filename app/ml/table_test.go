package ml

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")

	table := GenerateStudents(25, 3)
	if err := table.WriteCSV(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Header, table.Header) {
		t.Errorf("header changed: %v vs %v", loaded.Header, table.Header)
	}
	if !reflect.DeepEqual(loaded.Rows, table.Rows) {
		t.Error("rows changed across the round trip")
	}
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Foo,Bar\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadCSV(path); err == nil {
		t.Fatal("wrong header accepted")
	}
}

func TestColumnMissing(t *testing.T) {
	table := &Table{Header: []string{"A"}, Rows: [][]string{{"1"}}}
	if _, err := table.Column("B"); err == nil {
		t.Fatal("missing column returned no error")
	}
	if idx := table.ColumnIndex("B"); idx != -1 {
		t.Errorf("ColumnIndex = %d, want -1", idx)
	}
}

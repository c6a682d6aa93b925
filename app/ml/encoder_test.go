package ml

import (
	"reflect"
	"testing"
)

func fixtureTable() *Table {
	return &Table{
		Header: []string{"Sex", "Attendance", "Grade"},
		Rows: [][]string{
			{"Male", "Always", "A"},
			{"Female", "Never", "Fail"},
			{"Male", "Sometimes", "C"},
		},
	}
}

func TestFitOneHotCategories(t *testing.T) {
	enc, err := FitOneHot(fixtureTable(), []string{"Sex", "Attendance"})
	if err != nil {
		t.Fatal(err)
	}

	if got := enc.Categories["Sex"]; !reflect.DeepEqual(got, []string{"Female", "Male"}) {
		t.Errorf("Sex categories = %v, want sorted [Female Male]", got)
	}
	if enc.Width() != 5 {
		t.Errorf("Width() = %d, want 5", enc.Width())
	}

	features := enc.Features()
	if features[0].Name != "Sex_Female" || features[0].Source != "Sex" {
		t.Errorf("first feature = %+v, want Sex_Female from Sex", features[0])
	}
}

func TestTransformKnownValues(t *testing.T) {
	enc, err := FitOneHot(fixtureTable(), []string{"Sex", "Attendance"})
	if err != nil {
		t.Fatal(err)
	}

	got := enc.Transform(map[string]string{"Sex": "Male", "Attendance": "Never"})
	// Columns: Sex_Female, Sex_Male, Attendance_Always, Attendance_Never, Attendance_Sometimes
	want := []float64{0, 1, 0, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Transform = %v, want %v", got, want)
	}
}

func TestTransformUnknownCategoryIsAllZero(t *testing.T) {
	enc, err := FitOneHot(fixtureTable(), []string{"Sex", "Attendance"})
	if err != nil {
		t.Fatal(err)
	}

	got := enc.Transform(map[string]string{"Sex": "Unknown", "Attendance": "Always"})
	want := []float64{0, 0, 1, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Transform with unknown category = %v, want %v", got, want)
	}
}

func TestFitOneHotMissingColumn(t *testing.T) {
	if _, err := FitOneHot(fixtureTable(), []string{"Nope"}); err == nil {
		t.Fatal("expected error for missing column")
	}
}

package models

import (
	"errors"
	"reflect"
	"testing"
)

func validInput() StudentRecordInput {
	return StudentRecordInput{
		StudentAge:       "20",
		Sex:              "Female",
		HighSchoolType:   "State",
		Scholarship:      "50",
		AdditionalWork:   "No",
		SportsActivity:   "Yes",
		Transportation:   "Bus",
		WeeklyStudyHours: "6",
		Attendance:       "Always",
		Reading:          "Yes",
		Notes:            "Yes",
		ListeningInClass: "No",
		ProjectWork:      "Yes",
		Grade:            "B",
	}
}

func TestNewStudentRecord(t *testing.T) {
	rec, err := NewStudentRecord(validInput())
	if err != nil {
		t.Fatal(err)
	}
	if rec.StudentAge != 20 || rec.Scholarship != 50 || rec.WeeklyStudyHours != 6 {
		t.Errorf("numeric fields not parsed: %+v", rec)
	}
	if rec.Grade != GradeB || rec.Sex != SexFemale {
		t.Errorf("enum fields not set: %+v", rec)
	}
	if rec.IsInvitee {
		t.Error("IsInvitee defaulted to true")
	}
}

func TestNewStudentRecordFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StudentRecordInput)
		wantErr string
	}{
		{"non-numeric age", func(in *StudentRecordInput) { in.StudentAge = "twenty" }, "Student_Age"},
		{"bad scholarship value", func(in *StudentRecordInput) { in.Scholarship = "30" }, "Scholarship"},
		{"bad sex", func(in *StudentRecordInput) { in.Sex = "X" }, "Sex"},
		{"bad school type", func(in *StudentRecordInput) { in.HighSchoolType = "Home" }, "High_School_Type"},
		{"bad transportation", func(in *StudentRecordInput) { in.Transportation = "Bike" }, "Transportation"},
		{"bad attendance", func(in *StudentRecordInput) { in.Attendance = "Rarely" }, "Attendance"},
		{"bad yes/no flag", func(in *StudentRecordInput) { in.Reading = "Maybe" }, "Reading"},
		{"bad grade", func(in *StudentRecordInput) { in.Grade = "AA" }, "Grade"},
		{"empty hours", func(in *StudentRecordInput) { in.WeeklyStudyHours = "" }, "Weekly_Study_Hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := NewStudentRecord(in)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error %T is not a FieldError", err)
			}
			if fieldErr.Field != tt.wantErr {
				t.Errorf("error names field %q, want %q", fieldErr.Field, tt.wantErr)
			}
		})
	}
}

func TestCSVRowRoundTrip(t *testing.T) {
	rec, err := NewStudentRecord(validInput())
	if err != nil {
		t.Fatal(err)
	}

	row := rec.CSVRow()
	if len(row) != len(ExpectedCSVHeader) {
		t.Fatalf("CSVRow has %d columns, want %d", len(row), len(ExpectedCSVHeader))
	}

	back, err := NewStudentRecordFromCSVRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back.CSVRow(), row) {
		t.Errorf("round trip changed the row: %v vs %v", back.CSVRow(), row)
	}
}

func TestNewStudentRecordFromCSVRowLength(t *testing.T) {
	if _, err := NewStudentRecordFromCSVRow([]string{"20", "Male"}); err == nil {
		t.Fatal("expected error for short row")
	}
}

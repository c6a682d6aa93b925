package models

import (
	"fmt"
	"strconv"
	"time"
)

// ExpectedCSVHeader is the fixed, ordered column list used for both the
// template download and bulk upload. Uploads whose header row does not
// match this list exactly are rejected before any row is processed.
var ExpectedCSVHeader = []string{
	"Student_Age", "Sex", "High_School_Type", "Scholarship",
	"Additional_Work", "Sports_activity", "Transportation",
	"Weekly_Study_Hours", "Attendance", "Reading", "Notes",
	"Listening_in_Class", "Project_work", "Grade",
}

// StudentRecord is one row of the student performance table. Records are
// insert-and-read only; the application never updates them after creation.
type StudentRecord struct {
	ID               int64          `json:"id"`
	StudentAge       int            `json:"student_age" validate:"required"`
	Sex              Sex            `json:"sex" validate:"required"`
	HighSchoolType   HighSchoolType `json:"high_school_type" validate:"required"`
	Scholarship      int            `json:"scholarship"`
	AdditionalWork   YesNo          `json:"additional_work" validate:"required"`
	SportsActivity   YesNo          `json:"sports_activity" validate:"required"`
	Transportation   Transportation `json:"transportation" validate:"required"`
	WeeklyStudyHours int            `json:"weekly_study_hours"`
	Attendance       Attendance     `json:"attendance" validate:"required"`
	Reading          YesNo          `json:"reading" validate:"required"`
	Notes            YesNo          `json:"notes" validate:"required"`
	ListeningInClass YesNo          `json:"listening_in_class" validate:"required"`
	ProjectWork      YesNo          `json:"project_work" validate:"required"`
	Grade            Grade          `json:"grade" validate:"required"`
	IsInvitee        bool           `json:"is_invitee"`
	CreatedAt        time.Time      `json:"created_at"`
}

// FieldError reports a single malformed input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StudentRecordInput carries one record's raw form or CSV values, all as
// strings. NewStudentRecord is the only way to turn it into a StudentRecord.
type StudentRecordInput struct {
	StudentAge       string
	Sex              string
	HighSchoolType   string
	Scholarship      string
	AdditionalWork   string
	SportsActivity   string
	Transportation   string
	WeeklyStudyHours string
	Attendance       string
	Reading          string
	Notes            string
	ListeningInClass string
	ProjectWork      string
	Grade            string
	IsInvitee        bool
}

// NewStudentRecord validates every field of the input and builds a record.
// The first malformed field aborts with a FieldError naming it; a record is
// never half-built.
func NewStudentRecord(in StudentRecordInput) (*StudentRecord, error) {
	age, err := parseIntField("Student_Age", in.StudentAge)
	if err != nil {
		return nil, err
	}

	scholarship, err := parseIntField("Scholarship", in.Scholarship)
	if err != nil {
		return nil, err
	}
	if !ValidScholarship(scholarship) {
		return nil, &FieldError{"Scholarship", fmt.Sprintf("must be one of %v, got %d", ScholarshipValues, scholarship)}
	}

	hours, err := parseIntField("Weekly_Study_Hours", in.WeeklyStudyHours)
	if err != nil {
		return nil, err
	}

	rec := &StudentRecord{
		StudentAge:       age,
		Sex:              Sex(in.Sex),
		HighSchoolType:   HighSchoolType(in.HighSchoolType),
		Scholarship:      scholarship,
		AdditionalWork:   YesNo(in.AdditionalWork),
		SportsActivity:   YesNo(in.SportsActivity),
		Transportation:   Transportation(in.Transportation),
		WeeklyStudyHours: hours,
		Attendance:       Attendance(in.Attendance),
		Reading:          YesNo(in.Reading),
		Notes:            YesNo(in.Notes),
		ListeningInClass: YesNo(in.ListeningInClass),
		ProjectWork:      YesNo(in.ProjectWork),
		Grade:            Grade(in.Grade),
		IsInvitee:        in.IsInvitee,
	}

	if !rec.Sex.Valid() {
		return nil, &FieldError{"Sex", "must be Male or Female, got " + quoted(in.Sex)}
	}
	if !rec.HighSchoolType.Valid() {
		return nil, &FieldError{"High_School_Type", "must be State, Private or Other, got " + quoted(in.HighSchoolType)}
	}
	if !rec.Transportation.Valid() {
		return nil, &FieldError{"Transportation", "must be Private, Bus or Other, got " + quoted(in.Transportation)}
	}
	if !rec.Attendance.Valid() {
		return nil, &FieldError{"Attendance", "must be Always, Sometimes or Never, got " + quoted(in.Attendance)}
	}
	for _, f := range []struct {
		name  string
		value YesNo
	}{
		{"Additional_Work", rec.AdditionalWork},
		{"Sports_activity", rec.SportsActivity},
		{"Reading", rec.Reading},
		{"Notes", rec.Notes},
		{"Listening_in_Class", rec.ListeningInClass},
		{"Project_work", rec.ProjectWork},
	} {
		if !f.value.Valid() {
			return nil, &FieldError{f.name, "must be Yes or No, got " + quoted(string(f.value))}
		}
	}
	if !rec.Grade.Valid() {
		return nil, &FieldError{"Grade", "must be one of A, B, C, D, E, Fail, got " + quoted(in.Grade)}
	}

	return rec, nil
}

// NewStudentRecordFromCSVRow maps an uploaded CSV row, in ExpectedCSVHeader
// order, onto the validating constructor.
func NewStudentRecordFromCSVRow(row []string) (*StudentRecord, error) {
	if len(row) != len(ExpectedCSVHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(ExpectedCSVHeader), len(row))
	}
	return NewStudentRecord(StudentRecordInput{
		StudentAge:       row[0],
		Sex:              row[1],
		HighSchoolType:   row[2],
		Scholarship:      row[3],
		AdditionalWork:   row[4],
		SportsActivity:   row[5],
		Transportation:   row[6],
		WeeklyStudyHours: row[7],
		Attendance:       row[8],
		Reading:          row[9],
		Notes:            row[10],
		ListeningInClass: row[11],
		ProjectWork:      row[12],
		Grade:            row[13],
	})
}

// CSVRow renders the record in ExpectedCSVHeader order.
func (r *StudentRecord) CSVRow() []string {
	return []string{
		strconv.Itoa(r.StudentAge),
		string(r.Sex),
		string(r.HighSchoolType),
		strconv.Itoa(r.Scholarship),
		string(r.AdditionalWork),
		string(r.SportsActivity),
		string(r.Transportation),
		strconv.Itoa(r.WeeklyStudyHours),
		string(r.Attendance),
		string(r.Reading),
		string(r.Notes),
		string(r.ListeningInClass),
		string(r.ProjectWork),
		string(r.Grade),
	}
}

func parseIntField(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FieldError{name, "must be a whole number, got " + quoted(value)}
	}
	return n, nil
}

func quoted(s string) string {
	return strconv.Quote(s)
}

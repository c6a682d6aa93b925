package database

import (
	"database/sql"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

const studentColumns = `student_id, student_age, sex, high_school_type, scholarship,
	additional_work, sports_activity, transportation, weekly_study_hours,
	attendance, reading, notes, listening_in_class, project_work, grade,
	is_invitee, created_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.StudentRecord, error) {
	rec := &models.StudentRecord{}
	err := row.Scan(
		&rec.ID, &rec.StudentAge, &rec.Sex, &rec.HighSchoolType, &rec.Scholarship,
		&rec.AdditionalWork, &rec.SportsActivity, &rec.Transportation, &rec.WeeklyStudyHours,
		&rec.Attendance, &rec.Reading, &rec.Notes, &rec.ListeningInClass, &rec.ProjectWork,
		&rec.Grade, &rec.IsInvitee, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateStudentRecord inserts one record and fills its ID and timestamp.
// Each insert is its own transaction; bulk import commits row by row so a
// partial failure keeps the rows that already succeeded.
func CreateStudentRecord(db *sql.DB, rec *models.StudentRecord) error {
	query := `INSERT INTO student_performance_records
		(student_age, sex, high_school_type, scholarship, additional_work,
		 sports_activity, transportation, weekly_study_hours, attendance,
		 reading, notes, listening_in_class, project_work, grade, is_invitee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING student_id, created_at`

	return db.QueryRow(query,
		rec.StudentAge, rec.Sex, rec.HighSchoolType, rec.Scholarship, rec.AdditionalWork,
		rec.SportsActivity, rec.Transportation, rec.WeeklyStudyHours, rec.Attendance,
		rec.Reading, rec.Notes, rec.ListeningInClass, rec.ProjectWork, rec.Grade, rec.IsInvitee,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// GetStudentRecords returns records ordered by ID with limit/offset paging.
func GetStudentRecords(db *sql.DB, limit, offset int) ([]*models.StudentRecord, error) {
	query := `SELECT ` + studentColumns + `
		FROM student_performance_records
		ORDER BY student_id
		LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StudentRecord
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func GetStudentRecordByID(db *sql.DB, id int64) (*models.StudentRecord, error) {
	query := `SELECT ` + studentColumns + `
		FROM student_performance_records
		WHERE student_id = $1`
	return scanStudent(db.QueryRow(query, id))
}

func CountStudentRecords(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM student_performance_records`).Scan(&count)
	return count, err
}

package database

import (
	"database/sql"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// requiredQualityFields are the columns the completion rate is measured
// over. A data point is missing when the column is NULL, or empty for text
// columns.
var requiredQualityFields = []string{
	"student_age", "sex", "scholarship", "grade", "weekly_study_hours",
}

// CalculateDataQualityMetrics aggregates the stored records for the
// dashboard. An empty table yields all-zero metrics rather than a division
// error.
func CalculateDataQualityMetrics(db *sql.DB) (*models.DataQualityMetrics, error) {
	metrics := &models.DataQualityMetrics{AgeDistribution: []models.AgeCount{}}

	total, err := CountStudentRecords(db)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return metrics, nil
	}
	metrics.TotalRecords = total

	err = db.QueryRow(`SELECT COUNT(DISTINCT student_id) FROM student_performance_records`).
		Scan(&metrics.UniqueStudentIDs)
	if err != nil {
		return nil, err
	}

	missing, err := countMissingValues(db)
	if err != nil {
		return nil, err
	}
	metrics.MissingValues = missing
	metrics.CompletionRate = CompletionRate(total, len(requiredQualityFields), missing)

	invitees, err := CountInviteeSubmissions(db)
	if err != nil {
		return nil, err
	}
	metrics.InviteeSubmissions = invitees

	ages, err := ageDistribution(db)
	if err != nil {
		return nil, err
	}
	metrics.AgeDistribution = ages

	return metrics, nil
}

// CompletionRate is the filled share of required data points as a
// percentage, rounded to one decimal. Zero records means a zero rate.
func CompletionRate(totalRecords, requiredFields, missingValues int) float64 {
	totalPoints := totalRecords * requiredFields
	if totalPoints == 0 {
		return 0
	}
	filled := totalPoints - missingValues
	rate := float64(filled) / float64(totalPoints) * 100
	// round to one decimal place
	return float64(int(rate*10+0.5)) / 10
}

func countMissingValues(db *sql.DB) (int, error) {
	// The schema enforces NOT NULL on these columns today, but imported
	// historical data predates that constraint; the empty-string check
	// covers text columns either way.
	query := `SELECT
		COUNT(*) FILTER (WHERE student_age IS NULL) +
		COUNT(*) FILTER (WHERE sex IS NULL OR sex = '') +
		COUNT(*) FILTER (WHERE scholarship IS NULL) +
		COUNT(*) FILTER (WHERE grade IS NULL OR grade = '') +
		COUNT(*) FILTER (WHERE weekly_study_hours IS NULL)
		FROM student_performance_records`

	var missing int
	err := db.QueryRow(query).Scan(&missing)
	return missing, err
}

func ageDistribution(db *sql.DB) ([]models.AgeCount, error) {
	query := `SELECT student_age, COUNT(student_age)
		FROM student_performance_records
		GROUP BY student_age
		ORDER BY COUNT(student_age) DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []models.AgeCount
	for rows.Next() {
		var bucket models.AgeCount
		if err := rows.Scan(&bucket.Age, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	return buckets, rows.Err()
}

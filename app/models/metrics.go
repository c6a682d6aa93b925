package models

// AgeCount is one bucket of the age histogram, ordered by count descending.
type AgeCount struct {
	Age   int `json:"age"`
	Count int `json:"count"`
}

// DataQualityMetrics summarises the stored student records for the
// dashboard. All rates are zero, not an error, when the table is empty.
type DataQualityMetrics struct {
	TotalRecords       int        `json:"total_records"`
	CompletionRate     float64    `json:"completion_rate"`
	UniqueStudentIDs   int        `json:"unique_student_ids"`
	MissingValues      int        `json:"missing_values"`
	InviteeSubmissions int        `json:"invitee_submissions"`
	AgeDistribution    []AgeCount `json:"age_distribution"`
}

// SchemaColumn describes one column of the student dataset for display on
// the dashboard.
type SchemaColumn struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Nullable    bool   `json:"nullable"`
	PrimaryKey  bool   `json:"pk"`
	Description string `json:"description"`
}

package ml

import (
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// Per-column value sets and sampling weights for the synthetic dataset.
// Columns without weights are drawn uniformly.
var (
	synthChoices = map[string][]string{
		"Sex":                {"Male", "Female"},
		"High_School_Type":   {"State", "Private", "Other"},
		"Scholarship":        {"0", "25", "50", "75", "100"},
		"Additional_Work":    {"Yes", "No"},
		"Sports_activity":    {"Yes", "No"},
		"Transportation":     {"Private", "Bus", "Other"},
		"Attendance":         {"Always", "Sometimes", "Never"},
		"Reading":            {"Yes", "No"},
		"Notes":              {"Yes", "No"},
		"Listening_in_Class": {"Yes", "No"},
		"Project_work":       {"Yes", "No"},
		"Grade":              {"A", "B", "C", "D", "E", "Fail"},
	}

	synthWeights = map[string][]float64{
		"Sex":                {0.55, 0.45},
		"High_School_Type":   {0.40, 0.35, 0.25},
		"Scholarship":        {0.40, 0.15, 0.25, 0.10, 0.10},
		"Additional_Work":    {0.40, 0.60},
		"Sports_activity":    {0.25, 0.75},
		"Transportation":     {0.45, 0.35, 0.20},
		"Attendance":         {0.40, 0.35, 0.25},
		"Notes":              {0.65, 0.35},
		"Listening_in_Class": {0.60, 0.40},
		"Project_work":       {0.80, 0.20},
		"Grade":              {0.10, 0.20, 0.30, 0.15, 0.10, 0.15},
	}

	lowGradeChoices  = []string{"D", "E", "Fail"}
	lowGradeWeights  = []float64{0.2, 0.3, 0.5}
	highGradeChoices = []string{"A", "B", "C"}
	highGradeWeights = []float64{0.6, 0.3, 0.1}
)

// GenerateStudents produces n synthetic student rows. Every field is
// sampled independently (weighted where weights are defined, uniform
// otherwise), then the two grade overrides run on the sampled base data.
//
// The low-performance override is applied before the high-performance one.
// The masks are mutually exclusive for the current thresholds, but if a
// threshold change ever made them overlap, the later high-performance
// override wins; that ordering is the documented tie-break, not an
// accident.
func GenerateStudents(n int, seed uint64) *Table {
	src := rand.NewSource(seed)
	rng := rand.New(src)

	samplers := make(map[string]distuv.Categorical, len(synthWeights))
	for col, weights := range synthWeights {
		samplers[col] = distuv.NewCategorical(weights, src)
	}

	pickWeighted := func(col string) string {
		sampler := samplers[col]
		return synthChoices[col][int(sampler.Rand())]
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(models.ExpectedCSVHeader))
		for j, col := range models.ExpectedCSVHeader {
			switch col {
			case "Student_Age":
				row[j] = strconv.Itoa(18 + rng.Intn(7)) // 18..24
			case "Weekly_Study_Hours":
				row[j] = strconv.Itoa(rng.Intn(11)) // 0..10
			case "Reading":
				row[j] = synthChoices[col][rng.Intn(2)]
			default:
				row[j] = pickWeighted(col)
			}
		}
		rows[i] = row
	}

	t := &Table{Header: append([]string(nil), models.ExpectedCSVHeader...), Rows: rows}
	applyGradeOverrides(t, src)
	return t
}

// applyGradeOverrides resamples the grade of rows matching the
// low-performance and high-performance masks. Both masks are evaluated on
// the independently sampled base fields only; neither reads the grade, so
// applying them in sequence cannot cascade.
func applyGradeOverrides(t *Table, src rand.Source) {
	hoursIdx := t.ColumnIndex("Weekly_Study_Hours")
	attendanceIdx := t.ColumnIndex("Attendance")
	projectIdx := t.ColumnIndex("Project_work")
	readingIdx := t.ColumnIndex("Reading")
	gradeIdx := t.ColumnIndex(TargetColumn)

	lowSampler := distuv.NewCategorical(lowGradeWeights, src)
	highSampler := distuv.NewCategorical(highGradeWeights, src)

	for _, row := range t.Rows {
		hours, _ := strconv.Atoi(row[hoursIdx])
		attendance := row[attendanceIdx]

		if hours <= 2 &&
			(attendance == string(models.AttendanceSometimes) || attendance == string(models.AttendanceNever)) &&
			row[projectIdx] == string(models.No) {
			row[gradeIdx] = lowGradeChoices[int(lowSampler.Rand())]
		}
	}

	for _, row := range t.Rows {
		hours, _ := strconv.Atoi(row[hoursIdx])

		if hours >= 7 &&
			row[attendanceIdx] == string(models.AttendanceAlways) &&
			row[readingIdx] == string(models.Yes) {
			row[gradeIdx] = highGradeChoices[int(highSampler.Rand())]
		}
	}
}

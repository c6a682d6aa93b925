package models

// Grade defines the six possible final grade values. Grade is the
// prediction target; every other student field is a predictor.
type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeE    Grade = "E"
	GradeFail Grade = "Fail"
)

// AllGrades lists grades in reporting order.
var AllGrades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeE, GradeFail}

func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE, GradeFail:
		return true
	}
	return false
}

// Attendance defines the possible attendance levels.
type Attendance string

const (
	AttendanceAlways    Attendance = "Always"
	AttendanceSometimes Attendance = "Sometimes"
	AttendanceNever     Attendance = "Never"
)

func (a Attendance) Valid() bool {
	switch a {
	case AttendanceAlways, AttendanceSometimes, AttendanceNever:
		return true
	}
	return false
}

// Sex defines the possible sex values for a student.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// HighSchoolType defines the possible high school backgrounds.
type HighSchoolType string

const (
	SchoolState   HighSchoolType = "State"
	SchoolPrivate HighSchoolType = "Private"
	SchoolOther   HighSchoolType = "Other"
)

func (h HighSchoolType) Valid() bool {
	switch h {
	case SchoolState, SchoolPrivate, SchoolOther:
		return true
	}
	return false
}

// Transportation defines the possible transportation modes.
type Transportation string

const (
	TransportPrivate Transportation = "Private"
	TransportBus     Transportation = "Bus"
	TransportOther   Transportation = "Other"
)

func (t Transportation) Valid() bool {
	switch t {
	case TransportPrivate, TransportBus, TransportOther:
		return true
	}
	return false
}

// YesNo covers the binary study-habit flags (Reading, Notes, etc.).
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

func (y YesNo) Valid() bool {
	return y == Yes || y == No
}

// InviteStatus defines the outcome recorded for an invitation email.
type InviteStatus string

const (
	InviteSent   InviteStatus = "SENT"
	InviteFailed InviteStatus = "FAILED"
)

// ScholarshipValues are the only accepted scholarship percentages.
var ScholarshipValues = []int{0, 25, 50, 75, 100}

func ValidScholarship(v int) bool {
	for _, s := range ScholarshipValues {
		if v == s {
			return true
		}
	}
	return false
}

package students

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// GetStudentsAPI returns student records with limit/offset pagination.
func GetStudentsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)

	records, err := database.GetStudentRecords(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": records,
		"count":    len(records),
		"limit":    limit,
		"offset":   offset,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	rec, err := database.GetStudentRecordByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(rec)
}

// CreateStudentAPI accepts one record as JSON with all fields as strings,
// mirroring the CSV column values.
func CreateStudentAPI(c *fiber.Ctx) error {
	type createRequest struct {
		StudentAge       string `json:"Student_Age"`
		Sex              string `json:"Sex"`
		HighSchoolType   string `json:"High_School_Type"`
		Scholarship      string `json:"Scholarship"`
		AdditionalWork   string `json:"Additional_Work"`
		SportsActivity   string `json:"Sports_activity"`
		Transportation   string `json:"Transportation"`
		WeeklyStudyHours string `json:"Weekly_Study_Hours"`
		Attendance       string `json:"Attendance"`
		Reading          string `json:"Reading"`
		Notes            string `json:"Notes"`
		ListeningInClass string `json:"Listening_in_Class"`
		ProjectWork      string `json:"Project_work"`
		Grade            string `json:"Grade"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, err := models.NewStudentRecord(models.StudentRecordInput{
		StudentAge:       req.StudentAge,
		Sex:              req.Sex,
		HighSchoolType:   req.HighSchoolType,
		Scholarship:      req.Scholarship,
		AdditionalWork:   req.AdditionalWork,
		SportsActivity:   req.SportsActivity,
		Transportation:   req.Transportation,
		WeeklyStudyHours: req.WeeklyStudyHours,
		Attendance:       req.Attendance,
		Reading:          req.Reading,
		Notes:            req.Notes,
		ListeningInClass: req.ListeningInClass,
		ProjectWork:      req.ProjectWork,
		Grade:            req.Grade,
	})
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateStudentRecord(config.GetDB(), rec); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student record"})
	}
	return c.Status(201).JSON(rec)
}

package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	data := app.Group("/data")
	data.Use(auth.AuthMiddleware)

	// Pages
	data.Get("/", DataTablePage)
	data.Get("/add", AddStudentFormPage)
	data.Post("/add", SubmitStudentRecord)
	data.Get("/import", ImportPage)
	data.Get("/download_template", DownloadTemplate)
	data.Post("/upload", UploadAndImportData)

	// API routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI)
}

// DataTablePage renders the paginated student record table.
func DataTablePage(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	records, err := database.GetStudentRecords(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Student Performance Analysis",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load student records. Please try again later.",
		})
	}

	total, err := database.CountStudentRecords(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count records"})
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Student Performance Data",
		"CurrentPage": "data",
		"Students":    records,
		"Total":       total,
		"Limit":       limit,
		"Offset":      offset,
		"Success":     c.Query("success") == "True",
		"UserName":    c.Locals("user_name"),
	})
}

func AddStudentFormPage(c *fiber.Ctx) error {
	return c.Render("students/add", fiber.Map{
		"Title":       "Add New Student Record",
		"CurrentPage": "data",
		"UserName":    c.Locals("user_name"),
	})
}

// SubmitStudentRecord handles the dashboard add form. Validation failures
// send the operator back to the form; they are not invitees, so there is
// no feedback page.
func SubmitStudentRecord(c *fiber.Ctx) error {
	rec, err := RecordFromForm(c, false)
	if err != nil {
		return c.Status(400).Render("students/add", fiber.Map{
			"Title":       "Add New Student Record",
			"CurrentPage": "data",
			"Error":       err.Error(),
			"UserName":    c.Locals("user_name"),
		})
	}

	if err := database.CreateStudentRecord(config.GetDB(), rec); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save record"})
	}
	return c.Redirect("/data?success=True", fiber.StatusSeeOther)
}

// RecordFromForm builds a validated record from submitted form fields.
func RecordFromForm(c *fiber.Ctx, isInvitee bool) (*models.StudentRecord, error) {
	return models.NewStudentRecord(models.StudentRecordInput{
		StudentAge:       c.FormValue("student_age"),
		Sex:              c.FormValue("sex"),
		HighSchoolType:   c.FormValue("high_school_type"),
		Scholarship:      c.FormValue("scholarship"),
		AdditionalWork:   c.FormValue("additional_work"),
		SportsActivity:   c.FormValue("sports_activity"),
		Transportation:   c.FormValue("transportation"),
		WeeklyStudyHours: c.FormValue("weekly_study_hours"),
		Attendance:       c.FormValue("attendance"),
		Reading:          c.FormValue("reading"),
		Notes:            c.FormValue("notes"),
		ListeningInClass: c.FormValue("listening_in_class"),
		ProjectWork:      c.FormValue("project_work"),
		Grade:            c.FormValue("final_grade"),
		IsInvitee:        isInvitee,
	})
}

package dashboard

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)
	dash.Get("/", DashboardPage)

	api := app.Group("/api/metrics")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDataQualityAPI)
}

// DashboardPage renders data-quality metrics and the dataset schema.
func DashboardPage(c *fiber.Ctx) error {
	metrics, err := database.CalculateDataQualityMetrics(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Student Performance Analysis",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load data quality metrics. Please try again later.",
		})
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard & Data Quality",
		"CurrentPage": "dashboard",
		"Metrics":     metrics,
		"Schema":      DatasetSchema(),
		"UserName":    c.Locals("user_name"),
	})
}

func GetDataQualityAPI(c *fiber.Ctx) error {
	metrics, err := database.CalculateDataQualityMetrics(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to calculate metrics"})
	}
	return c.JSON(metrics)
}

// DatasetSchema describes the student table columns for display.
func DatasetSchema() []models.SchemaColumn {
	schema := []models.SchemaColumn{
		{Name: "Student_ID", Type: "INTEGER", PrimaryKey: true},
		{Name: "Student_Age", Type: "INTEGER"},
		{Name: "Sex", Type: "TEXT"},
		{Name: "High_School_Type", Type: "TEXT"},
		{Name: "Scholarship", Type: "INTEGER"},
		{Name: "Additional_Work", Type: "TEXT"},
		{Name: "Sports_activity", Type: "TEXT"},
		{Name: "Transportation", Type: "TEXT"},
		{Name: "Weekly_Study_Hours", Type: "INTEGER"},
		{Name: "Attendance", Type: "TEXT"},
		{Name: "Reading", Type: "TEXT"},
		{Name: "Notes", Type: "TEXT"},
		{Name: "Listening_in_Class", Type: "TEXT"},
		{Name: "Project_work", Type: "TEXT"},
		{Name: "Grade", Type: "TEXT"},
	}
	for i := range schema {
		schema[i].Description = "Student " + strings.ReplaceAll(schema[i].Name, "_", " ") + "."
	}
	return schema
}

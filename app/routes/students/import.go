package students

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

func ImportPage(c *fiber.Ctx) error {
	return renderImportPage(c, fiber.Map{})
}

// DownloadTemplate serves a CSV containing only the expected header row.
func DownloadTemplate(c *fiber.Ctx) error {
	var b strings.Builder
	writer := csv.NewWriter(&b)
	writer.Write(models.ExpectedCSVHeader)
	writer.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename=import_template_header.csv`)
	return c.SendString(b.String())
}

// HeaderMismatch describes how an uploaded header differs from the
// expected column list.
type HeaderMismatch struct {
	Missing []string
	Extra   []string
}

func (m *HeaderMismatch) Error() string {
	return fmt.Sprintf("Header mismatch. Missing columns: %v. Extra columns found: %v.", m.Missing, m.Extra)
}

// ValidateCSVHeader requires the uploaded header to match the expected
// 14-column list exactly, in order. Neither a superset nor a subset
// passes; any mismatch rejects the whole file before row processing.
func ValidateCSVHeader(uploaded []string) error {
	match := len(uploaded) == len(models.ExpectedCSVHeader)
	if match {
		for i, h := range models.ExpectedCSVHeader {
			if uploaded[i] != h {
				match = false
				break
			}
		}
	}
	if match {
		return nil
	}

	mismatch := &HeaderMismatch{Missing: []string{}, Extra: []string{}}
	have := make(map[string]bool, len(uploaded))
	for _, h := range uploaded {
		have[h] = true
	}
	for _, h := range models.ExpectedCSVHeader {
		if !have[h] {
			mismatch.Missing = append(mismatch.Missing, h)
		}
	}
	expected := make(map[string]bool, len(models.ExpectedCSVHeader))
	for _, h := range models.ExpectedCSVHeader {
		expected[h] = true
	}
	for _, h := range uploaded {
		if !expected[h] {
			mismatch.Extra = append(mismatch.Extra, h)
		}
	}
	return mismatch
}

// UploadAndImportData imports a CSV file row by row. The header must match
// exactly or nothing is imported. Each valid row is committed on its own;
// invalid rows are skipped and reported in aggregate, so a partial failure
// keeps the rows that already succeeded.
func UploadAndImportData(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		return renderImportPage(c, fiber.Map{"Error": "No file uploaded."})
	}
	if !strings.HasSuffix(fileHeader.Filename, ".csv") {
		return renderImportPage(c, fiber.Map{"Error": "Invalid file type. Please upload a .csv file."})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return renderImportPage(c, fiber.Map{"Error": "Could not read the uploaded file."})
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return renderImportPage(c, fiber.Map{"Error": fmt.Sprintf("Error reading CSV: %v", err)})
	}
	if len(rows) == 0 {
		return renderImportPage(c, fiber.Map{"Error": "The uploaded file is empty."})
	}

	if err := ValidateCSVHeader(rows[0]); err != nil {
		return renderImportPage(c, fiber.Map{"Error": err.Error()})
	}

	importedCount := 0
	var rowErrors []string
	for i, row := range rows[1:] {
		// Header is line 1; first data row is line 2.
		line := i + 2

		rec, err := models.NewStudentRecordFromCSVRow(row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		if err := database.CreateStudentRecord(config.GetDB(), rec); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		importedCount++
	}

	if len(rowErrors) > 0 {
		return renderImportPage(c, fiber.Map{
			"ImportedCount": importedCount,
			"Errors":        rowErrors,
		})
	}
	return c.Redirect("/data?success=True", fiber.StatusSeeOther)
}

func renderImportPage(c *fiber.Ctx, extra fiber.Map) error {
	bind := fiber.Map{
		"Title":       "Bulk Data Import",
		"CurrentPage": "data",
		"UserName":    c.Locals("user_name"),
	}
	for k, v := range extra {
		bind[k] = v
	}
	return c.Render("students/import", bind)
}

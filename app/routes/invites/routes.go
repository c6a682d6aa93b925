package invites

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/students"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/services"
)

var validate = validator.New()

func SetupInvitesRoutes(app *fiber.App) {
	protected := app.Group("")
	protected.Use(auth.AuthMiddleware)
	protected.Post("/send_invitations", SendInvitations)
	protected.Get("/email_log", EmailLogPage)

	// Invitee routes are public: the signed token in the link is the only
	// credential an external respondent has.
	app.Get("/data/invitee/add", InviteeAddFormPage)
	app.Post("/data/invitee/add", SubmitInviteeRecord)
	app.Get("/data/invitee", InviteeFeedbackPage)
}

// parseEmailList splits a comma-separated address list and validates every
// entry before any of them is used. A single bad address rejects the whole
// batch, so a send loop never starts on a partially valid list.
func parseEmailList(raw string) ([]string, error) {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		email := strings.TrimSpace(part)
		if email == "" {
			continue
		}
		if err := validate.Var(email, "email"); err != nil {
			return nil, fmt.Errorf("invalid email address %q", email)
		}
		emails = append(emails, email)
	}
	if len(emails) == 0 {
		return nil, fmt.Errorf("email_list is required")
	}
	return emails, nil
}

// SendInvitations sends one webhook email per address in the submitted
// comma-separated list and logs every attempt. The list is validated up
// front; once sending starts, failures are per-address, the batch is never
// retried automatically, and all log rows are committed together once the
// batch is done.
func SendInvitations(c *fiber.Ctx) error {
	emails, err := parseEmailList(c.FormValue("email_list"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Sign every form link before the first send so nothing can abort the
	// batch once webhook calls have started; attempted sends are always
	// logged.
	formLinks := make([]string, len(emails))
	for i, email := range emails {
		token, err := auth.GenerateInviteToken(email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to sign invitation link"})
		}
		formLinks[i] = fmt.Sprintf("%s/data/invitee/add?token=%s", config.AppConfig.BaseURL, token)
	}

	sentCount := 0
	var logs []*models.EmailInvitationLog
	for i, email := range emails {
		formLink := formLinks[i]

		status := models.InviteSent
		if err := services.SendInviteEmail(config.AppConfig.InviteWebhookURL, email, formLink); err != nil {
			log.Printf("Invitation email to %s failed: %v", email, err)
			status = models.InviteFailed
		} else {
			sentCount++
		}

		logs = append(logs, &models.EmailInvitationLog{
			RecipientEmail: email,
			FormLink:       formLink,
			Status:         status,
		})
	}

	if len(logs) > 0 {
		if err := database.LogEmailInvitations(config.GetDB(), logs); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to log invitations"})
		}
	}

	c.Set("X-Alert", fmt.Sprintf("%d invitation(s) logged and sent successfully.", sentCount))
	return c.Redirect("/data", fiber.StatusSeeOther)
}

// EmailLogPage displays the append-only invitation log, newest first.
func EmailLogPage(c *fiber.Ctx) error {
	logs, err := database.GetEmailLogs(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Student Performance Analysis",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load the invitation log.",
		})
	}

	return c.Render("invites/email_log", fiber.Map{
		"Title":       "Invitation Log",
		"CurrentPage": "email_log",
		"Logs":        logs,
		"UserName":    c.Locals("user_name"),
	})
}

// InviteeAddFormPage shows the data entry form for an external invitee.
// The token from the invitation link identifies the respondent.
func InviteeAddFormPage(c *fiber.Ctx) error {
	claims, err := auth.ValidateInviteToken(c.Query("token"))
	if err != nil {
		return c.Status(401).Render("invites/feedback", fiber.Map{
			"Title":   "Submission Status",
			"Success": false,
			"Message": "This invitation link is invalid or has expired.",
		})
	}

	return c.Render("invites/add", fiber.Map{
		"Title":   "Invited Data Submission",
		"EmailID": claims.Email,
		"Token":   c.Query("token"),
	})
}

// SubmitInviteeRecord stores an invitee submission and redirects to the
// feedback page.
func SubmitInviteeRecord(c *fiber.Ctx) error {
	if _, err := auth.ValidateInviteToken(c.FormValue("token")); err != nil {
		return c.Status(401).Render("invites/feedback", fiber.Map{
			"Title":   "Submission Status",
			"Success": false,
			"Message": "This invitation link is invalid or has expired.",
		})
	}

	rec, err := students.RecordFromForm(c, true)
	if err != nil {
		return c.Status(400).Render("invites/add", fiber.Map{
			"Title":   "Invited Data Submission",
			"Error":   err.Error(),
			"EmailID": c.FormValue("email"),
			"Token":   c.FormValue("token"),
		})
	}

	if err := database.CreateStudentRecord(config.GetDB(), rec); err != nil {
		return c.Redirect("/data/invitee?invitee_success=False", fiber.StatusSeeOther)
	}
	return c.Redirect("/data/invitee?invitee_success=True", fiber.StatusSeeOther)
}

// InviteeFeedbackPage shows the submission outcome to the invitee.
func InviteeFeedbackPage(c *fiber.Ctx) error {
	return c.Render("invites/feedback", fiber.Map{
		"Title":   "Submission Status",
		"Success": c.Query("invitee_success") == "True",
	})
}

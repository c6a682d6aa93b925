package database

import (
	"database/sql"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

// LogEmailInvitations appends one log row per attempted invitation inside a
// single transaction, so a send batch is committed once.
func LogEmailInvitations(db *sql.DB, logs []*models.EmailInvitationLog) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	query := `INSERT INTO email_invitation_logs (recipient_email, form_link, status)
		VALUES ($1, $2, $3)
		RETURNING id, send_time`

	for _, entry := range logs {
		if err := tx.QueryRow(query, entry.RecipientEmail, entry.FormLink, entry.Status).
			Scan(&entry.ID, &entry.SendTime); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetEmailLogs returns all invitation logs, newest first.
func GetEmailLogs(db *sql.DB) ([]*models.EmailInvitationLog, error) {
	query := `SELECT id, recipient_email, form_link, status, send_time
		FROM email_invitation_logs ORDER BY send_time DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.EmailInvitationLog
	for rows.Next() {
		entry := &models.EmailInvitationLog{}
		if err := rows.Scan(&entry.ID, &entry.RecipientEmail, &entry.FormLink,
			&entry.Status, &entry.SendTime); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// CountInviteeSubmissions counts records that arrived through an invitee link.
func CountInviteeSubmissions(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM student_performance_records WHERE is_invitee = true`).Scan(&count)
	return count, err
}

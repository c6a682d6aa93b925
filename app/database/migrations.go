package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS student_performance_records (
			student_id BIGSERIAL PRIMARY KEY,
			student_age INTEGER NOT NULL,
			sex TEXT NOT NULL,
			high_school_type TEXT NOT NULL,
			scholarship INTEGER NOT NULL,
			additional_work TEXT NOT NULL DEFAULT 'No',
			sports_activity TEXT NOT NULL DEFAULT 'No',
			transportation TEXT NOT NULL,
			weekly_study_hours INTEGER NOT NULL,
			attendance TEXT NOT NULL,
			reading TEXT NOT NULL,
			notes TEXT NOT NULL,
			listening_in_class TEXT NOT NULL,
			project_work TEXT NOT NULL,
			grade TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_student_records_grade
			ON student_performance_records (grade)`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS email_invitation_logs (
			id BIGSERIAL PRIMARY KEY,
			recipient_email TEXT NOT NULL,
			form_link TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'SENT',
			send_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_email_logs_recipient
			ON email_invitation_logs (recipient_email)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	// is_invitee was added after the first deployment; older databases
	// need the column backfilled.
	if err := addIsInviteeColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addIsInviteeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'student_performance_records'
				AND column_name = 'is_invitee'
			) THEN
				ALTER TABLE student_performance_records
					ADD COLUMN is_invitee BOOLEAN NOT NULL DEFAULT false;
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for is_invitee column: %v", err)
		return err
	}
	return nil
}

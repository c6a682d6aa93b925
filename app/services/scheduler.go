package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Purge expired sessions at 02:00
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [02:00]...")

				deleted, err := database.DeleteExpiredSessions(db)
				if err != nil {
					log.Printf("Error purging expired sessions: %v", err)
					continue
				}
				log.Printf("Purged %d expired session(s)", deleted)
			}
		}
	}()
}

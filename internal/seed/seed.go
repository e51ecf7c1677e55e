// Package seed populates the store with demo users and chat history.
package seed

import (
	"fmt"
	"log"

	"agencybot/internal/auth"
	"agencybot/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DemoPassword is the password assigned to every seeded user.
const DemoPassword = "password123"

// Run inserts userCount demo users, each with turnsPerUser chat turns.
// Existing usernames are skipped so reruns stay safe.
func Run(db *gorm.DB, userCount, turnsPerUser int) error {
	hashed, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	created := 0
	for i := 0; i < userCount; i++ {
		user := models.User{
			Username: gofakeit.Username(),
			Password: hashed,
			// roughly a third of demo users already booked a meeting
			ScheduledMeeting: gofakeit.Number(0, 2) == 0,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("Skipping user %s: %v", user.Username, err)
			continue
		}
		created++

		for j := 0; j < turnsPerUser; j++ {
			record := models.ChatRecord{
				Username: user.Username,
				Question: gofakeit.Question(),
				Answer:   gofakeit.Paragraph(1, 3, 12, " "),
			}
			if err := db.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to seed chat for %s: %w", user.Username, err)
			}
		}
	}

	log.Printf("Seeded %d users with %d chat turns each", created, turnsPerUser)
	return nil
}

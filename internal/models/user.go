// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered chatbot user.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"unique;not null" json:"username"`
	Password         string    `gorm:"not null" json:"-"`
	ScheduledMeeting bool      `gorm:"default:false" json:"scheduled_meeting"`
	CreatedAt        time.Time `json:"created_at"`
}

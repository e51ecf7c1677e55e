package models

import "time"

// ChatRecord is one answered question/answer turn in a user's history.
// Username is a soft reference; no foreign key is enforced on it.
type ChatRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName implements the GORM tabler interface.
func (ChatRecord) TableName() string { return "chats" }

package repository

import (
	"context"

	"agencybot/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat history operations
type ChatRepository interface {
	Append(ctx context.Context, username, question, answer string) error
	ListByUsername(ctx context.Context, username string) ([]models.ChatRecord, error)
}

// chatRepository implements ChatRepository
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Append records one answered turn with a server-assigned timestamp.
// Records are never mutated or deleted after this point.
func (r *chatRepository) Append(ctx context.Context, username, question, answer string) error {
	record := models.ChatRecord{
		Username: username,
		Question: question,
		Answer:   answer,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUsername returns the full history for a username in insertion order.
func (r *chatRepository) ListByUsername(ctx context.Context, username string) ([]models.ChatRecord, error) {
	records := []models.ChatRecord{}
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

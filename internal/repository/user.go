// Package repository provides data access layers over the SQLite store.
package repository

import (
	"context"
	"errors"

	"agencybot/internal/models"

	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when a registration collides with an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	HasScheduledMeeting(ctx context.Context, username string) (bool, error)
	SetMeetingScheduled(ctx context.Context, username string, scheduled bool) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The unique constraint on username is the sole
// conflict detector; a violation surfaces as ErrUsernameTaken.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// HasScheduledMeeting reports the stored flag. Unknown usernames report false.
func (r *userRepository) HasScheduledMeeting(ctx context.Context, username string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.ScheduledMeeting, nil
}

// SetMeetingScheduled updates the flag for the given username. Updating an
// unknown username is a silent no-op.
func (r *userRepository) SetMeetingScheduled(ctx context.Context, username string, scheduled bool) error {
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Update("scheduled_meeting", scheduled).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

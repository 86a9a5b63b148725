package repository

import (
	"context"
	"errors"

	"github.com/haminhduc/studygate/internal/model"
	"gorm.io/gorm"
)

// UserRepository is a thin collaborator: the core only needs credential
// lookup for login. Account administration lives elsewhere.
type UserRepository interface {
	// FindByEmail returns (nil, nil) when no user has this email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

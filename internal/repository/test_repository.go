package repository

import (
	"context"
	"errors"

	"github.com/haminhduc/studygate/internal/model"
	"gorm.io/gorm"
)

// TestRepository is a thin catalog collaborator consulted when starting an
// attempt. Catalog CRUD is out of scope for this core.
type TestRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).First(&test, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

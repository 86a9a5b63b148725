package repository

import (
	"context"

	"github.com/haminhduc/studygate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerRepository is the answer ledger: one record per (attempt, task),
// last write wins. The ledger itself enforces no attempt-state policy; that
// belongs to its caller.
type AnswerRepository interface {
	Upsert(ctx context.Context, answer *model.AnswerRecord) error
	GetByAttempt(ctx context.Context, attemptID uint) ([]model.AnswerRecord, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(ctx context.Context, answer *model.AnswerRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attempt_id"}, {Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"given_answer", "is_correct", "time_spent_seconds", "updated_at",
		}),
	}).Create(answer).Error
}

func (r *answerRepository) GetByAttempt(ctx context.Context, attemptID uint) ([]model.AnswerRecord, error) {
	var answers []model.AnswerRecord
	err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Find(&answers).Error
	return answers, err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/query"
	"gorm.io/gorm"
)

// AttemptSummary is a read model for listing: one attempt enriched with the
// denormalized test and subject titles for display.
type AttemptSummary struct {
	model.Attempt
	TestTitle    string `json:"test_title"`
	SubjectTitle string `json:"subject_title"`
}

// AttemptRepository persists the attempt state machine. Every transition is
// a single conditional UPDATE keyed by (id, user_id, status='in_progress'),
// so two racing calls resolve to exactly one affected row without any
// application-level locking. A false result covers not-found, wrong owner
// and wrong state alike; errors are reserved for store faults.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	// FindByOwner returns (nil, nil) when no attempt matches the id for this
	// user — a foreign attempt is indistinguishable from a missing one.
	FindByOwner(ctx context.Context, attemptID, userID uint) (*model.Attempt, error)
	Complete(ctx context.Context, attemptID, userID uint, rawScore, scaledScore *float64, durationSec *int) (bool, error)
	Abort(ctx context.Context, attemptID, userID uint) (bool, error)
	// Resume confirms an attempt the client believed lost but the server
	// still holds InProgress. It deliberately does not revive aborted
	// attempts: Aborted is as terminal as Completed.
	Resume(ctx context.Context, attemptID, userID uint) (bool, error)
	ListInProgress(ctx context.Context, userID uint) ([]AttemptSummary, error)
	ListByUser(ctx context.Context, userID uint, status string, limit, offset int) ([]AttemptSummary, error)
}

type attemptRepository struct {
	db                *gorm.DB
	qComplete         string
	qAbort            string
	qResume           string
	qListInProgress   string
	qListByUser       string
	qListByUserStatus string
}

func NewAttemptRepository(db *gorm.DB, queries *query.Provider) AttemptRepository {
	return &attemptRepository{
		db:                db,
		qComplete:         queries.MustGet("attempt_complete"),
		qAbort:            queries.MustGet("attempt_abort"),
		qResume:           queries.MustGet("attempt_resume"),
		qListInProgress:   queries.MustGet("attempt_list_in_progress"),
		qListByUser:       queries.MustGet("attempt_list_by_user"),
		qListByUserStatus: queries.MustGet("attempt_list_by_user_status"),
	}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) FindByOwner(ctx context.Context, attemptID, userID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", attemptID, userID).
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) Complete(ctx context.Context, attemptID, userID uint, rawScore, scaledScore *float64, durationSec *int) (bool, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).Exec(r.qComplete, now, rawScore, scaledScore, durationSec, now, attemptID, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *attemptRepository) Abort(ctx context.Context, attemptID, userID uint) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(r.qAbort, time.Now(), attemptID, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *attemptRepository) Resume(ctx context.Context, attemptID, userID uint) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(r.qResume, time.Now(), attemptID, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *attemptRepository) ListInProgress(ctx context.Context, userID uint) ([]AttemptSummary, error) {
	rows, err := r.db.WithContext(ctx).Raw(r.qListInProgress, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttemptSummaries(rows)
}

func (r *attemptRepository) ListByUser(ctx context.Context, userID uint, status string, limit, offset int) ([]AttemptSummary, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.WithContext(ctx).Raw(r.qListByUser, userID, limit, offset).Rows()
	} else {
		rows, err = r.db.WithContext(ctx).Raw(r.qListByUserStatus, userID, status, limit, offset).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttemptSummaries(rows)
}

func collectAttemptSummaries(rows *sql.Rows) ([]AttemptSummary, error) {
	summaries := []AttemptSummary{}
	for rows.Next() {
		s, err := scanAttemptSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// scanAttemptSummary decodes one joined row field by field. Every optional
// column maps to an optional field; anything else scans straight through.
func scanAttemptSummary(rows *sql.Rows) (AttemptSummary, error) {
	var (
		s            AttemptSummary
		assignmentID sql.NullInt64
		finishedAt   sql.NullTime
		rawScore     sql.NullFloat64
		scaledScore  sql.NullFloat64
		durationSec  sql.NullInt64
	)
	err := rows.Scan(
		&s.ID, &s.TestID, &s.UserID, &assignmentID, &s.Status,
		&s.StartedAt, &finishedAt, &rawScore, &scaledScore,
		&durationSec, &s.UpdatedAt, &s.TestTitle, &s.SubjectTitle,
	)
	if err != nil {
		return AttemptSummary{}, err
	}
	if assignmentID.Valid {
		v := uint(assignmentID.Int64)
		s.AssignmentID = &v
	}
	if finishedAt.Valid {
		v := finishedAt.Time
		s.FinishedAt = &v
	}
	if rawScore.Valid {
		v := rawScore.Float64
		s.RawScore = &v
	}
	if scaledScore.Valid {
		v := scaledScore.Float64
		s.ScaledScore = &v
	}
	if durationSec.Valid {
		v := int(durationSec.Int64)
		s.DurationSec = &v
	}
	return s, nil
}

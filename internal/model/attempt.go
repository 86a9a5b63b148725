package model

import (
	"time"
)

// Attempt statuses. InProgress is the only non-terminal state: Completed and
// Aborted admit no further transition.
const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
	AttemptStatusAborted    = "aborted"
)

// Attempt is one student's run through one test. Rows are never physically
// deleted; a finished run keeps its scores and duration forever.
type Attempt struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	TestID       uint       `json:"test_id" gorm:"not null;index"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	AssignmentID *uint      `json:"assignment_id,omitempty"`
	Status       string     `json:"status" gorm:"not null;default:'in_progress';index"`
	StartedAt    time.Time  `json:"started_at" gorm:"not null"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	RawScore     *float64   `json:"raw_score,omitempty"`
	ScaledScore  *float64   `json:"scaled_score,omitempty"`
	DurationSec  *int       `json:"duration_seconds,omitempty" gorm:"column:duration_seconds"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

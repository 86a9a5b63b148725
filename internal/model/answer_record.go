package model

import (
	"time"
)

// AnswerRecord is one student response to one task within one attempt.
// (AttemptID, TaskID) is unique: a resubmission overwrites in place.
// GivenAnswer is an opaque JSON payload; the core only requires that it
// serializes.
type AnswerRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AttemptID    uint      `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answer_attempt_task"`
	TaskID       uint      `json:"task_id" gorm:"not null;uniqueIndex:idx_answer_attempt_task"`
	GivenAnswer  string    `json:"given_answer" gorm:"type:text;not null"`
	IsCorrect    bool      `json:"is_correct"`
	TimeSpentSec *int      `json:"time_spent_seconds,omitempty" gorm:"column:time_spent_seconds"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

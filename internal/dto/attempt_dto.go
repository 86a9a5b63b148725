package dto

import (
	"encoding/json"
	"time"
)

// StartAttemptRequest opens a new attempt for the authenticated user.
type StartAttemptRequest struct {
	TestID       uint  `json:"test_id" binding:"required"`
	AssignmentID *uint `json:"assignment_id"`
}

// SubmitAnswerRequest records (or overwrites) one answer within an attempt.
// Correctness is supplied by the caller; this core does no scoring.
type SubmitAnswerRequest struct {
	TaskID       uint            `json:"task_id" binding:"required"`
	GivenAnswer  json.RawMessage `json:"given_answer" binding:"required"`
	IsCorrect    *bool           `json:"is_correct" binding:"required"`
	TimeSpentSec *int            `json:"time_spent_seconds"`
}

// CompleteAttemptRequest closes an attempt. When only a raw score is given,
// the scaled score is derived server-side for display.
type CompleteAttemptRequest struct {
	RawScore    *float64 `json:"raw_score"`
	ScaledScore *float64 `json:"scaled_score"`
	DurationSec *int     `json:"duration_seconds"`
}

type AttemptResponse struct {
	ID           uint       `json:"id"`
	TestID       uint       `json:"test_id"`
	UserID       uint       `json:"user_id"`
	AssignmentID *uint      `json:"assignment_id,omitempty"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	RawScore     *float64   `json:"raw_score,omitempty"`
	ScaledScore  *float64   `json:"scaled_score,omitempty"`
	DurationSec  *int       `json:"duration_seconds,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AnswerResponse struct {
	TaskID       uint            `json:"task_id"`
	GivenAnswer  json.RawMessage `json:"given_answer"`
	IsCorrect    bool            `json:"is_correct"`
	TimeSpentSec *int            `json:"time_spent_seconds,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AttemptDetailResponse is the review view: the attempt plus its ledger.
type AttemptDetailResponse struct {
	AttemptResponse
	Answers []AnswerResponse `json:"answers"`
}

// AttemptSummaryResponse is a history/list row enriched with catalog titles.
type AttemptSummaryResponse struct {
	AttemptResponse
	TestTitle    string `json:"test_title"`
	SubjectTitle string `json:"subject_title"`
}

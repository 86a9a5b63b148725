package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ErrTestNotFound rejects starting an attempt against a missing test.
var ErrTestNotFound = errors.New("test not found")

// ErrInvalidAnswerPayload rejects answers whose payload is not valid JSON.
var ErrInvalidAnswerPayload = errors.New("given answer is not valid JSON")

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// AttemptService owns the lifecycle of a test attempt. Every operation takes
// the authenticated user id explicitly; a foreign attempt looks exactly like
// a missing one. Boolean false results mean a legitimate ownership or state
// mismatch — store faults always come back as errors.
//
// This service deliberately does not enforce attempts-allowed limits or
// one-in-progress-per-test; those policies belong to a calling layer.
type AttemptService interface {
	Create(ctx context.Context, userID uint, req dto.StartAttemptRequest) (*dto.AttemptResponse, error)
	// GetByID returns nil when the attempt does not exist or is not owned by
	// userID.
	GetByID(ctx context.Context, attemptID, userID uint) (*dto.AttemptDetailResponse, error)
	// SubmitAnswer upserts one answer, last-write-wins. It only writes when
	// the attempt is owned by userID and still in progress.
	SubmitAnswer(ctx context.Context, attemptID, userID uint, req dto.SubmitAnswerRequest) (bool, error)
	Complete(ctx context.Context, attemptID, userID uint, req dto.CompleteAttemptRequest) (bool, error)
	Abort(ctx context.Context, attemptID, userID uint) (bool, error)
	Resume(ctx context.Context, attemptID, userID uint) (bool, error)
	ListInProgress(ctx context.Context, userID uint) ([]dto.AttemptSummaryResponse, error)
	ListByUser(ctx context.Context, userID uint, status string, limit, offset int) ([]dto.AttemptSummaryResponse, error)
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	testRepo    repository.TestRepository
	scoreScaler ScoreScalerService
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	testRepo repository.TestRepository,
	scoreScaler ScoreScalerService,
) AttemptService {
	return &attemptService{
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		testRepo:    testRepo,
		scoreScaler: scoreScaler,
	}
}

func (s *attemptService) Create(ctx context.Context, userID uint, req dto.StartAttemptRequest) (*dto.AttemptResponse, error) {
	test, err := s.testRepo.FindByID(ctx, req.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up test %d: %w", req.TestID, err)
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	attempt := model.Attempt{
		TestID:       req.TestID,
		UserID:       userID,
		AssignmentID: req.AssignmentID,
		Status:       model.AttemptStatusInProgress,
		StartedAt:    time.Now(),
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	log.Info().Uint("attemptID", attempt.ID).Uint("userID", userID).Uint("testID", req.TestID).Msg("Attempt started")

	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *attemptService) GetByID(ctx context.Context, attemptID, userID uint) (*dto.AttemptDetailResponse, error) {
	attempt, err := s.attemptRepo.FindByOwner(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, nil
	}

	answers, err := s.answerRepo.GetByAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for attempt %d: %w", attemptID, err)
	}

	var resp dto.AttemptDetailResponse
	if err := copier.Copy(&resp.AttemptResponse, attempt); err != nil {
		return nil, err
	}
	resp.Answers = make([]dto.AnswerResponse, 0, len(answers))
	for _, a := range answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponse{
			TaskID:       a.TaskID,
			GivenAnswer:  json.RawMessage(a.GivenAnswer),
			IsCorrect:    a.IsCorrect,
			TimeSpentSec: a.TimeSpentSec,
			UpdatedAt:    a.UpdatedAt,
		})
	}
	return &resp, nil
}

func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID, userID uint, req dto.SubmitAnswerRequest) (bool, error) {
	if !json.Valid(req.GivenAnswer) {
		return false, ErrInvalidAnswerPayload
	}

	// The ledger itself is policy-free; ownership and the in-progress guard
	// live here, on the calling side.
	attempt, err := s.attemptRepo.FindByOwner(ctx, attemptID, userID)
	if err != nil {
		return false, err
	}
	if attempt == nil || attempt.Status != model.AttemptStatusInProgress {
		return false, nil
	}

	record := model.AnswerRecord{
		AttemptID:    attemptID,
		TaskID:       req.TaskID,
		GivenAnswer:  string(req.GivenAnswer),
		IsCorrect:    *req.IsCorrect,
		TimeSpentSec: req.TimeSpentSec,
	}
	if err := s.answerRepo.Upsert(ctx, &record); err != nil {
		return false, fmt.Errorf("failed to store answer: %w", err)
	}
	return true, nil
}

func (s *attemptService) Complete(ctx context.Context, attemptID, userID uint, req dto.CompleteAttemptRequest) (bool, error) {
	scaledScore := req.ScaledScore
	if scaledScore == nil && req.RawScore != nil {
		scaled, err := s.scoreScaler.Scale(*req.RawScore)
		if err != nil {
			return false, err
		}
		scaledScore = &scaled
	}

	completed, err := s.attemptRepo.Complete(ctx, attemptID, userID, req.RawScore, scaledScore, req.DurationSec)
	if err != nil {
		return false, err
	}
	if completed {
		log.Info().Uint("attemptID", attemptID).Uint("userID", userID).Msg("Attempt completed")
	}
	return completed, nil
}

func (s *attemptService) Abort(ctx context.Context, attemptID, userID uint) (bool, error) {
	aborted, err := s.attemptRepo.Abort(ctx, attemptID, userID)
	if err != nil {
		return false, err
	}
	if aborted {
		log.Info().Uint("attemptID", attemptID).Uint("userID", userID).Msg("Attempt aborted")
	}
	return aborted, nil
}

func (s *attemptService) Resume(ctx context.Context, attemptID, userID uint) (bool, error) {
	return s.attemptRepo.Resume(ctx, attemptID, userID)
}

func (s *attemptService) ListInProgress(ctx context.Context, userID uint) ([]dto.AttemptSummaryResponse, error) {
	summaries, err := s.attemptRepo.ListInProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(summaries)
}

func (s *attemptService) ListByUser(ctx context.Context, userID uint, status string, limit, offset int) ([]dto.AttemptSummaryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	summaries, err := s.attemptRepo.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(summaries)
}

func toSummaryResponses(summaries []repository.AttemptSummary) ([]dto.AttemptSummaryResponse, error) {
	resp := make([]dto.AttemptSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		var item dto.AttemptSummaryResponse
		if err := copier.Copy(&item.AttemptResponse, &s.Attempt); err != nil {
			return nil, err
		}
		item.TestTitle = s.TestTitle
		item.SubjectTitle = s.SubjectTitle
		resp = append(resp, item)
	}
	return resp, nil
}

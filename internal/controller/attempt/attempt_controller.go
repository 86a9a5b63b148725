package attempt

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haminhduc/studygate/internal/controller/middleware"
	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/service"
	"github.com/rs/zerolog/log"
)

// attemptGoneMessage is returned for every failed transition. Not-found,
// foreign owner and terminal state are deliberately indistinguishable so the
// existence of other users' attempts never leaks.
const attemptGoneMessage = "Attempt not found or not in progress"

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

func attemptIDParam(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("attempt_id")
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return 0, false
	}
	return uint(val), true
}

// Start godoc
// @Summary Start a new test attempt
// @Description Opens an InProgress attempt for the authenticated student. Attempts-allowed quotas are enforced by a policy layer, not here.
// @Tags Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.StartAttemptRequest true "Test to attempt, optional assignment"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [post]
func (c *AttemptController) Start(ctx *gin.Context) {
	var req dto.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.attemptService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Msg("Start attempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start attempt"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get one attempt with its answers
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) Get(ctx *gin.Context) {
	attemptID, ok := attemptIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.attemptService.GetByID(ctx.Request.Context(), attemptID, middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Get attempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load attempt"})
		return
	}
	if resp == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit or overwrite one answer
// @Description Stores the answer for (attempt, task). Resubmission overwrites in place — last write wins.
// @Tags Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param answer body dto.SubmitAnswerRequest true "Answer payload with caller-supplied correctness"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/answers [post]
func (c *AttemptController) SubmitAnswer(ctx *gin.Context) {
	attemptID, ok := attemptIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	stored, err := c.attemptService.SubmitAnswer(ctx.Request.Context(), attemptID, middleware.UserID(ctx), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnswerPayload) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Submit answer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store answer"})
		return
	}
	if !stored {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: attemptGoneMessage})
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "stored"})
}

// Complete godoc
// @Summary Complete an attempt
// @Description Transitions InProgress to Completed, stamping finish time and scores. Not idempotent: a second call is a 404.
// @Tags Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param result body dto.CompleteAttemptRequest true "Scores and duration"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/complete [post]
func (c *AttemptController) Complete(ctx *gin.Context) {
	attemptID, ok := attemptIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CompleteAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	completed, err := c.attemptService.Complete(ctx.Request.Context(), attemptID, middleware.UserID(ctx), req)
	if err != nil {
		if errors.Is(err, service.ErrRawScoreOutOfRange) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Complete attempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to complete attempt"})
		return
	}
	if !completed {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: attemptGoneMessage})
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "completed"})
}

// Abort godoc
// @Summary Abort an attempt
// @Description Transitions InProgress to Aborted. Terminal attempts stay untouched and report 404.
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/abort [post]
func (c *AttemptController) Abort(ctx *gin.Context) {
	attemptID, ok := attemptIDParam(ctx)
	if !ok {
		return
	}

	aborted, err := c.attemptService.Abort(ctx.Request.Context(), attemptID, middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Abort attempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to abort attempt"})
		return
	}
	if !aborted {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: attemptGoneMessage})
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "aborted"})
}

// Resume godoc
// @Summary Confirm an attempt is still in progress
// @Description For clients that timed out locally: confirms the server still holds the attempt InProgress. Never revives aborted attempts.
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/resume [post]
func (c *AttemptController) Resume(ctx *gin.Context) {
	attemptID, ok := attemptIDParam(ctx)
	if !ok {
		return
	}

	resumed, err := c.attemptService.Resume(ctx.Request.Context(), attemptID, middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Resume attempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to resume attempt"})
		return
	}
	if !resumed {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: attemptGoneMessage})
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "in_progress"})
}

// ListInProgress godoc
// @Summary List the caller's in-progress attempts
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/in-progress [get]
func (c *AttemptController) ListInProgress(ctx *gin.Context) {
	resp, err := c.attemptService.ListInProgress(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("List in-progress attempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list attempts"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List the caller's attempt history
// @Description Most recent first, optionally filtered to one status.
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(in_progress, completed, aborted)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.AttemptSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [get]
func (c *AttemptController) List(ctx *gin.Context) {
	status := ctx.Query("status")
	switch status {
	case "", model.AttemptStatusInProgress, model.AttemptStatusCompleted, model.AttemptStatusAborted:
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid status filter"})
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	resp, err := c.attemptService.ListByUser(ctx.Request.Context(), middleware.UserID(ctx), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("List attempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list attempts"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/middleware"
	"wayfare/internal/service"
)

// QuizHandler handles trip quiz endpoints.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListQuestions handles GET /api/v1/trip/quiz
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	questions, err := h.quizService.ListQuestions(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, questions)
}

// UpsertQuestion handles PUT /api/v1/trip/quiz
func (h *QuizHandler) UpsertQuestion(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	var q domain.QuizQuestion
	if err := c.ShouldBindJSON(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid quiz question payload")
		return
	}
	q.TripID = tripID

	if err := h.quizService.UpsertQuestion(c.Request.Context(), &q); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, q)
}

// DeleteQuestion handles DELETE /api/v1/trip/quiz/:id
func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid question ID")
		return
	}

	if err := h.quizService.DeleteQuestion(c.Request.Context(), tripID, questionID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": questionID})
}

// SubmitAnswer handles POST /api/v1/trip/quiz/:id/answer
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid question ID")
		return
	}

	var req struct {
		MemberID    string `json:"member_id" binding:"required"`
		AnswerIndex *int   `json:"answer_index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "member_id and answer_index are required")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	answer, err := h.quizService.SubmitAnswer(c.Request.Context(), tripID, questionID, memberID, *req.AnswerIndex)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, answer)
}

// MemberAnswers handles GET /api/v1/trip/quiz/answers/:memberId
func (h *QuizHandler) MemberAnswers(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	answers, err := h.quizService.MemberAnswers(c.Request.Context(), tripID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, answers)
}

// Results handles GET /api/v1/trip/quiz/results
func (h *QuizHandler) Results(c *gin.Context) {
	tripID, err := middleware.GetTripID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "TRIP_CODE_REQUIRED", "missing trip context")
		return
	}

	results, err := h.quizService.Results(c.Request.Context(), tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, results)
}

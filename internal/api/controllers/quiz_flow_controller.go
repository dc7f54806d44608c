package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pathwise/internal/models/request_models"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

type QuizFlowController struct {
	flowService services.QuizFlowServiceInterface
}

func NewQuizFlowController(flowService services.QuizFlowServiceInterface) *QuizFlowController {
	return &QuizFlowController{
		flowService: flowService,
	}
}

// Start godoc
// @Summary Start a new quiz flow
// @Description Creates a server-side quiz run beginning at the first
// phase-1 question and returns its initial state
// @Tags QuizFlow
// @Produce json
// @Success 200 {object} response_models.FlowState
// @Router /api/career-quiz/flow [post]
func (f *QuizFlowController) Start(c *gin.Context) {
	state := f.flowService.Start(optionalAccountID(c))
	c.JSON(http.StatusOK, state)
}

// Get godoc
// @Summary Get the current state of a quiz flow
// @Tags QuizFlow
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response_models.FlowState
// @Failure 404 {object} map[string]string
// @Router /api/career-quiz/flow/{id} [get]
func (f *QuizFlowController) Get(c *gin.Context) {
	state, err := f.flowService.Get(c.Param("id"))
	if err != nil {
		f.handleFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Tags QuizFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow id"
// @Param request body request_models.FlowAnswerRequest true "Selected option value"
// @Success 200 {object} response_models.FlowState
// @Failure 400 {object} map[string]string
// @Router /api/career-quiz/flow/{id}/answer [post]
func (f *QuizFlowController) SubmitAnswer(c *gin.Context) {
	var req request_models.FlowAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "value is required")
		return
	}

	state, err := f.flowService.SubmitAnswer(c.Param("id"), req.Value)
	if err != nil {
		f.handleFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GoNext godoc
// @Summary Advance the flow one step
// @Description At a phase boundary this triggers question or result
// generation; the returned state carries any generation error so the
// client can retry the same transition
// @Tags QuizFlow
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response_models.FlowState
// @Failure 409 {object} map[string]string
// @Router /api/career-quiz/flow/{id}/next [post]
func (f *QuizFlowController) GoNext(c *gin.Context) {
	state, err := f.flowService.GoNext(c.Request.Context(), c.Param("id"))
	if err != nil {
		f.handleFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GoBack godoc
// @Summary Step back to the previous question
// @Tags QuizFlow
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response_models.FlowState
// @Router /api/career-quiz/flow/{id}/back [post]
func (f *QuizFlowController) GoBack(c *gin.Context) {
	state, err := f.flowService.GoBack(c.Param("id"))
	if err != nil {
		f.handleFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Retake godoc
// @Summary Reset the flow to a fresh run
// @Tags QuizFlow
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response_models.FlowState
// @Router /api/career-quiz/flow/{id}/retake [post]
func (f *QuizFlowController) Retake(c *gin.Context) {
	state, err := f.flowService.Retake(c.Param("id"))
	if err != nil {
		f.handleFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (f *QuizFlowController) handleFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrFlowNotFound):
		utils.PlainError(c, http.StatusNotFound, "Quiz flow not found or expired")
	case errors.Is(err, utils.ErrTransitionInFlight):
		utils.PlainError(c, http.StatusConflict, "A transition is already in progress")
	default:
		utils.PlainError(c, http.StatusInternalServerError, "Failed to process quiz flow request")
	}
}

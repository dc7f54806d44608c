package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

type CareerQuizController struct {
	quizService services.CareerQuizServiceInterface
}

func NewCareerQuizController(quizService services.CareerQuizServiceInterface) *CareerQuizController {
	return &CareerQuizController{
		quizService: quizService,
	}
}

// Generate godoc
// @Summary Generate quiz questions or career results
// @Description Single dispatch endpoint; the action field selects between
// generating phase-2 questions from phase-1 answers and generating career
// recommendations from the full answer set
// @Tags CareerQuiz
// @Accept json
// @Produce json
// @Param request body request_models.CareerQuizRequest true "Quiz payload"
// @Success 200 {object} response_models.GenerateQuestionsResponse
// @Failure 400 {object} map[string]string
// @Router /api/career-quiz [post]
func (q *CareerQuizController) Generate(c *gin.Context) {
	var req request_models.CareerQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case request_models.ActionGenerateQuestions:
		q.generateQuestions(c, req)
	case request_models.ActionGenerateResults:
		q.generateResults(c, req)
	default:
		utils.PlainError(c, http.StatusBadRequest, `Invalid action. Use "generate-questions" or "generate-results".`)
	}
}

func (q *CareerQuizController) generateQuestions(c *gin.Context, req request_models.CareerQuizRequest) {
	if len(req.Phase1Answers) == 0 {
		utils.PlainError(c, http.StatusBadRequest, "phase1Answers are required")
		return
	}

	questions, sessionID, err := q.quizService.GenerateQuestions(c.Request.Context(), optionalAccountID(c), req.Phase1Answers)
	if err != nil {
		utils.HandleGenerationError(c, err, "Failed to process quiz request")
		return
	}

	c.JSON(http.StatusOK, response_models.GenerateQuestionsResponse{
		Questions: questions,
		SessionID: sessionID,
	})
}

func (q *CareerQuizController) generateResults(c *gin.Context, req request_models.CareerQuizRequest) {
	if len(req.AllAnswers) == 0 {
		utils.PlainError(c, http.StatusBadRequest, "allAnswers are required")
		return
	}

	results, err := q.quizService.GenerateResults(
		c.Request.Context(),
		optionalAccountID(c),
		req.AllAnswers,
		req.Phase1Answers,
		req.SessionID,
	)
	if err != nil {
		utils.HandleGenerationError(c, err, "Failed to process quiz request")
		return
	}

	c.JSON(http.StatusOK, response_models.GenerateResultsResponse{Results: results})
}

// History godoc
// @Summary List the caller's past quiz sessions
// @Tags CareerQuiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/career-quiz/history [get]
func (q *CareerQuizController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sessions, err := q.quizService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "")
}

package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pathwise/internal/models/request_models"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

type CareerTreeController struct {
	treeService services.CareerTreeServiceInterface
}

func NewCareerTreeController(treeService services.CareerTreeServiceInterface) *CareerTreeController {
	return &CareerTreeController{
		treeService: treeService,
	}
}

// Generate godoc
// @Summary Generate a three-branch career tree
// @Description Builds a root summary plus exactly three career branches,
// each with four chronological milestones
// @Tags CareerTree
// @Accept json
// @Produce json
// @Param request body request_models.CareerTreeRequest true "Self-assessment inputs"
// @Success 200 {object} map[string]response_models.CareerTreeData
// @Failure 400 {object} map[string]string
// @Router /api/career-tree [post]
func (t *CareerTreeController) Generate(c *gin.Context) {
	var req request_models.CareerTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Skills) == "" || strings.TrimSpace(req.Passions) == "" {
		utils.PlainError(c, http.StatusBadRequest, "skills and passions are required")
		return
	}
	if strings.TrimSpace(req.ShortTermGoal) == "" || strings.TrimSpace(req.LongTermGoal) == "" {
		utils.PlainError(c, http.StatusBadRequest, "shortTermGoal and longTermGoal are required")
		return
	}

	tree, err := t.treeService.Generate(c.Request.Context(), optionalAccountID(c), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.PlainError(c, http.StatusBadRequest, "skills and passions are required")
			return
		}
		utils.HandleGenerationError(c, err, "Failed to generate career tree")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tree": tree})
}

// History godoc
// @Summary List the caller's saved career trees
// @Tags CareerTree
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/career-tree/history [get]
func (t *CareerTreeController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trees, err := t.treeService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trees, "")
}

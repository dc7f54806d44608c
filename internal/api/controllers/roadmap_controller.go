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

type RoadmapController struct {
	roadmapService services.RoadmapServiceInterface
}

func NewRoadmapController(roadmapService services.RoadmapServiceInterface) *RoadmapController {
	return &RoadmapController{
		roadmapService: roadmapService,
	}
}

// Generate godoc
// @Summary Generate a career roadmap
// @Description Produces 5-7 chronological stages from the user's goal and
// context; saved to the caller's history when authenticated
// @Tags Roadmap
// @Accept json
// @Produce json
// @Param request body request_models.RoadmapRequest true "Roadmap inputs"
// @Success 200 {object} map[string][]response_models.RoadmapStage
// @Failure 400 {object} map[string]string
// @Router /api/roadmap [post]
func (r *RoadmapController) Generate(c *gin.Context) {
	var req request_models.RoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.CareerGoal) == "" {
		utils.PlainError(c, http.StatusBadRequest, "careerGoal is required")
		return
	}

	stages, err := r.roadmapService.Generate(c.Request.Context(), optionalAccountID(c), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.PlainError(c, http.StatusBadRequest, "careerGoal is required")
			return
		}
		utils.HandleGenerationError(c, err, "Failed to generate roadmap")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// History godoc
// @Summary List the caller's saved roadmaps
// @Tags Roadmap
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/roadmap/history [get]
func (r *RoadmapController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	roadmaps, err := r.roadmapService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, roadmaps, "")
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pathwise/internal/models/request_models"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

type CollegeController struct {
	collegeService services.CollegeServiceInterface
}

func NewCollegeController(collegeService services.CollegeServiceInterface) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// Search godoc
// @Summary Search Indian colleges by state, field, and degree type
// @Description Returns ranked colleges; exclude already-shown names to
// page through further institutions
// @Tags Colleges
// @Accept json
// @Produce json
// @Param request body request_models.CollegeSearchRequest true "Search filters"
// @Success 200 {object} map[string][]response_models.College
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/college-search [post]
func (cc *CollegeController) Search(c *gin.Context) {
	var req request_models.CollegeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.State == "" || req.Field == "" || req.DegreeType == "" {
		utils.PlainError(c, http.StatusBadRequest, "Please select a state, field of study, and degree type")
		return
	}

	colleges, err := cc.collegeService.Search(c.Request.Context(), req)
	if err != nil {
		cc.handleSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"colleges": colleges})
}

func (cc *CollegeController) handleSearchError(c *gin.Context, err error) {
	var upstream *utils.UpstreamError
	switch {
	case errors.Is(err, utils.ErrNoCollegesFound):
		utils.PlainError(c, http.StatusNotFound, "No colleges found. Try different filters.")
	case errors.As(err, &upstream):
		utils.PlainError(c, http.StatusBadGateway, "Failed to fetch colleges from AI service")
	case errors.Is(err, utils.ErrCompletionNotConfigured):
		utils.PlainError(c, http.StatusInternalServerError, "AI service not configured")
	default:
		utils.PlainError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

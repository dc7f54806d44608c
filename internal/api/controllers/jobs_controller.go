package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pathwise/internal/models/request_models"
	"pathwise/internal/services"
	"pathwise/pkg/utils"
)

type JobsController struct {
	jobService services.JobServiceInterface
}

func NewJobsController(jobService services.JobServiceInterface) *JobsController {
	return &JobsController{
		jobService: jobService,
	}
}

// Search godoc
// @Summary Search job listings
// @Description Proxies the upstream listing API with a short cache; query
// and location default to "software engineer" in "India"
// @Tags Jobs
// @Produce json
// @Param query query string false "Search terms"
// @Param location query string false "Location"
// @Param page query string false "Page number"
// @Success 200 {object} map[string][]response_models.Job
// @Failure 500 {object} map[string]string
// @Router /api/jobs/search [get]
func (j *JobsController) Search(c *gin.Context) {
	jobs, err := j.jobService.Search(
		c.Request.Context(),
		c.Query("query"),
		c.Query("location"),
		c.Query("page"),
	)
	if err != nil {
		j.handleSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListSaved godoc
// @Summary List the caller's saved jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} map[string][]response_models.SavedJob
// @Failure 401 {object} map[string]string
// @Router /api/jobs/saved [get]
func (j *JobsController) ListSaved(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.PlainError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := j.jobService.ListSaved(c.Request.Context(), accountID)
	if err != nil {
		utils.PlainError(c, http.StatusInternalServerError, "Failed to load saved jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Save godoc
// @Summary Save a job listing
// @Description Saving an already saved job returns the existing record
// with its status untouched
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body request_models.SaveJobRequest true "Job payload"
// @Success 200 {object} map[string]response_models.SavedJob
// @Failure 400 {object} map[string]string
// @Router /api/jobs/saved [post]
func (j *JobsController) Save(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.PlainError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	job, err := j.jobService.Save(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.PlainError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		utils.PlainError(c, http.StatusInternalServerError, "Failed to save job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// UpdateStatus godoc
// @Summary Update a saved job's application status
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body request_models.UpdateJobStatusRequest true "Status payload"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /api/jobs/saved [patch]
func (j *JobsController) UpdateStatus(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.PlainError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid id or status")
		return
	}

	updated, err := j.jobService.UpdateStatus(c.Request.Context(), accountID, req.ID, req.Status)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.PlainError(c, http.StatusBadRequest, "Invalid id or status")
			return
		}
		utils.PlainError(c, http.StatusInternalServerError, "Failed to update job status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete godoc
// @Summary Remove a saved job
// @Tags Jobs
// @Produce json
// @Param id query string true "Saved job id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/jobs/saved [delete]
func (j *JobsController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.PlainError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Query("id")
	if id == "" {
		utils.PlainError(c, http.StatusBadRequest, "Missing id")
		return
	}

	if err := j.jobService.Delete(c.Request.Context(), accountID, id); err != nil {
		utils.PlainError(c, http.StatusInternalServerError, "Failed to delete saved job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (j *JobsController) handleSearchError(c *gin.Context, err error) {
	var upstream *utils.UpstreamError
	switch {
	case errors.As(err, &upstream):
		utils.PlainErrorDetails(c, upstream.Status, "Job search API error", upstream.Body)
	case errors.Is(err, utils.ErrJobSearchNotConfigured):
		utils.PlainError(c, http.StatusInternalServerError, "RAPIDAPI_KEY is not configured")
	default:
		utils.PlainErrorDetails(c, http.StatusInternalServerError, "Failed to fetch jobs", err.Error())
	}
}

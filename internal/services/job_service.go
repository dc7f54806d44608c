package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"pathwise/internal/models/db_models"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/repositories"
	mem "pathwise/pkg/memcache"
	"pathwise/pkg/utils"
)

const (
	defaultJSearchURL  = "https://jsearch.p.rapidapi.com/search"
	jsearchHost        = "jsearch.p.rapidapi.com"
	descriptionPreview = 300
)

type JobServiceInterface interface {
	Search(ctx context.Context, query, location, page string) ([]response_models.Job, error)
	ListSaved(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedJob, error)
	Save(ctx context.Context, accountID uuid.UUID, req request_models.SaveJobRequest) (*response_models.SavedJob, error)
	UpdateStatus(ctx context.Context, accountID uuid.UUID, id string, status string) (int64, error)
	Delete(ctx context.Context, accountID uuid.UUID, id string) error
}

type JobService struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	cache     *mem.SearchCache
	savedJobs repositories.SavedJobRepository
}

func NewJobService(
	client *http.Client,
	baseURL string,
	apiKey string,
	cache *mem.SearchCache,
	savedJobs repositories.SavedJobRepository,
) JobServiceInterface {
	if baseURL == "" {
		baseURL = defaultJSearchURL
	}
	return &JobService{
		client:    client,
		baseURL:   baseURL,
		apiKey:    apiKey,
		cache:     cache,
		savedJobs: savedJobs,
	}
}

// jsearchEnvelope mirrors the fields of the upstream payload we consume.
type jsearchEnvelope struct {
	Data []struct {
		JobID             string `json:"job_id"`
		JobTitle          string `json:"job_title"`
		EmployerName      string `json:"employer_name"`
		JobCity           string `json:"job_city"`
		JobState          string `json:"job_state"`
		JobCountry        string `json:"job_country"`
		JobEmploymentType string `json:"job_employment_type"`
		JobDescription    string `json:"job_description"`
		JobApplyLink      string `json:"job_apply_link"`
		JobPublisher      string `json:"job_publisher"`
		JobPostedAt       string `json:"job_posted_at_datetime_utc"`
	} `json:"data"`
}

// Search proxies the JSearch listing API. Responses are cached briefly per
// (query, location, page) to stay inside the upstream rate limit.
func (s *JobService) Search(ctx context.Context, query, location, page string) ([]response_models.Job, error) {
	if s.apiKey == "" {
		return nil, utils.ErrJobSearchNotConfigured
	}

	if query == "" {
		query = "software engineer"
	}
	if location == "" {
		location = "India"
	}
	if page == "" {
		page = "1"
	}

	cacheKey := query + "|" + location + "|" + page
	if cached, ok := s.cache.Get(cacheKey); ok {
		var jobs []response_models.Job
		if err := json.Unmarshal(cached, &jobs); err == nil {
			return jobs, nil
		}
	}

	body, err := s.fetch(ctx, query, location, page)
	if err != nil {
		return nil, err
	}

	var envelope jsearchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode job listings: %w", err)
	}

	jobs := make([]response_models.Job, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		source := item.JobPublisher
		if source == "" {
			source = "JSearch"
		}
		jobs = append(jobs, response_models.Job{
			ID:          item.JobID,
			Title:       item.JobTitle,
			Company:     item.EmployerName,
			Location:    joinNonEmpty(item.JobCity, item.JobState, item.JobCountry),
			Type:        item.JobEmploymentType,
			Description: truncateDescription(item.JobDescription),
			URL:         item.JobApplyLink,
			Source:      source,
			PostedAt:    item.JobPostedAt,
		})
	}

	if encoded, err := json.Marshal(jobs); err == nil {
		s.cache.Set(cacheKey, encoded)
	}

	return jobs, nil
}

func (s *JobService) fetch(ctx context.Context, query, location, page string) ([]byte, error) {
	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, err
	}
	params := endpoint.Query()
	params.Set("query", query+" in "+location)
	params.Set("page", page)
	params.Set("num_pages", "1")
	params.Set("date_posted", "month")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", jsearchHost)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &utils.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (s *JobService) ListSaved(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedJob, error) {
	records, err := s.savedJobs.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	jobs := make([]response_models.SavedJob, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, toSavedJobResponse(&record))
	}
	return jobs, nil
}

// Save is an upsert on (account, job): saving an already saved job returns
// the existing record untouched, preserving its status.
func (s *JobService) Save(ctx context.Context, accountID uuid.UUID, req request_models.SaveJobRequest) (*response_models.SavedJob, error) {
	if req.JobID == "" || req.Title == "" || req.Company == "" || req.URL == "" {
		return nil, utils.ErrInvalidInput
	}

	source := req.Source
	if source == "" {
		source = "jsearch"
	}

	record := &db_models.SavedJob{
		AccountID: accountID,
		JobID:     req.JobID,
		Title:     req.Title,
		Company:   req.Company,
		Location:  req.Location,
		URL:       req.URL,
		Source:    source,
		Status:    db_models.JobStatusSaved,
	}
	saved, err := s.savedJobs.Upsert(ctx, record)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toSavedJobResponse(saved)
	return &response, nil
}

func (s *JobService) UpdateStatus(ctx context.Context, accountID uuid.UUID, id string, status string) (int64, error) {
	if id == "" || !db_models.ValidJobStatus(status) {
		return 0, utils.ErrInvalidInput
	}
	jobID, err := uuid.Parse(id)
	if err != nil {
		// An unknown id updates zero rows rather than failing the request.
		return 0, nil
	}

	updated, err := s.savedJobs.UpdateStatus(ctx, accountID, jobID, status)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, accountID uuid.UUID, id string) error {
	if id == "" {
		return utils.ErrInvalidInput
	}
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if err := s.savedJobs.Delete(ctx, accountID, jobID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toSavedJobResponse(record *db_models.SavedJob) response_models.SavedJob {
	return response_models.SavedJob{
		ID:        record.ID.String(),
		JobID:     record.JobID,
		Title:     record.Title,
		Company:   record.Company,
		Location:  record.Location,
		URL:       record.URL,
		Source:    record.Source,
		Status:    record.Status,
		UpdatedAt: record.UpdatedAt,
	}
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// truncateDescription trims long descriptions to a preview. The cut counts
// runes so a multi-byte character is never split.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionPreview {
		return description
	}
	return string(runes[:descriptionPreview]) + "…"
}

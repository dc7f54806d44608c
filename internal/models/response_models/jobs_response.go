package response_models

type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PostedAt    string `json:"postedAt"`
}

type SavedJob struct {
	ID        string `json:"id"`
	JobID     string `json:"jobId"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updatedAt"`
}

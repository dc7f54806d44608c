package request_models

type SaveJobRequest struct {
	JobID    string `json:"jobId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location"`
	URL      string `json:"url" binding:"required"`
	Source   string `json:"source"`
}

type UpdateJobStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

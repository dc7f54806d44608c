package response_models

type RoadmapStage struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TimeRange   string   `json:"timeRange"`
	Actions     []string `json:"actions"`
	Resources   []string `json:"resources,omitempty"`
}

type RoadmapSummary struct {
	ID         string         `json:"id"`
	CareerGoal string         `json:"careerGoal"`
	CreatedAt  int64          `json:"createdAt"`
	Stages     []RoadmapStage `json:"stages"`
}

package request_models

type RoadmapRequest struct {
	CareerGoal   string `json:"careerGoal"`
	CurrentStage string `json:"currentStage"`
	Timeline     string `json:"timeline"`
	Experience   string `json:"experience"`
	Interests    string `json:"interests"`
}

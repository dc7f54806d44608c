package request_models

type CareerTreeRequest struct {
	Skills        string `json:"skills"`
	Passions      string `json:"passions"`
	TargetRoles   string `json:"targetRoles"`
	CurrentStage  string `json:"currentStage"`
	ShortTermGoal string `json:"shortTermGoal"`
	LongTermGoal  string `json:"longTermGoal"`
}

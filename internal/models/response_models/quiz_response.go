package response_models

type QuizOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type QuizQuestion struct {
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Options  []QuizOption `json:"options"`
}

// CareerResult is one recommended career, ordered by the model descending
// by match score. salaryMax >= salaryMin is requested of the model, not
// enforced here.
type CareerResult struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	SalaryMin  float64  `json:"salaryMin"`
	SalaryMax  float64  `json:"salaryMax"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
	MatchScore float64  `json:"matchScore"`
}

type GenerateQuestionsResponse struct {
	Questions []QuizQuestion `json:"questions"`
	SessionID *string        `json:"sessionId"`
}

type GenerateResultsResponse struct {
	Results []CareerResult `json:"results"`
}

// FlowState is the snapshot returned by every flow endpoint: enough for a
// client to render the current step without holding any state of its own.
type FlowState struct {
	FlowID          string         `json:"flowId"`
	Phase           string         `json:"phase"`
	CurrentStep     int            `json:"currentStep"`
	TotalQuestions  int            `json:"totalQuestions"`
	Progress        float64        `json:"progress"`
	CanProceed      bool           `json:"canProceed"`
	IsLastQuestion  bool           `json:"isLastQuestion"`
	CurrentQuestion *QuizQuestion  `json:"currentQuestion,omitempty"`
	Results         []CareerResult `json:"results,omitempty"`
	Error           string         `json:"error,omitempty"`
}

type QuizSessionSummary struct {
	ID        string         `json:"id"`
	CreatedAt int64          `json:"createdAt"`
	Results   []CareerResult `json:"results"`
}

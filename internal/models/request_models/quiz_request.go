package request_models

// QuizAnswer is one answered question. Ordering is significant: the
// questionIndex is the absolute position across the concatenated
// phase-1 + phase-2 question list.
type QuizAnswer struct {
	QuestionIndex int    `json:"questionIndex"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
}

// CareerQuizRequest is the single POST /api/career-quiz body; Action
// selects which of the two generator contracts applies.
type CareerQuizRequest struct {
	Action        string       `json:"action"`
	Phase1Answers []QuizAnswer `json:"phase1Answers"`
	AllAnswers    []QuizAnswer `json:"allAnswers"`
	SessionID     string       `json:"sessionId"`
}

const (
	ActionGenerateQuestions = "generate-questions"
	ActionGenerateResults   = "generate-results"
)

// FlowAnswerRequest records the selected option value for the current step.
type FlowAnswerRequest struct {
	Value string `json:"value" binding:"required"`
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"pathwise/internal/models/db_models"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/repositories"
	"pathwise/pkg/utils"
)

const questionsSystemPrompt = `You are a career guidance AI. Based on a user's basic profile answers, generate exactly 10 follow-up questions to deeply understand their aptitudes, interests, and ideal career path.

You must respond with ONLY a valid JSON array (no markdown, no code fence, no extra text). Each element must have exactly these keys:
- question (string): the question text
- type (string): always "single"
- options (array): exactly 4 objects, each with "value" (string, snake_case short id) and "label" (string, human readable)

Make questions progressively more specific. Cover:
- Technical vs creative preference
- Leadership vs individual contributor
- Risk tolerance
- Industry-specific interests based on their domain choice
- Soft skills and communication style
- Learning preferences
- Work environment preferences
- Long-term career vision
- Problem types they enjoy
- Values and motivations`

const resultsSystemPrompt = `You are a career guidance AI. Based on a user's complete quiz answers (15 questions), recommend the top 3-5 best-fit career paths.

You must respond with ONLY a valid JSON array (no markdown, no code fence, no extra text). Each element must have exactly these keys:
- id (string): short snake_case identifier
- title (string): career title
- summary (string): 2-3 sentence description of the career and why it fits the user
- salaryMin (number): estimated minimum annual salary in USD
- salaryMax (number): estimated maximum annual salary in USD
- education (string): typical education requirement
- skills (array of strings): 3-5 key skills needed
- matchScore (number): 0-100 percentage match based on the user's answers

Order by matchScore descending (best match first). Be realistic with salary ranges.`

type CareerQuizServiceInterface interface {
	GenerateQuestions(ctx context.Context, accountID *uuid.UUID, answers []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error)
	GenerateResults(ctx context.Context, accountID *uuid.UUID, allAnswers, phase1Answers []request_models.QuizAnswer, sessionID string) ([]response_models.CareerResult, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.QuizSessionSummary, error)
}

type CareerQuizService struct {
	completion utils.CompletionClientInterface
	sessions   repositories.QuizSessionRepository
}

func NewCareerQuizService(
	completion utils.CompletionClientInterface,
	sessions repositories.QuizSessionRepository,
) CareerQuizServiceInterface {
	return &CareerQuizService{
		completion: completion,
		sessions:   sessions,
	}
}

// GenerateQuestions turns 5 profile answers into 10 personalised follow-up
// questions. Persistence of the session is best-effort: a returned nil
// session id with no error means the questions are usable but unsaved.
func (s *CareerQuizService) GenerateQuestions(
	ctx context.Context,
	accountID *uuid.UUID,
	answers []request_models.QuizAnswer,
) ([]response_models.QuizQuestion, *string, error) {
	if len(answers) == 0 {
		return nil, nil, utils.ErrInvalidInput
	}

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		System:      questionsSystemPrompt,
		User:        buildQuestionsUserPrompt(answers),
		Temperature: 0.5,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, nil, err
	}

	var items []map[string]any
	if err := utils.ExtractJSON(raw, &items); err != nil {
		// No fallback question set exists, so extraction failure is fatal here.
		return nil, nil, fmt.Errorf("failed to extract questions: %w", err)
	}

	validated := coerceQuestions(items)

	var sessionID *string
	if accountID != nil {
		if id, err := s.saveSession(ctx, *accountID, answers, validated); err != nil {
			log.Printf("[career-quiz] failed to save phase1 quiz session: %v", err)
		} else {
			sessionID = &id
		}
	}

	return validated, sessionID, nil
}

// GenerateResults turns the complete 15-answer batch into ranked career
// recommendations. When a session id is supplied the existing record is
// updated in place; otherwise a full record is created, covering the case
// where phase-1 persistence failed earlier.
func (s *CareerQuizService) GenerateResults(
	ctx context.Context,
	accountID *uuid.UUID,
	allAnswers, phase1Answers []request_models.QuizAnswer,
	sessionID string,
) ([]response_models.CareerResult, error) {
	if len(allAnswers) == 0 {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		System:      resultsSystemPrompt,
		User:        buildResultsUserPrompt(allAnswers),
		Temperature: 0.4,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := utils.ExtractJSON(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to extract results: %w", err)
	}

	validated := coerceResults(items)

	if accountID != nil {
		s.saveResults(ctx, *accountID, allAnswers, phase1Answers, sessionID, validated)
	}

	return validated, nil
}

func (s *CareerQuizService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.QuizSessionSummary, error) {
	sessions, err := s.sessions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.QuizSessionSummary, 0, len(sessions))
	for _, session := range sessions {
		var results []response_models.CareerResult
		if len(session.Results) > 0 {
			if err := json.Unmarshal(session.Results, &results); err != nil {
				log.Printf("[career-quiz] malformed results payload for session %s: %v", session.ID, err)
			}
		}
		summaries = append(summaries, response_models.QuizSessionSummary{
			ID:        session.ID.String(),
			CreatedAt: session.CreatedAt,
			Results:   results,
		})
	}
	return summaries, nil
}

func (s *CareerQuizService) saveSession(
	ctx context.Context,
	accountID uuid.UUID,
	answers []request_models.QuizAnswer,
	questions []response_models.QuizQuestion,
) (string, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return "", err
	}

	session := &db_models.QuizSession{
		AccountID:       accountID,
		Phase1Answers:   datatypes.JSON(answersJSON),
		Phase2Questions: datatypes.JSON(questionsJSON),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return session.ID.String(), nil
}

// saveResults never fails the request; the generated recommendations are
// valid without a saved history.
func (s *CareerQuizService) saveResults(
	ctx context.Context,
	accountID uuid.UUID,
	allAnswers, phase1Answers []request_models.QuizAnswer,
	sessionID string,
	results []response_models.CareerResult,
) {
	phase2 := make([]request_models.QuizAnswer, 0, len(allAnswers))
	for _, a := range allAnswers {
		if a.QuestionIndex >= 5 {
			phase2 = append(phase2, a)
		}
	}

	phase2JSON, err := json.Marshal(phase2)
	if err != nil {
		log.Printf("[career-quiz] failed to serialize phase2 answers: %v", err)
		return
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		log.Printf("[career-quiz] failed to serialize results: %v", err)
		return
	}

	if sessionID != "" {
		id, err := uuid.Parse(sessionID)
		if err != nil {
			log.Printf("[career-quiz] invalid session id %q: %v", sessionID, err)
			return
		}
		if err := s.sessions.UpdateResults(ctx, id, datatypes.JSON(phase2JSON), datatypes.JSON(resultsJSON)); err != nil {
			log.Printf("[career-quiz] failed to update quiz session %s: %v", sessionID, err)
		}
		return
	}

	phase1 := phase1Answers
	if len(phase1) == 0 {
		for _, a := range allAnswers {
			if a.QuestionIndex < 5 {
				phase1 = append(phase1, a)
			}
		}
	}
	phase1JSON, err := json.Marshal(phase1)
	if err != nil {
		log.Printf("[career-quiz] failed to serialize phase1 answers: %v", err)
		return
	}

	session := &db_models.QuizSession{
		AccountID:     accountID,
		Phase1Answers: datatypes.JSON(phase1JSON),
		Phase2Answers: datatypes.JSON(phase2JSON),
		Results:       datatypes.JSON(resultsJSON),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		log.Printf("[career-quiz] failed to save quiz results: %v", err)
	}
}

// coerceQuestions normalizes loosely-typed model output item by item
// instead of failing the whole batch on a partially malformed entry.
func coerceQuestions(items []map[string]any) []response_models.QuizQuestion {
	questions := make([]response_models.QuizQuestion, 0, len(items))
	for i, item := range items {
		question := utils.CoerceString(item["question"])
		if question == "" {
			question = fmt.Sprintf("Question %d", i+1)
		}

		options := []response_models.QuizOption{}
		if rawOptions, ok := item["options"].([]any); ok {
			for _, rawOption := range rawOptions {
				option, ok := rawOption.(map[string]any)
				if !ok {
					continue
				}
				options = append(options, response_models.QuizOption{
					Value: utils.CoerceString(option["value"]),
					Label: utils.CoerceString(option["label"]),
				})
			}
		}

		questions = append(questions, response_models.QuizQuestion{
			Question: question,
			Type:     "single",
			Options:  options,
		})
	}
	return questions
}

func coerceResults(items []map[string]any) []response_models.CareerResult {
	results := make([]response_models.CareerResult, 0, len(items))
	for _, item := range items {
		matchScore := utils.CoerceFloat(item["matchScore"])
		if matchScore < 0 {
			matchScore = 0
		} else if matchScore > 100 {
			matchScore = 100
		}

		results = append(results, response_models.CareerResult{
			ID:         utils.CoerceString(item["id"]),
			Title:      utils.CoerceString(item["title"]),
			Summary:    utils.CoerceString(item["summary"]),
			SalaryMin:  utils.CoerceFloat(item["salaryMin"]),
			SalaryMax:  utils.CoerceFloat(item["salaryMax"]),
			Education:  utils.CoerceString(item["education"]),
			Skills:     utils.CoerceStrings(item["skills"]),
			MatchScore: matchScore,
		})
	}
	return results
}

func buildQuestionsUserPrompt(answers []request_models.QuizAnswer) string {
	var formatted strings.Builder
	for i, a := range answers {
		if i > 0 {
			formatted.WriteString("\n\n")
		}
		fmt.Fprintf(&formatted, "Q: %s\nA: %s", a.Question, a.Answer)
	}

	return fmt.Sprintf(`Based on these user profile answers, generate 10 personalised follow-up career assessment questions as a JSON array.

User's basic profile:
%s

Respond with ONLY the JSON array, no other text.`, formatted.String())
}

func buildResultsUserPrompt(answers []request_models.QuizAnswer) string {
	var formatted strings.Builder
	for i, a := range answers {
		if i > 0 {
			formatted.WriteString("\n\n")
		}
		fmt.Fprintf(&formatted, "Q%d: %s\nA: %s", a.QuestionIndex+1, a.Question, a.Answer)
	}

	return fmt.Sprintf(`Based on these complete quiz answers, recommend the best career paths as a JSON array.

User's complete quiz answers:
%s

Respond with ONLY the JSON array, no other text.`, formatted.String())
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	mem "pathwise/pkg/memcache"
	"pathwise/pkg/utils"
)

const (
	PhasePhase1         = "phase1"
	PhaseLoadingPhase2  = "loading-phase2"
	PhasePhase2         = "phase2"
	PhaseLoadingResults = "loading-results"
	PhaseResults        = "results"
)

// quizFlow is the server-side counterpart of one user's quiz run. All field
// access goes through mu; the mutex is released around completion calls so
// reads can observe the loading phase while generation runs.
type quizFlow struct {
	mu              sync.Mutex
	id              string
	accountID       *uuid.UUID
	phase           string
	currentStep     int
	answers         map[int]string
	phase2Questions []response_models.QuizQuestion
	results         []response_models.CareerResult
	lastError       string
	sessionID       string
}

type QuizFlowServiceInterface interface {
	Start(accountID *uuid.UUID) response_models.FlowState
	Get(flowID string) (response_models.FlowState, error)
	SubmitAnswer(flowID string, value string) (response_models.FlowState, error)
	GoNext(ctx context.Context, flowID string) (response_models.FlowState, error)
	GoBack(flowID string) (response_models.FlowState, error)
	Retake(flowID string) (response_models.FlowState, error)
}

type QuizFlowService struct {
	flows *mem.FlowStore
	quiz  CareerQuizServiceInterface
}

func NewQuizFlowService(flows *mem.FlowStore, quiz CareerQuizServiceInterface) QuizFlowServiceInterface {
	return &QuizFlowService{
		flows: flows,
		quiz:  quiz,
	}
}

func (s *QuizFlowService) Start(accountID *uuid.UUID) response_models.FlowState {
	flow := &quizFlow{
		id:        uuid.New().String(),
		accountID: accountID,
		phase:     PhasePhase1,
		answers:   make(map[int]string),
	}
	s.flows.Put(flow.id, flow)

	flow.mu.Lock()
	defer flow.mu.Unlock()
	return snapshot(flow)
}

func (s *QuizFlowService) Get(flowID string) (response_models.FlowState, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return response_models.FlowState{}, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	return snapshot(flow), nil
}

// SubmitAnswer records the answer for the current question. Re-answering
// overwrites; the selection is not validated against the option list so
// free-form values survive a retaken question.
func (s *QuizFlowService) SubmitAnswer(flowID string, value string) (response_models.FlowState, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return response_models.FlowState{}, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if transitionInFlight(flow) {
		return snapshot(flow), utils.ErrTransitionInFlight
	}
	flow.answers[flow.currentStep] = value
	return snapshot(flow), nil
}

// GoNext advances one step, or runs the phase boundary generation when the
// current step is the last of its phase. Only one transition may run per
// flow at a time.
func (s *QuizFlowService) GoNext(ctx context.Context, flowID string) (response_models.FlowState, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return response_models.FlowState{}, err
	}

	flow.mu.Lock()

	if transitionInFlight(flow) {
		defer flow.mu.Unlock()
		return snapshot(flow), utils.ErrTransitionInFlight
	}

	flow.lastError = ""

	if flow.phase == PhasePhase1 && flow.currentStep == totalPhase1Questions-1 {
		return s.generatePhase2(ctx, flow), nil
	}

	if flow.phase == PhasePhase2 && flow.currentStep == totalPhase1Questions+len(flow.phase2Questions)-1 {
		return s.generateResults(ctx, flow), nil
	}

	flow.currentStep++
	defer flow.mu.Unlock()
	return snapshot(flow), nil
}

func (s *QuizFlowService) GoBack(flowID string) (response_models.FlowState, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return response_models.FlowState{}, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if transitionInFlight(flow) {
		return snapshot(flow), utils.ErrTransitionInFlight
	}

	if flow.currentStep > 0 {
		if flow.phase == PhasePhase2 && flow.currentStep == totalPhase1Questions {
			flow.phase = PhasePhase1
		}
		flow.currentStep--
	}
	return snapshot(flow), nil
}

func (s *QuizFlowService) Retake(flowID string) (response_models.FlowState, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return response_models.FlowState{}, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if transitionInFlight(flow) {
		return snapshot(flow), utils.ErrTransitionInFlight
	}

	flow.phase = PhasePhase1
	flow.currentStep = 0
	flow.answers = make(map[int]string)
	flow.phase2Questions = nil
	flow.results = nil
	flow.lastError = ""
	flow.sessionID = ""
	return snapshot(flow), nil
}

// generatePhase2 is entered with flow.mu held and returns with it released.
func (s *QuizFlowService) generatePhase2(ctx context.Context, flow *quizFlow) response_models.FlowState {
	flow.phase = PhaseLoadingPhase2
	phase1Answers := collectAnswers(flow, 0, totalPhase1Questions)
	accountID := flow.accountID
	flow.mu.Unlock()

	questions, sessionID, err := s.quiz.GenerateQuestions(ctx, accountID, phase1Answers)

	flow.mu.Lock()
	defer flow.mu.Unlock()

	if err != nil {
		// Answers are kept so the user can retry the same transition.
		flow.lastError = flowErrorMessage(err, "Failed to generate questions")
		flow.phase = PhasePhase1
		return snapshot(flow)
	}

	flow.phase2Questions = questions
	if sessionID != nil {
		flow.sessionID = *sessionID
	}
	flow.phase = PhasePhase2
	flow.currentStep = totalPhase1Questions
	return snapshot(flow)
}

// generateResults is entered with flow.mu held and returns with it released.
func (s *QuizFlowService) generateResults(ctx context.Context, flow *quizFlow) response_models.FlowState {
	flow.phase = PhaseLoadingResults
	allAnswers := collectAnswers(flow, 0, totalPhase1Questions+len(flow.phase2Questions))
	phase1Answers := collectAnswers(flow, 0, totalPhase1Questions)
	accountID := flow.accountID
	sessionID := flow.sessionID
	flow.mu.Unlock()

	results, err := s.quiz.GenerateResults(ctx, accountID, allAnswers, phase1Answers, sessionID)

	flow.mu.Lock()
	defer flow.mu.Unlock()

	if err != nil {
		flow.lastError = flowErrorMessage(err, "Failed to generate results")
		flow.phase = PhasePhase2
		return snapshot(flow)
	}

	flow.results = results
	flow.phase = PhaseResults
	return snapshot(flow)
}

// transitionInFlight reports whether a boundary generation is running for the
// flow. Called with flow.mu held. Every mutating operation is rejected while
// it holds, so a completion landing afterwards never overwrites a concurrent
// reset or answer change.
func transitionInFlight(flow *quizFlow) bool {
	return flow.phase == PhaseLoadingPhase2 || flow.phase == PhaseLoadingResults
}

func (s *QuizFlowService) lookup(flowID string) (*quizFlow, error) {
	value, ok := s.flows.Get(flowID)
	if !ok {
		return nil, utils.ErrFlowNotFound
	}
	flow, ok := value.(*quizFlow)
	if !ok {
		return nil, utils.ErrFlowNotFound
	}
	return flow, nil
}

// collectAnswers resolves each stored answer value to its option label,
// falling back to the raw value, then to the empty string.
func collectAnswers(flow *quizFlow, from, to int) []request_models.QuizAnswer {
	questions := allQuestions(flow)
	answers := make([]request_models.QuizAnswer, 0, to-from)
	for i := from; i < to && i < len(questions); i++ {
		q := questions[i]
		raw, answered := flow.answers[i]

		label := raw
		if answered {
			for _, option := range q.Options {
				if option.Value == raw {
					label = option.Label
					break
				}
			}
		}

		answers = append(answers, request_models.QuizAnswer{
			QuestionIndex: i,
			Question:      q.Question,
			Answer:        label,
		})
	}
	return answers
}

func allQuestions(flow *quizFlow) []response_models.QuizQuestion {
	questions := make([]response_models.QuizQuestion, 0, totalPhase1Questions+len(flow.phase2Questions))
	questions = append(questions, phase1Questions...)
	questions = append(questions, flow.phase2Questions...)
	return questions
}

func snapshot(flow *quizFlow) response_models.FlowState {
	total := totalQuizQuestions
	if flow.phase == PhasePhase1 || flow.phase == PhaseLoadingPhase2 {
		total = totalPhase1Questions
	}

	var progress float64
	if flow.phase == PhaseResults || flow.phase == PhaseLoadingResults {
		progress = 100
	} else {
		progress = float64(flow.currentStep+1) / float64(total) * 100
		if progress > 100 {
			progress = 100
		}
	}

	_, canProceed := flow.answers[flow.currentStep]

	isLast := (flow.phase == PhasePhase1 && flow.currentStep == totalPhase1Questions-1) ||
		(flow.phase == PhasePhase2 && flow.currentStep == totalPhase1Questions+len(flow.phase2Questions)-1)

	var current *response_models.QuizQuestion
	questions := allQuestions(flow)
	if flow.currentStep >= 0 && flow.currentStep < len(questions) {
		q := questions[flow.currentStep]
		current = &q
	}

	state := response_models.FlowState{
		FlowID:          flow.id,
		Phase:           flow.phase,
		CurrentStep:     flow.currentStep,
		TotalQuestions:  total,
		Progress:        progress,
		CanProceed:      canProceed,
		IsLastQuestion:  isLast,
		CurrentQuestion: current,
		Results:         flow.results,
		Error:           flow.lastError,
	}
	return state
}

func flowErrorMessage(err error, fallback string) string {
	if errors.Is(err, utils.ErrCompletionNotConfigured) {
		return "AI service is not configured"
	}
	var upstream *utils.UpstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("AI provider error: %d", upstream.Status)
	}
	return fallback
}

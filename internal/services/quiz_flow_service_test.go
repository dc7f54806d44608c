package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	mem "pathwise/pkg/memcache"
	"pathwise/pkg/utils"
)

type fakeQuizService struct {
	questionsFn func(accountID *uuid.UUID, answers []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error)
	resultsFn   func(accountID *uuid.UUID, allAnswers, phase1Answers []request_models.QuizAnswer, sessionID string) ([]response_models.CareerResult, error)
}

func (f *fakeQuizService) GenerateQuestions(_ context.Context, accountID *uuid.UUID, answers []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
	if f.questionsFn != nil {
		return f.questionsFn(accountID, answers)
	}
	return tenQuestions(), nil, nil
}

func (f *fakeQuizService) GenerateResults(_ context.Context, accountID *uuid.UUID, allAnswers, phase1Answers []request_models.QuizAnswer, sessionID string) ([]response_models.CareerResult, error) {
	if f.resultsFn != nil {
		return f.resultsFn(accountID, allAnswers, phase1Answers, sessionID)
	}
	return []response_models.CareerResult{{ID: "data_scientist", Title: "Data Scientist", MatchScore: 91}}, nil
}

func (f *fakeQuizService) History(context.Context, uuid.UUID) ([]response_models.QuizSessionSummary, error) {
	return nil, nil
}

func tenQuestions() []response_models.QuizQuestion {
	questions := make([]response_models.QuizQuestion, 0, 10)
	for i := 0; i < 10; i++ {
		questions = append(questions, response_models.QuizQuestion{
			Question: fmt.Sprintf("Follow-up %d", i+1),
			Type:     "single",
			Options: []response_models.QuizOption{
				{Value: fmt.Sprintf("opt_%d_a", i), Label: fmt.Sprintf("Option %d A", i+1)},
				{Value: fmt.Sprintf("opt_%d_b", i), Label: fmt.Sprintf("Option %d B", i+1)},
			},
		})
	}
	return questions
}

func newFlowService(fake *fakeQuizService) QuizFlowServiceInterface {
	return NewQuizFlowService(mem.NewFlowStore(time.Minute), fake)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// answerCurrent answers the flow's current question with the first option
// value of the live phase-1 question, or a generic value past phase 1.
func answerThenNext(t *testing.T, svc QuizFlowServiceInterface, flowID, value string) response_models.FlowState {
	t.Helper()
	if _, err := svc.SubmitAnswer(flowID, value); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	state, err := svc.GoNext(context.Background(), flowID)
	if err != nil {
		t.Fatalf("GoNext: %v", err)
	}
	return state
}

func TestFlowStart(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	if state.Phase != PhasePhase1 {
		t.Fatalf("expected phase1, got %s", state.Phase)
	}
	if state.CurrentStep != 0 {
		t.Fatalf("expected step 0, got %d", state.CurrentStep)
	}
	if state.TotalQuestions != 5 {
		t.Fatalf("expected 5 total questions in phase1, got %d", state.TotalQuestions)
	}
	if !almostEqual(state.Progress, 20) {
		t.Fatalf("expected progress 20, got %v", state.Progress)
	}
	if state.CanProceed {
		t.Fatal("an unanswered step must not allow proceeding")
	}
	if state.CurrentQuestion == nil || state.CurrentQuestion.Question != "What is your current education level?" {
		t.Fatalf("unexpected first question: %+v", state.CurrentQuestion)
	}
}

func TestFlowGetUnknownID(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	if _, err := svc.Get("missing"); !errors.Is(err, utils.ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
}

func TestFlowAnswerOverwrites(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	if _, err := svc.SubmitAnswer(state.FlowID, "bachelors"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	updated, err := svc.SubmitAnswer(state.FlowID, "masters")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !updated.CanProceed {
		t.Fatal("answered step must allow proceeding")
	}
}

func TestFlowPhase1Walk(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	state = answerThenNext(t, svc, state.FlowID, "bachelors")
	state = answerThenNext(t, svc, state.FlowID, "remote")
	state = answerThenNext(t, svc, state.FlowID, "technology")

	if state.CurrentStep != 3 {
		t.Fatalf("expected step 3, got %d", state.CurrentStep)
	}
	if !almostEqual(state.Progress, 80) {
		t.Fatalf("expected progress 80, got %v", state.Progress)
	}
	if state.IsLastQuestion {
		t.Fatal("step 3 is not the last phase-1 question")
	}

	if _, err := svc.SubmitAnswer(state.FlowID, "analytical"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	state, err := svc.GoNext(context.Background(), state.FlowID)
	if err != nil {
		t.Fatalf("GoNext: %v", err)
	}
	if state.CurrentStep != 4 || !state.IsLastQuestion {
		t.Fatalf("expected last phase-1 question at step 4, got step %d (isLast=%v)", state.CurrentStep, state.IsLastQuestion)
	}
	if !almostEqual(state.Progress, 100) {
		t.Fatalf("expected progress 100 at step 4 of 5, got %v", state.Progress)
	}
}

func TestFlowPhaseBoundaryGeneratesQuestions(t *testing.T) {
	var captured []request_models.QuizAnswer
	fake := &fakeQuizService{
		questionsFn: func(_ *uuid.UUID, answers []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
			captured = answers
			sessionID := "session-1"
			return tenQuestions(), &sessionID, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for _, value := range []string{"bachelors", "remote", "technology", "analytical"} {
		state = answerThenNext(t, svc, state.FlowID, value)
	}
	state = answerThenNext(t, svc, state.FlowID, "learning")

	if state.Phase != PhasePhase2 {
		t.Fatalf("expected phase2 after the boundary, got %s", state.Phase)
	}
	if state.CurrentStep != 5 {
		t.Fatalf("expected step 5, got %d", state.CurrentStep)
	}
	if state.TotalQuestions != 15 {
		t.Fatalf("expected 15 total questions in phase2, got %d", state.TotalQuestions)
	}
	if !almostEqual(state.Progress, 40) {
		t.Fatalf("expected progress 40, got %v", state.Progress)
	}
	if state.CurrentQuestion == nil || state.CurrentQuestion.Question != "Follow-up 1" {
		t.Fatalf("unexpected current question: %+v", state.CurrentQuestion)
	}

	if len(captured) != 5 {
		t.Fatalf("expected 5 phase-1 answers, got %d", len(captured))
	}
	if captured[0].Answer != "Bachelor's Degree" {
		t.Fatalf("expected option label resolution, got %q", captured[0].Answer)
	}
	if captured[4].Answer != "Continuous learning and challenges" {
		t.Fatalf("expected option label resolution, got %q", captured[4].Answer)
	}
}

func TestFlowRawValueFallsThrough(t *testing.T) {
	var captured []request_models.QuizAnswer
	fake := &fakeQuizService{
		questionsFn: func(_ *uuid.UUID, answers []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
			captured = answers
			return tenQuestions(), nil, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	// A value that matches no option is forwarded verbatim.
	for i := 0; i < 5; i++ {
		state = answerThenNext(t, svc, state.FlowID, "freeform")
	}

	if state.Phase != PhasePhase2 {
		t.Fatalf("expected phase2, got %s", state.Phase)
	}
	for i, answer := range captured {
		if answer.Answer != "freeform" {
			t.Fatalf("answer %d: expected raw value, got %q", i, answer.Answer)
		}
		if answer.QuestionIndex != i {
			t.Fatalf("answer %d: expected index %d, got %d", i, i, answer.QuestionIndex)
		}
	}
}

func TestFlowGenerationFailureKeepsAnswers(t *testing.T) {
	shouldFail := true
	fake := &fakeQuizService{
		questionsFn: func(_ *uuid.UUID, _ []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
			if shouldFail {
				return nil, nil, &utils.UpstreamError{Status: 429, Body: "rate limited"}
			}
			return tenQuestions(), nil, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for _, value := range []string{"bachelors", "remote", "technology", "analytical", "learning"} {
		state = answerThenNext(t, svc, state.FlowID, value)
	}

	if state.Phase != PhasePhase1 {
		t.Fatalf("expected revert to phase1 on failure, got %s", state.Phase)
	}
	if state.Error != "AI provider error: 429" {
		t.Fatalf("unexpected error message: %q", state.Error)
	}
	if state.CurrentStep != 4 {
		t.Fatalf("expected to stay at step 4, got %d", state.CurrentStep)
	}
	if !state.CanProceed {
		t.Fatal("the answer for step 4 must survive the failed transition")
	}

	// A retry of the same transition succeeds without re-answering.
	shouldFail = false
	state, err := svc.GoNext(context.Background(), state.FlowID)
	if err != nil {
		t.Fatalf("GoNext retry: %v", err)
	}
	if state.Phase != PhasePhase2 {
		t.Fatalf("expected phase2 after retry, got %s", state.Phase)
	}
	if state.Error != "" {
		t.Fatalf("expected error cleared on retry, got %q", state.Error)
	}
}

func TestFlowGoBackAcrossBoundary(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	for i := 0; i < 5; i++ {
		state = answerThenNext(t, svc, state.FlowID, "bachelors")
	}
	if state.Phase != PhasePhase2 || state.CurrentStep != 5 {
		t.Fatalf("expected phase2 step 5, got %s step %d", state.Phase, state.CurrentStep)
	}

	state, err := svc.GoBack(state.FlowID)
	if err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if state.Phase != PhasePhase1 || state.CurrentStep != 4 {
		t.Fatalf("expected phase1 step 4 after crossing back, got %s step %d", state.Phase, state.CurrentStep)
	}
	if state.TotalQuestions != 5 {
		t.Fatalf("expected phase1 total of 5, got %d", state.TotalQuestions)
	}
}

func TestFlowGoBackAtStart(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	state, err := svc.GoBack(state.FlowID)
	if err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if state.CurrentStep != 0 {
		t.Fatalf("expected step to stay at 0, got %d", state.CurrentStep)
	}
}

func TestFlowResults(t *testing.T) {
	var gotAll, gotPhase1 []request_models.QuizAnswer
	fake := &fakeQuizService{
		resultsFn: func(_ *uuid.UUID, allAnswers, phase1Answers []request_models.QuizAnswer, _ string) ([]response_models.CareerResult, error) {
			gotAll = allAnswers
			gotPhase1 = phase1Answers
			return []response_models.CareerResult{
				{ID: "ml_engineer", Title: "ML Engineer", MatchScore: 94},
				{ID: "data_analyst", Title: "Data Analyst", MatchScore: 81},
			}, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for i := 0; i < 15; i++ {
		state = answerThenNext(t, svc, state.FlowID, fmt.Sprintf("value-%d", i))
	}

	if state.Phase != PhaseResults {
		t.Fatalf("expected results phase, got %s", state.Phase)
	}
	if !almostEqual(state.Progress, 100) {
		t.Fatalf("expected progress 100 in results, got %v", state.Progress)
	}
	if len(state.Results) != 2 || state.Results[0].ID != "ml_engineer" {
		t.Fatalf("unexpected results: %+v", state.Results)
	}
	if len(gotAll) != 15 {
		t.Fatalf("expected 15 collected answers, got %d", len(gotAll))
	}
	if len(gotPhase1) != 5 {
		t.Fatalf("expected 5 phase-1 answers, got %d", len(gotPhase1))
	}
}

func TestFlowResultsFailureRevertsToPhase2(t *testing.T) {
	fake := &fakeQuizService{
		resultsFn: func(*uuid.UUID, []request_models.QuizAnswer, []request_models.QuizAnswer, string) ([]response_models.CareerResult, error) {
			return nil, utils.ErrEmptyCompletion
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for i := 0; i < 15; i++ {
		state = answerThenNext(t, svc, state.FlowID, "v")
	}

	if state.Phase != PhasePhase2 {
		t.Fatalf("expected revert to phase2, got %s", state.Phase)
	}
	if state.Error != "Failed to generate results" {
		t.Fatalf("unexpected error message: %q", state.Error)
	}
	if state.CurrentStep != 14 {
		t.Fatalf("expected to stay at step 14, got %d", state.CurrentStep)
	}
}

func TestFlowRetake(t *testing.T) {
	svc := newFlowService(&fakeQuizService{})
	state := svc.Start(nil)

	for i := 0; i < 15; i++ {
		state = answerThenNext(t, svc, state.FlowID, "v")
	}
	if state.Phase != PhaseResults {
		t.Fatalf("expected results phase before retake, got %s", state.Phase)
	}

	state, err := svc.Retake(state.FlowID)
	if err != nil {
		t.Fatalf("Retake: %v", err)
	}
	if state.Phase != PhasePhase1 || state.CurrentStep != 0 {
		t.Fatalf("expected a fresh phase1 run, got %s step %d", state.Phase, state.CurrentStep)
	}
	if state.CanProceed {
		t.Fatal("expected answers cleared after retake")
	}
	if len(state.Results) != 0 || state.Error != "" {
		t.Fatalf("expected results and error cleared, got %+v / %q", state.Results, state.Error)
	}
}

func TestFlowRejectsConcurrentTransition(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fake := &fakeQuizService{
		questionsFn: func(*uuid.UUID, []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
			close(started)
			<-release
			return tenQuestions(), nil, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for i := 0; i < 4; i++ {
		state = answerThenNext(t, svc, state.FlowID, "v")
	}
	if _, err := svc.SubmitAnswer(state.FlowID, "v"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	done := make(chan response_models.FlowState, 1)
	go func() {
		s, _ := svc.GoNext(context.Background(), state.FlowID)
		done <- s
	}()

	<-started
	if _, err := svc.GoNext(context.Background(), state.FlowID); !errors.Is(err, utils.ErrTransitionInFlight) {
		t.Fatalf("expected ErrTransitionInFlight, got %v", err)
	}

	// The state is observable mid-transition.
	mid, err := svc.Get(state.FlowID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if mid.Phase != PhaseLoadingPhase2 {
		t.Fatalf("expected loading-phase2 mid-transition, got %s", mid.Phase)
	}
	if mid.TotalQuestions != 5 {
		t.Fatalf("expected phase1 total of 5 while loading phase2, got %d", mid.TotalQuestions)
	}

	close(release)
	final := <-done
	if final.Phase != PhasePhase2 {
		t.Fatalf("expected phase2 after the blocked transition finished, got %s", final.Phase)
	}
}

func TestFlowRejectsMutationsDuringTransition(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fake := &fakeQuizService{
		questionsFn: func(*uuid.UUID, []request_models.QuizAnswer) ([]response_models.QuizQuestion, *string, error) {
			close(started)
			<-release
			return tenQuestions(), nil, nil
		},
	}
	svc := newFlowService(fake)
	state := svc.Start(nil)

	for i := 0; i < 4; i++ {
		state = answerThenNext(t, svc, state.FlowID, "v")
	}
	if _, err := svc.SubmitAnswer(state.FlowID, "v"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	done := make(chan response_models.FlowState, 1)
	go func() {
		s, _ := svc.GoNext(context.Background(), state.FlowID)
		done <- s
	}()

	<-started
	if _, err := svc.Retake(state.FlowID); !errors.Is(err, utils.ErrTransitionInFlight) {
		t.Fatalf("Retake mid-transition: expected ErrTransitionInFlight, got %v", err)
	}
	if _, err := svc.SubmitAnswer(state.FlowID, "other"); !errors.Is(err, utils.ErrTransitionInFlight) {
		t.Fatalf("SubmitAnswer mid-transition: expected ErrTransitionInFlight, got %v", err)
	}
	if _, err := svc.GoBack(state.FlowID); !errors.Is(err, utils.ErrTransitionInFlight) {
		t.Fatalf("GoBack mid-transition: expected ErrTransitionInFlight, got %v", err)
	}

	close(release)
	final := <-done
	if final.Phase != PhasePhase2 || final.CurrentStep != 5 {
		t.Fatalf("expected phase2 step 5 after the transition, got %s step %d", final.Phase, final.CurrentStep)
	}

	// The rejected retake did not run, so a retake afterwards starts clean.
	state, err := svc.Retake(state.FlowID)
	if err != nil {
		t.Fatalf("Retake: %v", err)
	}
	if state.Phase != PhasePhase1 || state.CurrentStep != 0 || state.CanProceed {
		t.Fatalf("expected a fresh phase1 run after retake, got %s step %d canProceed=%v", state.Phase, state.CurrentStep, state.CanProceed)
	}
}

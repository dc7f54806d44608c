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

const roadmapSystemPrompt = `You are a career coach. Given a user's career goal and context, you must respond with ONLY a valid JSON array (no markdown, no code fence, no extra text). Each element of the array is an object with exactly these keys:
- title (string): short stage name
- description (string): 2-3 sentences explaining this stage
- timeRange (string): e.g. "1-2 weeks", "2-3 months"
- actions (array of strings): 4-7 concrete action items the user should do in this stage
- resources (array of strings, optional): 0-3 suggested resource types or topics (e.g. "Online course on X", "Practice project Y")

Create 5-7 stages that form a detailed, step-by-step roadmap from the user's current situation to their goal. Be specific and actionable. Order stages chronologically.`

type RoadmapServiceInterface interface {
	Generate(ctx context.Context, accountID *uuid.UUID, req request_models.RoadmapRequest) ([]response_models.RoadmapStage, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.RoadmapSummary, error)
}

type RoadmapService struct {
	completion utils.CompletionClientInterface
	roadmaps   repositories.RoadmapRepository
}

func NewRoadmapService(
	completion utils.CompletionClientInterface,
	roadmaps repositories.RoadmapRepository,
) RoadmapServiceInterface {
	return &RoadmapService{
		completion: completion,
		roadmaps:   roadmaps,
	}
}

func (s *RoadmapService) Generate(
	ctx context.Context,
	accountID *uuid.UUID,
	req request_models.RoadmapRequest,
) ([]response_models.RoadmapStage, error) {
	careerGoal := strings.TrimSpace(req.CareerGoal)
	if careerGoal == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		System:      roadmapSystemPrompt,
		User:        buildRoadmapUserPrompt(careerGoal, req),
		Temperature: 0.4,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := utils.ExtractJSON(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to extract roadmap: %w", err)
	}

	stages := make([]response_models.RoadmapStage, 0, len(items))
	for _, item := range items {
		stages = append(stages, response_models.RoadmapStage{
			Title:       utils.CoerceString(item["title"]),
			Description: utils.CoerceString(item["description"]),
			TimeRange:   utils.CoerceString(item["timeRange"]),
			Actions:     utils.CoerceStrings(item["actions"]),
			Resources:   utils.CoerceStrings(item["resources"]),
		})
	}

	if accountID != nil {
		s.save(ctx, *accountID, careerGoal, stages)
	}

	return stages, nil
}

func (s *RoadmapService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.RoadmapSummary, error) {
	roadmaps, err := s.roadmaps.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.RoadmapSummary, 0, len(roadmaps))
	for _, roadmap := range roadmaps {
		var stages []response_models.RoadmapStage
		if len(roadmap.Stages) > 0 {
			if err := json.Unmarshal(roadmap.Stages, &stages); err != nil {
				log.Printf("[roadmap] malformed stages payload for roadmap %s: %v", roadmap.ID, err)
			}
		}
		summaries = append(summaries, response_models.RoadmapSummary{
			ID:         roadmap.ID.String(),
			CareerGoal: roadmap.CareerGoal,
			CreatedAt:  roadmap.CreatedAt,
			Stages:     stages,
		})
	}
	return summaries, nil
}

// save is best-effort, a failed write never blocks the generated roadmap.
func (s *RoadmapService) save(ctx context.Context, accountID uuid.UUID, careerGoal string, stages []response_models.RoadmapStage) {
	stagesJSON, err := json.Marshal(stages)
	if err != nil {
		log.Printf("[roadmap] failed to serialize stages: %v", err)
		return
	}
	roadmap := &db_models.Roadmap{
		AccountID:  accountID,
		CareerGoal: careerGoal,
		Stages:     datatypes.JSON(stagesJSON),
	}
	if err := s.roadmaps.Create(ctx, roadmap); err != nil {
		log.Printf("[roadmap] failed to save roadmap: %v", err)
	}
}

func buildRoadmapUserPrompt(careerGoal string, req request_models.RoadmapRequest) string {
	return fmt.Sprintf(`Generate a detailed career roadmap as a JSON array of stages.

User inputs:
- Career goal: %s
- Current stage: %s
- Timeline they have in mind: %s
- Current experience/skills: %s
- Interests/constraints: %s

Respond with ONLY the JSON array, no other text.`,
		careerGoal,
		strings.TrimSpace(req.CurrentStage),
		strings.TrimSpace(req.Timeline),
		strings.TrimSpace(req.Experience),
		strings.TrimSpace(req.Interests),
	)
}

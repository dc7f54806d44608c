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

const careerTreeSystemPrompt = `You are an expert career counselor specializing in student career development. Given a student's self-assessment data, you must respond with ONLY a valid JSON object (no markdown, no code fence, no extra text).

The JSON must have this exact structure:
{
  "root": {
    "title": "short label for the starting point (max 5 words)",
    "description": "2-sentence summary of the student's current position and strengths",
    "skills": ["skill1", "skill2", "skill3", "skill4"]
  },
  "branches": [
    {
      "id": "branch-1",
      "title": "Career Path Name (max 4 words)",
      "description": "2-3 sentences describing this career direction and why it suits the student",
      "shortTermAlignment": "1 sentence: how this path achieves their short-term goal",
      "longTermAlignment": "1 sentence: how this path achieves their long-term goal",
      "milestones": [
        {
          "title": "Milestone name (max 5 words)",
          "timeframe": "e.g. 0-3 months, 3-6 months, 6-12 months, 1-2 years",
          "skills": ["skill to gain 1", "skill to gain 2"],
          "actions": ["specific action 1", "specific action 2", "specific action 3"]
        }
      ]
    }
  ]
}

Rules:
- Create exactly 3 branches representing distinct career paths suited to the student's profile
- Each branch must have exactly 4 milestones ordered chronologically
- Be specific, practical, and encouraging
- All text must be concise, no waffle
- Respond with ONLY the JSON object`

// branchColors is cycled over the returned branches so the client palette
// stays stable regardless of what the model emits.
var branchColors = []string{"#2563eb", "#0d9488", "#7c3aed"}

type CareerTreeServiceInterface interface {
	Generate(ctx context.Context, accountID *uuid.UUID, req request_models.CareerTreeRequest) (*response_models.CareerTreeData, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.CareerTreeSummary, error)
}

type CareerTreeService struct {
	completion utils.CompletionClientInterface
	trees      repositories.CareerTreeRepository
}

func NewCareerTreeService(
	completion utils.CompletionClientInterface,
	trees repositories.CareerTreeRepository,
) CareerTreeServiceInterface {
	return &CareerTreeService{
		completion: completion,
		trees:      trees,
	}
}

func (s *CareerTreeService) Generate(
	ctx context.Context,
	accountID *uuid.UUID,
	req request_models.CareerTreeRequest,
) (*response_models.CareerTreeData, error) {
	if strings.TrimSpace(req.Skills) == "" || strings.TrimSpace(req.Passions) == "" {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.ShortTermGoal) == "" || strings.TrimSpace(req.LongTermGoal) == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		System:      careerTreeSystemPrompt,
		User:        buildCareerTreeUserPrompt(req),
		Temperature: 0.5,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, err
	}

	var tree response_models.CareerTreeData
	if err := utils.ExtractJSON(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to extract career tree: %w", err)
	}
	if tree.Root.Title == "" && len(tree.Branches) == 0 {
		return nil, fmt.Errorf("invalid career tree structure")
	}

	for i := range tree.Branches {
		tree.Branches[i].Color = branchColors[i%len(branchColors)]
	}

	if accountID != nil {
		s.save(ctx, *accountID, req, &tree)
	}

	return &tree, nil
}

func (s *CareerTreeService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.CareerTreeSummary, error) {
	trees, err := s.trees.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.CareerTreeSummary, 0, len(trees))
	for _, record := range trees {
		var tree response_models.CareerTreeData
		if len(record.TreeData) > 0 {
			if err := json.Unmarshal(record.TreeData, &tree); err != nil {
				log.Printf("[career-tree] malformed tree payload for record %s: %v", record.ID, err)
			}
		}
		summaries = append(summaries, response_models.CareerTreeSummary{
			ID:        record.ID.String(),
			RootTitle: record.RootTitle,
			CreatedAt: record.CreatedAt,
			Tree:      tree,
		})
	}
	return summaries, nil
}

func (s *CareerTreeService) save(
	ctx context.Context,
	accountID uuid.UUID,
	req request_models.CareerTreeRequest,
	tree *response_models.CareerTreeData,
) {
	formJSON, err := json.Marshal(req)
	if err != nil {
		log.Printf("[career-tree] failed to serialize form input: %v", err)
		return
	}
	treeJSON, err := json.Marshal(tree)
	if err != nil {
		log.Printf("[career-tree] failed to serialize tree: %v", err)
		return
	}
	record := &db_models.CareerTree{
		AccountID: accountID,
		RootTitle: tree.Root.Title,
		FormInput: datatypes.JSON(formJSON),
		TreeData:  datatypes.JSON(treeJSON),
	}
	if err := s.trees.Create(ctx, record); err != nil {
		log.Printf("[career-tree] failed to save career tree: %v", err)
	}
}

func buildCareerTreeUserPrompt(req request_models.CareerTreeRequest) string {
	return fmt.Sprintf(`Generate a career tree for this student:

- Current skills: %s
- Passions & interests: %s
- Target roles they've researched: %s
- Current stage: %s
- Short-term goal (next 6-12 months): %s
- Long-term goal (3-5 years): %s

Respond with ONLY the JSON object, no other text.`,
		strings.TrimSpace(req.Skills),
		strings.TrimSpace(req.Passions),
		strings.TrimSpace(req.TargetRoles),
		strings.TrimSpace(req.CurrentStage),
		strings.TrimSpace(req.ShortTermGoal),
		strings.TrimSpace(req.LongTermGoal),
	)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/pkg/utils"
)

const collegeSystemPrompt = `You are an expert education counselor specializing in Indian colleges and universities. Given a state, field of study, and degree type, you must respond with ONLY a valid JSON array (no markdown, no code fence, no extra text). Each element is an object with exactly these keys:
- name (string): full official name of the college/university
- location (string): city, state
- degree (string): the specific degree program offered (e.g. "B.Tech in Computer Science and Engineering")
- costRange (string): approximate annual fee range in INR (e.g. "₹50,000 – ₹2,00,000/year")
- admissionRate (string): approximate acceptance/admission rate as a percentage (e.g. "15%"), or "Varies" if unknown
- strengths (array of 2-4 strings): key strengths like NAAC rating, NIRF ranking, placements, campus, special programs
- stateRanking (string): ranking within the state (e.g. "#3 in Gujarat", "#12 in Maharashtra"), or "Not ranked" if unknown
- countryRanking (string): NIRF or national ranking in India (e.g. "#45 in India", "NIRF #120"), or "Not ranked" if unknown
- worldRanking (string): QS/THE world ranking if applicable (e.g. "QS #350", "THE #501-600"), or "Not ranked" if the college is not in world rankings

Return as many REAL colleges as you can (aim for 15-20) that actually exist in the specified Indian state and offer the requested program. Be accurate, use real college names and realistic fee ranges. Order by reputation/ranking. If very few colleges match exactly, include nearby or closely related programs. If the user provides a list of colleges to exclude, do NOT include those in your response.`

type CollegeServiceInterface interface {
	Search(ctx context.Context, req request_models.CollegeSearchRequest) ([]response_models.College, error)
}

type CollegeService struct {
	completion utils.CompletionClientInterface
}

func NewCollegeService(completion utils.CompletionClientInterface) CollegeServiceInterface {
	return &CollegeService{completion: completion}
}

// Search returns ErrNoCollegesFound when the model output yields no usable
// entries; an empty result is a client-visible condition, not a transport
// failure.
func (s *CollegeService) Search(ctx context.Context, req request_models.CollegeSearchRequest) ([]response_models.College, error) {
	if req.State == "" || req.Field == "" || req.DegreeType == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		System:      collegeSystemPrompt,
		User:        buildCollegeUserPrompt(req),
		Temperature: 0.3,
		MaxTokens:   8000,
	})
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := utils.ExtractJSON(raw, &items); err != nil || len(items) == 0 {
		return nil, utils.ErrNoCollegesFound
	}

	// Ids continue past the excluded set so a follow-up "load more" page
	// never collides with ids already shown.
	offset := len(req.Exclude)
	colleges := make([]response_models.College, 0, len(items))
	for i, item := range items {
		colleges = append(colleges, response_models.College{
			ID:             fmt.Sprintf("college-%d", offset+i+1),
			Name:           utils.CoerceString(item["name"]),
			Location:       utils.CoerceString(item["location"]),
			Degree:         utils.CoerceString(item["degree"]),
			CostRange:      utils.CoerceString(item["costRange"]),
			AdmissionRate:  utils.CoerceString(item["admissionRate"]),
			Strengths:      utils.CoerceStrings(item["strengths"]),
			StateRanking:   utils.CoerceString(item["stateRanking"]),
			CountryRanking: utils.CoerceString(item["countryRanking"]),
			WorldRanking:   utils.CoerceString(item["worldRanking"]),
		})
	}
	return colleges, nil
}

func buildCollegeUserPrompt(req request_models.CollegeSearchRequest) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Find colleges in %s, India that offer a %s degree in %s.", req.State, req.DegreeType, req.Field)

	if len(req.Exclude) > 0 {
		prompt.WriteString("\n\nDo NOT include these colleges (already shown):")
		for _, name := range req.Exclude {
			fmt.Fprintf(&prompt, "\n- %s", name)
		}
		prompt.WriteString("\n\nReturn 10-15 DIFFERENT colleges not in the above list.")
	}

	prompt.WriteString("\n\nReturn ONLY the JSON array, no other text.")
	return prompt.String()
}

package services

import "pathwise/internal/models/response_models"

const (
	totalPhase1Questions = 5
	totalPhase2Questions = 10
	totalQuizQuestions   = totalPhase1Questions + totalPhase2Questions
)

// phase1Questions is the fixed opening round, identical for every user.
// Phase-2 questions are generated per user from these answers.
var phase1Questions = []response_models.QuizQuestion{
	{
		Question: "What is your current education level?",
		Type:     "single",
		Options: []response_models.QuizOption{
			{Value: "high_school", Label: "High School"},
			{Value: "bachelors", Label: "Bachelor's Degree"},
			{Value: "masters", Label: "Master's Degree"},
			{Value: "phd", Label: "PhD"},
			{Value: "other", Label: "Other / Self-taught"},
		},
	},
	{
		Question: "Which work style appeals to you most?",
		Type:     "single",
		Options: []response_models.QuizOption{
			{Value: "remote", Label: "Remote - work from anywhere"},
			{Value: "office", Label: "Office - structured environment"},
			{Value: "hybrid", Label: "Hybrid - mix of both"},
			{Value: "fieldwork", Label: "Fieldwork - hands-on in the real world"},
		},
	},
	{
		Question: "Which domain interests you the most?",
		Type:     "single",
		Options: []response_models.QuizOption{
			{Value: "technology", Label: "Technology & Engineering"},
			{Value: "business", Label: "Business & Finance"},
			{Value: "healthcare", Label: "Healthcare & Life Sciences"},
			{Value: "creative", Label: "Creative Arts & Design"},
			{Value: "science", Label: "Science & Research"},
			{Value: "education", Label: "Education & Social Impact"},
		},
	},
	{
		Question: "How do you prefer to solve problems?",
		Type:     "single",
		Options: []response_models.QuizOption{
			{Value: "analytical", Label: "Analytically with data and logic"},
			{Value: "creative", Label: "Creatively with new ideas"},
			{Value: "collaborative", Label: "Collaboratively with people"},
			{Value: "hands_on", Label: "Hands-on by building things"},
		},
	},
	{
		Question: "What matters most to you in a career?",
		Type:     "single",
		Options: []response_models.QuizOption{
			{Value: "salary", Label: "High salary and financial growth"},
			{Value: "balance", Label: "Work-life balance"},
			{Value: "impact", Label: "Social impact and meaning"},
			{Value: "learning", Label: "Continuous learning and challenges"},
			{Value: "security", Label: "Job security and stability"},
		},
	},
}

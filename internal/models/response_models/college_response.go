package response_models

type College struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Degree         string   `json:"degree"`
	CostRange      string   `json:"costRange"`
	AdmissionRate  string   `json:"admissionRate"`
	Strengths      []string `json:"strengths"`
	StateRanking   string   `json:"stateRanking"`
	CountryRanking string   `json:"countryRanking"`
	WorldRanking   string   `json:"worldRanking"`
}

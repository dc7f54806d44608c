package request_models

type CollegeSearchRequest struct {
	State      string   `json:"state"`
	Field      string   `json:"field"`
	DegreeType string   `json:"degreeType"`
	// Exclude lists college names already shown so pagination returns
	// different institutions.
	Exclude []string `json:"exclude"`
}

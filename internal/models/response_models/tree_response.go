package response_models

type CareerMilestone struct {
	Title     string   `json:"title"`
	Timeframe string   `json:"timeframe"`
	Skills    []string `json:"skills"`
	Actions   []string `json:"actions"`
}

type CareerBranch struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Color             string            `json:"color"`
	Description       string            `json:"description"`
	ShortTermAlignment string           `json:"shortTermAlignment"`
	LongTermAlignment string            `json:"longTermAlignment"`
	Milestones        []CareerMilestone `json:"milestones"`
}

type CareerTreeRoot struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type CareerTreeData struct {
	Root     CareerTreeRoot `json:"root"`
	Branches []CareerBranch `json:"branches"`
}

type CareerTreeSummary struct {
	ID        string         `json:"id"`
	RootTitle string         `json:"rootTitle"`
	CreatedAt int64          `json:"createdAt"`
	Tree      CareerTreeData `json:"tree"`
}

package response_models

type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Role      string   `json:"role"`
	Interests []string `json:"interests"`
	CreatedAt int64    `json:"createdAt"`
}

type LoginResult struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

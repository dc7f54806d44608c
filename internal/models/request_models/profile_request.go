package request_models

// UpdateProfileRequest uses pointers so absent fields are left untouched
// while empty strings clear the stored value.
type UpdateProfileRequest struct {
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Role      *string   `json:"role"`
	Interests *[]string `json:"interests"`
}

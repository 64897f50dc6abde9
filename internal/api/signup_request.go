package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	DOB      string `json:"dob" validate:"required" example:"1948-06-02"`
	Role     string `json:"role" validate:"required" example:"family"`
}

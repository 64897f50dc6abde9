package api

// LoginUser is the sanitized user record returned on a successful login.
// It never carries the stored password.
// swagger:model api.LoginUser
type LoginUser struct {
	ID    string `json:"id" example:"6650f9a2c4e8d1a2b3c4d5e6"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"family"`
	DOB   string `json:"dob" example:"1948-06-02"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message string    `json:"message" example:"Login successful!"`
	User    LoginUser `json:"user"`
}

package api

// swagger:model api.CreateServiceRequestRequest
type CreateServiceRequestRequest struct {
	UserID       string  `json:"userId" validate:"required" example:"6650f9a2c4e8d1a2b3c4d5e6"`
	UserName     string  `json:"userName" validate:"required" example:"Alice"`
	UserEmail    string  `json:"userEmail" validate:"required" example:"alice@example.com"`
	ServiceType  string  `json:"serviceType" validate:"required" example:"companionship"`
	Requirements string  `json:"requirements" validate:"required" example:"Two visits per week"`
	Cost         float64 `json:"cost" validate:"required" example:"45.5"`
	Status       string  `json:"status" example:"pending"`
	CreatedAt    string  `json:"createdAt" validate:"required" example:"2026-08-28T10:15:00"`
}

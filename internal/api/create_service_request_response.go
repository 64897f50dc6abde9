package api

// swagger:model api.CreateServiceRequestResponse
type CreateServiceRequestResponse struct {
	Message   string `json:"message" example:"Service request created successfully!"`
	RequestID string `json:"requestId" example:"6650f9a2c4e8d1a2b3c4d5e6"`
}

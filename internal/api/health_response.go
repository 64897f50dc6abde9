package api

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Service is running"`
}

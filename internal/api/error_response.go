package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail" example:"Service request not found"`
}

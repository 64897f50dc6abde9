package api

// ServiceRequestResponse mirrors a stored service request with the store id
// surfaced as a plain hex string.
// swagger:model api.ServiceRequestResponse
type ServiceRequestResponse struct {
	ID             string  `json:"id" example:"6650f9a2c4e8d1a2b3c4d5e6"`
	UserID         string  `json:"userId" example:"6650f9a2c4e8d1a2b3c4d5e6"`
	UserName       string  `json:"userName" example:"Alice"`
	UserEmail      string  `json:"userEmail" example:"alice@example.com"`
	ServiceType    string  `json:"serviceType" example:"companionship"`
	Requirements   string  `json:"requirements" example:"Two visits per week"`
	Cost           float64 `json:"cost" example:"45.5"`
	Status         string  `json:"status" example:"pending"`
	CreatedAt      string  `json:"createdAt" example:"2026-08-28T10:15:00"`
	UpdatedAt      string  `json:"updatedAt" example:"2026-08-28T10:15:02Z"`
	CaregiverID    string  `json:"caregiverId,omitempty"`
	CaregiverName  string  `json:"caregiverName,omitempty"`
	CaregiverEmail string  `json:"caregiverEmail,omitempty"`
	ProcessedAt    string  `json:"processedAt,omitempty"`
}

// swagger:model api.PendingRequestsResponse
type PendingRequestsResponse struct {
	Requests []ServiceRequestResponse `json:"requests"`
}

package api

// swagger:model api.RequestActionRequest
type RequestActionRequest struct {
	CaregiverID    string `json:"caregiverId" validate:"required" example:"6650fa11c4e8d1a2b3c4d5e7"`
	CaregiverName  string `json:"caregiverName" validate:"required" example:"Bob"`
	CaregiverEmail string `json:"caregiverEmail" validate:"required" example:"bob@example.com"`
}

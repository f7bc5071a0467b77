// File: internal/api/signup_request.go
package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string  `json:"password" validate:"required,min=8,max=128" example:"Secret123!"`
	FullName string  `json:"full_name" validate:"required" example:"Alice Smith"`
	RiotID   *string `json:"riot_id,omitempty" example:"Alice#EUW"`
	Region   *string `json:"region,omitempty" example:"EUW"`
}

package dto

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string          `json:"token"`
	Operator *OperatorOutput `json:"operator"`
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// OperatorOutput represents operator data in API responses
type OperatorOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

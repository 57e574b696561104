package dtos

// RegisterRequest creates an account plus its profile in one step.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`

	GitHub    string `json:"github" validate:"max=100"`
	LinkedIn  string `json:"linkedin" validate:"max=100"`
	Portfolio string `json:"portfolio" validate:"omitempty,url,max=200"`
	Cellphone string `json:"cellphone" validate:"max=20"`
}

// ProfileUpdateRequest overwrites only the fields that are present.
type ProfileUpdateRequest struct {
	GitHub    *string `json:"github" validate:"omitempty,max=100"`
	LinkedIn  *string `json:"linkedin" validate:"omitempty,max=100"`
	Portfolio *string `json:"portfolio" validate:"omitempty,url,max=200"`
	Cellphone *string `json:"cellphone" validate:"omitempty,max=20"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

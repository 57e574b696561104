package dtos

// ContactRequest mirrors the contact form: name and subject are capped at
// 100 characters to match the schema, the message is unbounded text.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Subject string `json:"subject" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required"`

	CaptchaToken string `json:"captcha_token"`
}

package dtos

// JobSubmissionRequest is the payload for submitting a new job posting.
// CaptchaToken is checked before anything is validated or persisted.
type JobSubmissionRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Workplace   string `json:"workplace" validate:"max=200"`
	Description string `json:"description" validate:"required"`
	SalaryRange string `json:"salary_range" validate:"max=100"`
	ApplyEmail  string `json:"apply_email" validate:"required,email"`

	CaptchaToken string `json:"captcha_token"`
}

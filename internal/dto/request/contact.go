package request

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
	// Honeypot field: real visitors leave it blank.
	Phone string `json:"phone,omitempty"`
}

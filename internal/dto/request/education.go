package request

type EducationTourRequest struct {
	School    string `json:"school" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Date      string `json:"date" validate:"required"`
	GroupSize int    `json:"group_size" validate:"required,min=1"`
	AgeRange  string `json:"age_range,omitempty"`
	Mobility  string `json:"mobility,omitempty"`
	Allergies string `json:"allergies,omitempty"`
	Behaviour string `json:"behaviour,omitempty"`
	Length    string `json:"length,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

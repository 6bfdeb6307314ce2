package response

import (
	"time"

	"riget-zoo/internal/data/entity"
)

type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ContactToResponse(c *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func ContactsToResponse(contacts []*entity.Contact) []*ContactResponse {
	result := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		result[i] = ContactToResponse(c)
	}
	return result
}

type EducationRequestResponse struct {
	ID        int64     `json:"id"`
	School    string    `json:"school"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Date      string    `json:"date"`
	GroupSize int       `json:"group_size"`
	AgeRange  string    `json:"age_range,omitempty"`
	Mobility  string    `json:"mobility,omitempty"`
	Allergies string    `json:"allergies,omitempty"`
	Behaviour string    `json:"behaviour,omitempty"`
	Length    string    `json:"length,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func EducationRequestToResponse(r *entity.EducationRequest) *EducationRequestResponse {
	return &EducationRequestResponse{
		ID:        r.ID,
		School:    r.School,
		Contact:   r.Contact,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.TourDate.Format("2006-01-02"),
		GroupSize: r.GroupSize,
		AgeRange:  r.AgeRange,
		Mobility:  r.Mobility,
		Allergies: r.Allergies,
		Behaviour: r.Behaviour,
		Length:    r.Length,
		Notes:     r.Notes,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func EducationRequestsToResponse(rows []*entity.EducationRequest) []*EducationRequestResponse {
	result := make([]*EducationRequestResponse, len(rows))
	for i, r := range rows {
		result[i] = EducationRequestToResponse(r)
	}
	return result
}

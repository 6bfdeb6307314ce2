package entity

import (
	"time"
)

type EducationRequestStatus string

const (
	EducationRequestStatusNew EducationRequestStatus = "new"
)

// EducationRequest is a school tour enquiry submitted through the education
// pages.
type EducationRequest struct {
	ID        int64                  `db:"id"`
	School    string                 `db:"school"`
	Contact   string                 `db:"contact"`
	Email     string                 `db:"email"`
	Phone     string                 `db:"phone"`
	TourDate  time.Time              `db:"tour_date"`
	GroupSize int                    `db:"group_size"`
	AgeRange  string                 `db:"age_range"`
	Mobility  string                 `db:"mobility"`
	Allergies string                 `db:"allergies"`
	Behaviour string                 `db:"behaviour"`
	Length    string                 `db:"length"`
	Notes     string                 `db:"notes"`
	Status    EducationRequestStatus `db:"status"`
	CreatedAt time.Time              `db:"created_at"`
}

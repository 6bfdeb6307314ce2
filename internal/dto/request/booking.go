package request

type CreateBookingRequest struct {
	Type  string `json:"type" validate:"required,oneof=hotel tickets"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Hotel fields
	Checkin string `json:"checkin,omitempty"`
	Nights  int    `json:"nights,omitempty"`
	Room    string `json:"room,omitempty"`

	// Ticket fields
	TicketDate string `json:"ticket_date,omitempty"`
	Tickets    int    `json:"tickets,omitempty"`
}

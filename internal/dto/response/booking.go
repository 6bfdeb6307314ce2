package response

import (
	"time"

	"riget-zoo/internal/data/entity"
)

type BookingResponse struct {
	ID                    int64                `json:"id"`
	Type                  entity.BookingType   `json:"type"`
	UserID                *int64               `json:"user_id,omitempty"`
	Name                  string               `json:"name"`
	Email                 string               `json:"email"`
	Checkin               string               `json:"checkin,omitempty"`
	Nights                int                  `json:"nights,omitempty"`
	Room                  entity.RoomType      `json:"room,omitempty"`
	TicketDate            string               `json:"ticket_date,omitempty"`
	Tickets               int                  `json:"tickets,omitempty"`
	UnitPrice             float64              `json:"unit_price"`
	TotalPrice            float64              `json:"total_price"`
	Status                entity.BookingStatus `json:"status"`
	LoyaltyTier           entity.LoyaltyTier   `json:"loyalty_tier,omitempty"`
	LoyaltyDiscountPct    float64              `json:"loyalty_discount_pct,omitempty"`
	LoyaltyDiscountAmount float64              `json:"loyalty_discount_amount,omitempty"`
	LoyaltyPerks          string               `json:"loyalty_perks,omitempty"`
	CancelledAt           *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt             time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                    b.ID,
		Type:                  b.Type,
		UserID:                b.UserID,
		Name:                  b.Name,
		Email:                 b.Email,
		Nights:                b.Nights,
		Room:                  b.Room,
		Tickets:               b.Tickets,
		UnitPrice:             b.UnitPrice,
		TotalPrice:            b.TotalPrice,
		Status:                b.Status,
		LoyaltyTier:           b.LoyaltyTier,
		LoyaltyDiscountPct:    b.LoyaltyDiscountPct,
		LoyaltyDiscountAmount: b.LoyaltyDiscountAmount,
		LoyaltyPerks:          b.LoyaltyPerks,
		CancelledAt:           b.CancelledAt,
		CreatedAt:             b.CreatedAt,
	}
	if b.Checkin != nil {
		resp.Checkin = b.Checkin.Format("2006-01-02")
	}
	if b.TicketDate != nil {
		resp.TicketDate = b.TicketDate.Format("2006-01-02")
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = BookingToResponse(b)
	}
	return result
}

package entity

import (
	"time"
)

type BookingType string

const (
	BookingTypeHotel   BookingType = "hotel"
	BookingTypeTickets BookingType = "tickets"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

type LoyaltyTier string

const (
	LoyaltyTierNone LoyaltyTier = ""
	LoyaltyTier6m   LoyaltyTier = "6m"
	LoyaltyTier12m  LoyaltyTier = "12m"
	LoyaltyTier24m  LoyaltyTier = "24m"
)

// Booking is a persisted ticket purchase or hotel reservation. UserID is nil
// for guest bookings, which are identified by email alone. Prices are stored
// post-discount; CreatedAt anchors listing order and the loyalty lookback.
type Booking struct {
	ID                    int64         `db:"id"`
	Type                  BookingType   `db:"type"`
	UserID                *int64        `db:"user_id"`
	Name                  string        `db:"name"`
	Email                 string        `db:"email"`
	Checkin               *time.Time    `db:"checkin"`
	Nights                int           `db:"nights"`
	Room                  RoomType      `db:"room"`
	TicketDate            *time.Time    `db:"ticket_date"`
	Tickets               int           `db:"tickets"`
	UnitPrice             float64       `db:"unit_price"`
	TotalPrice            float64       `db:"total_price"`
	Meta                  string        `db:"meta"`
	Status                BookingStatus `db:"status"`
	CancelledAt           *time.Time    `db:"cancelled_at"`
	CreatedAt             time.Time     `db:"created_at"`
	LoyaltyTier           LoyaltyTier   `db:"loyalty_tier"`
	LoyaltyDiscountPct    float64       `db:"loyalty_discount_pct"`
	LoyaltyDiscountAmount float64       `db:"loyalty_discount_amount"`
	LoyaltyPerks          string        `db:"loyalty_perks"`
}

// Quantity is the multiplier between unit and total price: nights for hotel
// bookings, ticket count for ticket bookings.
func (b *Booking) Quantity() int {
	if b.Type == BookingTypeHotel {
		return b.Nights
	}
	return b.Tickets
}

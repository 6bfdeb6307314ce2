package usecase

import (
	"math"

	"riget-zoo/internal/data/entity"
)

// PricingConfig is a typed snapshot of the pricing and loyalty settings,
// loaded once per request from the settings store.
type PricingConfig struct {
	TicketPrice float64
	HotelSingle float64
	HotelDouble float64
	HotelSuite  float64

	Loyalty6mPct   float64
	Loyalty12mPct  float64
	Loyalty24mPct  float64
	Loyalty12mPerk string
	Loyalty24mPerk string
}

// RoomPrice resolves the unit price for a room type. An unknown room falls
// back to the single price; the caller still flags the room as invalid.
func (c *PricingConfig) RoomPrice(room entity.RoomType) float64 {
	switch room {
	case entity.RoomTypeDouble:
		return c.HotelDouble
	case entity.RoomTypeSuite:
		return c.HotelSuite
	default:
		return c.HotelSingle
	}
}

// PriceHotel derives unit and total price for a hotel stay. The total is not
// rounded here; rounding happens after the loyalty discount.
func PriceHotel(cfg *PricingConfig, room entity.RoomType, nights int) (float64, float64, error) {
	unit := cfg.RoomPrice(room)
	if unit <= 0 {
		key := entity.SettingHotelSingle
		switch room {
		case entity.RoomTypeDouble:
			key = entity.SettingHotelDouble
		case entity.RoomTypeSuite:
			key = entity.SettingHotelSuite
		}
		return 0, 0, &ConfigurationError{Key: key, Value: unit}
	}
	return unit, unit * float64(nights), nil
}

// PriceTickets derives unit and total price for a ticket purchase.
func PriceTickets(cfg *PricingConfig, count int) (float64, float64, error) {
	unit := cfg.TicketPrice
	if unit <= 0 {
		return 0, 0, &ConfigurationError{Key: entity.SettingTicketPrice, Value: unit}
	}
	return unit, unit * float64(count), nil
}

// ApplyDiscount reduces the total by pct percent and the unit price
// proportionally. The discount amount is rounded to 2 decimals first, then
// the discounted total and unit price are each rounded to 2 decimals.
func ApplyDiscount(unit, total float64, quantity int, pct float64) (float64, float64, float64) {
	if pct <= 0 || quantity <= 0 {
		return unit, total, 0
	}
	amount := Round2(total * pct / 100.0)
	total = Round2(total - amount)
	unit = Round2(unit - amount/float64(quantity))
	return unit, total, amount
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

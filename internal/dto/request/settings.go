package request

// UpdateSettingsRequest carries the admin pricing form. Nil fields are left
// untouched; provided ones are validated together and saved all-or-nothing.
type UpdateSettingsRequest struct {
	TicketPrice    *float64 `json:"ticket_price,omitempty"`
	HotelSingle    *float64 `json:"hotel_single,omitempty"`
	HotelDouble    *float64 `json:"hotel_double,omitempty"`
	HotelSuite     *float64 `json:"hotel_suite,omitempty"`
	Loyalty6mPct   *float64 `json:"loyalty_6m_discount_pct,omitempty"`
	Loyalty12mPct  *float64 `json:"loyalty_12m_discount_pct,omitempty"`
	Loyalty24mPct  *float64 `json:"loyalty_24m_discount_pct,omitempty"`
	Loyalty12mPerk *string  `json:"loyalty_12m_perk,omitempty"`
	Loyalty24mPerk *string  `json:"loyalty_24m_perk,omitempty"`
}

package response

type SettingsResponse struct {
	TicketPrice    float64 `json:"ticket_price"`
	HotelSingle    float64 `json:"hotel_single"`
	HotelDouble    float64 `json:"hotel_double"`
	HotelSuite     float64 `json:"hotel_suite"`
	Loyalty6mPct   float64 `json:"loyalty_6m_discount_pct"`
	Loyalty12mPct  float64 `json:"loyalty_12m_discount_pct"`
	Loyalty24mPct  float64 `json:"loyalty_24m_discount_pct"`
	Loyalty12mPerk string  `json:"loyalty_12m_perk"`
	Loyalty24mPerk string  `json:"loyalty_24m_perk"`
}

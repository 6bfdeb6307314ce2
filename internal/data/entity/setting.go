package entity

// Setting is an admin-writable key/value pair. Values are stored as strings;
// numeric settings are parsed by callers with a fallback default.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Settings keys and their documented defaults.
const (
	SettingTicketPrice    = "ticket_price"
	SettingHotelSingle    = "hotel_single"
	SettingHotelDouble    = "hotel_double"
	SettingHotelSuite     = "hotel_suite"
	SettingLoyalty6mPct   = "loyalty_6m_discount_pct"
	SettingLoyalty12mPct  = "loyalty_12m_discount_pct"
	SettingLoyalty24mPct  = "loyalty_24m_discount_pct"
	SettingLoyalty12mPerk = "loyalty_12m_perk"
	SettingLoyalty24mPerk = "loyalty_24m_perk"
)

const (
	DefaultTicketPrice    = 10.0
	DefaultHotelSingle    = 50.0
	DefaultHotelDouble    = 90.0
	DefaultHotelSuite     = 150.0
	DefaultLoyalty6mPct   = 10.0
	DefaultLoyalty12mPct  = 5.0
	DefaultLoyalty24mPct  = 2.0
	DefaultLoyalty12mPerk = "Free breakfast for hotel bookings"
	DefaultLoyalty24mPerk = "Free breakfast and priority parking"
)

package entity

// WeeklyRevenue is one aggregated row of the admin weekly revenue report,
// active bookings only.
type WeeklyRevenue struct {
	YearWeek       string  `db:"yearweek"`
	Revenue        float64 `db:"revenue"`
	Bookings       int64   `db:"bookings"`
	TicketsRevenue float64 `db:"tickets_revenue"`
	HotelRevenue   float64 `db:"hotel_revenue"`
}

// DailyRevenue aggregates bookings by creation date.
type DailyRevenue struct {
	Day      string  `db:"day"`
	Revenue  float64 `db:"revenue"`
	Bookings int64   `db:"bookings_count"`
}

// DailyTickets aggregates tickets sold by visit date rather than purchase
// date.
type DailyTickets struct {
	Day     string `db:"day"`
	Tickets int64  `db:"tickets_sold"`
}

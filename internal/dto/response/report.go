package response

import (
	"riget-zoo/internal/data/entity"
)

type WeeklyRevenueResponse struct {
	YearWeek       string  `json:"yearweek"`
	Revenue        float64 `json:"revenue"`
	Bookings       int64   `json:"bookings"`
	TicketsRevenue float64 `json:"tickets_revenue"`
	HotelRevenue   float64 `json:"hotel_revenue"`
}

// DailyRevenueResponse mirrors the admin revenue chart feed: parallel arrays
// keyed by day label, zero-filled for days with no rows.
type DailyRevenueResponse struct {
	Labels   []string  `json:"labels"`
	Revenue  []float64 `json:"revenue"`
	Tickets  []int64   `json:"tickets"`
	Bookings []int64   `json:"bookings"`
}

func WeeklyRevenueToResponse(rows []*entity.WeeklyRevenue) []WeeklyRevenueResponse {
	result := make([]WeeklyRevenueResponse, len(rows))
	for i, row := range rows {
		result[i] = WeeklyRevenueResponse{
			YearWeek:       row.YearWeek,
			Revenue:        row.Revenue,
			Bookings:       row.Bookings,
			TicketsRevenue: row.TicketsRevenue,
			HotelRevenue:   row.HotelRevenue,
		}
	}
	return result
}

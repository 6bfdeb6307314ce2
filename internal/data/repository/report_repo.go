package repository

import (
	"context"
	"fmt"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/pkg/database"

	"go.uber.org/zap"
)

type ReportRepository interface {
	// WeeklyRevenue aggregates active bookings into the last N ISO weeks,
	// newest first, split into ticket and hotel revenue.
	WeeklyRevenue(ctx context.Context, weeks int) ([]*entity.WeeklyRevenue, error)
	// DailyRevenue aggregates revenue and booking counts by creation date.
	DailyRevenue(ctx context.Context, start, end time.Time) ([]*entity.DailyRevenue, error)
	// DailyTickets aggregates tickets sold by visit date.
	DailyTickets(ctx context.Context, start, end time.Time) ([]*entity.DailyTickets, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) WeeklyRevenue(ctx context.Context, weeks int) ([]*entity.WeeklyRevenue, error) {
	query := `
		SELECT to_char(created_at, 'IYYY-IW') AS yearweek,
			SUM(COALESCE(total_price, 0)) AS revenue,
			COUNT(*) AS bookings,
			SUM(CASE WHEN type = 'tickets' THEN COALESCE(total_price, 0) ELSE 0 END) AS tickets_revenue,
			SUM(CASE WHEN type = 'hotel' THEN COALESCE(total_price, 0) ELSE 0 END) AS hotel_revenue
		FROM bookings
		WHERE status = 'active'
		GROUP BY yearweek
		ORDER BY yearweek DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, weeks)
	if err != nil {
		r.log.Error("Failed to query weekly revenue", zap.Error(err))
		return nil, fmt.Errorf("weekly revenue: %w", err)
	}
	defer rows.Close()

	var result []*entity.WeeklyRevenue
	for rows.Next() {
		var row entity.WeeklyRevenue
		if err := rows.Scan(&row.YearWeek, &row.Revenue, &row.Bookings, &row.TicketsRevenue, &row.HotelRevenue); err != nil {
			return nil, fmt.Errorf("scan weekly revenue row: %w", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly revenue rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) DailyRevenue(ctx context.Context, start, end time.Time) ([]*entity.DailyRevenue, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day,
			SUM(COALESCE(total_price, 0)) AS revenue,
			COUNT(*) AS bookings_count
		FROM bookings
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to query daily revenue", zap.Error(err))
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	defer rows.Close()

	var result []*entity.DailyRevenue
	for rows.Next() {
		var row entity.DailyRevenue
		if err := rows.Scan(&row.Day, &row.Revenue, &row.Bookings); err != nil {
			return nil, fmt.Errorf("scan daily revenue row: %w", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily revenue rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) DailyTickets(ctx context.Context, start, end time.Time) ([]*entity.DailyTickets, error) {
	query := `
		SELECT to_char(ticket_date, 'YYYY-MM-DD') AS day,
			SUM(COALESCE(tickets, 0)) AS tickets_sold
		FROM bookings
		WHERE type = 'tickets' AND ticket_date IS NOT NULL
			AND ticket_date >= $1 AND ticket_date <= $2
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to query daily tickets", zap.Error(err))
		return nil, fmt.Errorf("daily tickets: %w", err)
	}
	defer rows.Close()

	var result []*entity.DailyTickets
	for rows.Next() {
		var row entity.DailyTickets
		if err := rows.Scan(&row.Day, &row.Tickets); err != nil {
			return nil, fmt.Errorf("scan daily tickets row: %w", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily ticket rows: %w", err)
	}

	return result, nil
}

package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/response"

	"go.uber.org/zap"
)

// Reporting reads the bookings table directly; it relies on the ledger
// keeping status, created_at, type, total_price, ticket_date and tickets
// correctly populated.
type ReportService interface {
	WeeklyRevenue(ctx context.Context) ([]response.WeeklyRevenueResponse, error)
	// DailyRevenue builds a zero-filled per-day series over the last days
	// days, capped at 365.
	DailyRevenue(ctx context.Context, days int) (*response.DailyRevenueResponse, error)
	// ExportBookingsCSV streams all bookings as CSV, optionally filtered by
	// type and status.
	ExportBookingsCSV(ctx context.Context, w io.Writer, bookingType, status string) error
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
}

const maxReportDays = 365

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
		now:  time.Now,
	}
}

func (s *reportService) WeeklyRevenue(ctx context.Context) ([]response.WeeklyRevenueResponse, error) {
	rows, err := s.repo.Report.WeeklyRevenue(ctx, 12)
	if err != nil {
		return nil, fmt.Errorf("weekly revenue: %w", err)
	}
	return response.WeeklyRevenueToResponse(rows), nil
}

func (s *reportService) DailyRevenue(ctx context.Context, days int) (*response.DailyRevenueResponse, error) {
	if days < 1 {
		days = 30
	}
	if days > maxReportDays {
		return nil, &ValidationError{Rules: []string{"Days parameter too large"}}
	}

	end := s.now()
	start := end.AddDate(0, 0, -days)
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	revenueRows, err := s.repo.Report.DailyRevenue(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	ticketRows, err := s.repo.Report.DailyTickets(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("daily tickets: %w", err)
	}

	type bin struct {
		revenue  float64
		tickets  int64
		bookings int64
	}
	bins := make(map[string]*bin)
	for _, row := range revenueRows {
		bins[row.Day] = &bin{revenue: row.Revenue, bookings: row.Bookings}
	}
	for _, row := range ticketRows {
		b, ok := bins[row.Day]
		if !ok {
			b = &bin{}
			bins[row.Day] = b
		}
		b.tickets = row.Tickets
	}

	// One label per day in range, zero-filled where nothing was sold.
	result := &response.DailyRevenueResponse{}
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		label := d.Format("2006-01-02")
		result.Labels = append(result.Labels, label)
		if b, ok := bins[label]; ok {
			result.Revenue = append(result.Revenue, b.revenue)
			result.Tickets = append(result.Tickets, b.tickets)
			result.Bookings = append(result.Bookings, b.bookings)
		} else {
			result.Revenue = append(result.Revenue, 0)
			result.Tickets = append(result.Tickets, 0)
			result.Bookings = append(result.Bookings, 0)
		}
	}

	return result, nil
}

func (s *reportService) ExportBookingsCSV(ctx context.Context, w io.Writer, bookingType, status string) error {
	bookings, err := s.repo.Booking.ListAll(ctx, bookingType, status)
	if err != nil {
		return fmt.Errorf("load bookings for export: %w", err)
	}

	writer := csv.NewWriter(w)
	header := []string{
		"id", "type", "user_id", "name", "email", "checkin", "nights", "room",
		"ticket_date", "tickets", "unit_price", "total_price", "loyalty_tier",
		"loyalty_discount_pct", "loyalty_discount_amount", "loyalty_perks",
		"meta", "status", "cancelled_at", "created_at",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range bookings {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			string(b.Type),
			formatNullableID(b.UserID),
			b.Name,
			b.Email,
			formatNullableDate(b.Checkin),
			strconv.Itoa(b.Nights),
			string(b.Room),
			formatNullableDate(b.TicketDate),
			strconv.Itoa(b.Tickets),
			strconv.FormatFloat(b.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(b.TotalPrice, 'f', 2, 64),
			string(b.LoyaltyTier),
			strconv.FormatFloat(b.LoyaltyDiscountPct, 'f', 2, 64),
			strconv.FormatFloat(b.LoyaltyDiscountAmount, 'f', 2, 64),
			b.LoyaltyPerks,
			b.Meta,
			string(b.Status),
			formatNullableTime(b.CancelledAt),
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("Bookings exported",
		zap.Int("count", len(bookings)),
		zap.String("type", bookingType),
		zap.String("status", status),
	)

	return nil
}

func (s *reportService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return response.UsersToResponse(users), nil
}

func formatNullableID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formatNullableDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatNullableTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) WeeklyRevenue(ctx context.Context, weeks int) ([]*entity.WeeklyRevenue, error) {
	args := m.Called(ctx, weeks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WeeklyRevenue), args.Error(1)
}

func (m *MockReportRepo) DailyRevenue(ctx context.Context, start, end time.Time) ([]*entity.DailyRevenue, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DailyRevenue), args.Error(1)
}

func (m *MockReportRepo) DailyTickets(ctx context.Context, start, end time.Time) ([]*entity.DailyTickets, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DailyTickets), args.Error(1)
}

func TestDailyRevenueRejectsTooManyDays(t *testing.T) {
	service := usecase.NewReportService(&repository.Repository{Report: new(MockReportRepo)}, zap.NewNop())

	_, err := service.DailyRevenue(context.Background(), 366)

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Rules, "Days parameter too large")
}

func TestDailyRevenueZeroFillsMissingDays(t *testing.T) {
	reportRepo := new(MockReportRepo)
	service := usecase.NewReportService(&repository.Repository{Report: reportRepo}, zap.NewNop())

	today := time.Now().Format("2006-01-02")
	reportRepo.On("DailyRevenue", mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.DailyRevenue{{Day: today, Revenue: 120.0, Bookings: 4}}, nil)
	reportRepo.On("DailyTickets", mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.DailyTickets{{Day: today, Tickets: 9}}, nil)

	resp, err := service.DailyRevenue(context.Background(), 7)
	require.NoError(t, err)

	// 7 days back through today, inclusive.
	require.Len(t, resp.Labels, 8)
	require.Len(t, resp.Revenue, 8)
	require.Len(t, resp.Tickets, 8)
	require.Len(t, resp.Bookings, 8)

	lastIdx := len(resp.Labels) - 1
	assert.Equal(t, today, resp.Labels[lastIdx])
	assert.Equal(t, 120.0, resp.Revenue[lastIdx])
	assert.Equal(t, int64(9), resp.Tickets[lastIdx])
	assert.Equal(t, int64(4), resp.Bookings[lastIdx])

	// Every other day is zero-filled.
	assert.Equal(t, 0.0, resp.Revenue[0])
	assert.Equal(t, int64(0), resp.Tickets[0])
}

func TestWeeklyRevenuePassesThrough(t *testing.T) {
	reportRepo := new(MockReportRepo)
	service := usecase.NewReportService(&repository.Repository{Report: reportRepo}, zap.NewNop())

	reportRepo.On("WeeklyRevenue", mock.Anything, 12).
		Return([]*entity.WeeklyRevenue{
			{YearWeek: "2026-34", Revenue: 540.0, Bookings: 12, TicketsRevenue: 240.0, HotelRevenue: 300.0},
		}, nil)

	rows, err := service.WeeklyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-34", rows[0].YearWeek)
	assert.Equal(t, 540.0, rows[0].Revenue)
}

func TestExportBookingsCSV(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service := usecase.NewReportService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

	userID := int64(7)
	checkin := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.On("ListAll", mock.Anything, "hotel", "active").
		Return([]*entity.Booking{{
			ID:         12,
			Type:       entity.BookingTypeHotel,
			UserID:     &userID,
			Name:       "Alice Smith",
			Email:      "alice@example.com",
			Checkin:    &checkin,
			Nights:     2,
			Room:       entity.RoomTypeDouble,
			UnitPrice:  90.0,
			TotalPrice: 180.0,
			Status:     entity.BookingStatusActive,
			CreatedAt:  time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		}}, nil)

	var buf bytes.Buffer
	err := service.ExportBookingsCSV(context.Background(), &buf, "hotel", "active")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,type,user_id,name,email"))
	assert.Contains(t, lines[1], "12,hotel,7,Alice Smith,alice@example.com,2026-10-01,2,double")
	assert.Contains(t, lines[1], "180.00")
}

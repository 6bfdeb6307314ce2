package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTx satisfies database.Tx without a live connection. The booking
// repository is mocked, so the query surface is never reached.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	db.tx = &fakeTx{}
	return db.tx, nil
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }

func (db *fakeDB) Close() {}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Insert(ctx context.Context, q database.Queryer, booking *entity.Booking) error {
	args := m.Called(ctx, q, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) LastActiveCreatedAt(ctx context.Context, q database.Queryer, userID *int64, email string) (*time.Time, error) {
	args := m.Called(ctx, q, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListForOwner(ctx context.Context, userID *int64, email string) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) MarkCancelled(ctx context.Context, id int64, cancelledAt time.Time) error {
	args := m.Called(ctx, id, cancelledAt)
	return args.Error(0)
}

func (m *MockBookingRepo) ListAll(ctx context.Context, bookingType, status string) ([]*entity.Booking, error) {
	args := m.Called(ctx, bookingType, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

// fakeSettingStore keeps settings in a map; absent keys fall back to the
// provided default, like the real repository.
type fakeSettingStore struct {
	values map[string]string
	saved  map[string]string
}

func newFakeSettingStore() *fakeSettingStore {
	return &fakeSettingStore{
		values: make(map[string]string),
		saved:  make(map[string]string),
	}
}

func (s *fakeSettingStore) Get(ctx context.Context, key, def string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *fakeSettingStore) Set(ctx context.Context, key, value string) error {
	s.values[key] = value
	s.saved[key] = value
	return nil
}

func newBookingService(bookingRepo repository.BookingRepository) (usecase.BookingService, *fakeDB) {
	db := &fakeDB{}
	repo := &repository.Repository{Booking: bookingRepo}
	settings := usecase.NewSettingsService(newFakeSettingStore(), zap.NewNop())
	return usecase.NewBookingService(db, repo, settings, zap.NewNop()), db
}

func TestSubmitBookingTicketsGuest(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, db := newBookingService(bookingRepo)

	bookingRepo.On("LastActiveCreatedAt", mock.Anything, mock.Anything, mock.Anything, "jane@example.com").
		Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*entity.Booking).ID = 41
		}).
		Return(nil)

	resp, err := service.SubmitBooking(context.Background(), nil, &request.CreateBookingRequest{
		Type:       "tickets",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		TicketDate: "2026-09-10",
		Tickets:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(41), resp.ID)
	assert.Equal(t, 10.0, resp.UnitPrice)
	assert.Equal(t, 30.0, resp.TotalPrice)
	assert.Equal(t, entity.LoyaltyTierNone, resp.LoyaltyTier)
	assert.Equal(t, entity.BookingStatusActive, resp.Status)
	assert.Nil(t, resp.UserID)
	assert.True(t, db.tx.committed)
	bookingRepo.AssertExpectations(t)
}

func TestSubmitBookingAppliesLoyaltyDiscount(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, db := newBookingService(bookingRepo)

	last := time.Now().AddDate(0, 0, -100)
	bookingRepo.On("LastActiveCreatedAt", mock.Anything, mock.Anything, mock.Anything, "jane@example.com").
		Return(&last, nil)
	bookingRepo.On("Insert", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*entity.Booking).ID = 42
		}).
		Return(nil)

	resp, err := service.SubmitBooking(context.Background(), nil, &request.CreateBookingRequest{
		Type:       "tickets",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		TicketDate: "2026-09-10",
		Tickets:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LoyaltyTier6m, resp.LoyaltyTier)
	assert.Equal(t, 10.0, resp.LoyaltyDiscountPct)
	assert.Equal(t, 3.0, resp.LoyaltyDiscountAmount)
	assert.Equal(t, 27.0, resp.TotalPrice)
	assert.Equal(t, 9.0, resp.UnitPrice)
	assert.True(t, db.tx.committed)
}

func TestSubmitBookingAuthenticatedOverridesContact(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	bookingRepo.On("LastActiveCreatedAt", mock.Anything, mock.Anything, mock.Anything, "alice@example.com").
		Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			booking := args.Get(2).(*entity.Booking)
			booking.ID = 43
			assert.Equal(t, "Alice Smith", booking.Name)
			assert.Equal(t, "alice@example.com", booking.Email)
			require.NotNil(t, booking.UserID)
			assert.Equal(t, int64(7), *booking.UserID)
		}).
		Return(nil)

	identity := &entity.Identity{
		UserID:    7,
		Email:     "alice@example.com",
		FirstName: "Alice",
		Surname:   "Smith",
	}

	// The form carries someone else's details; the session wins.
	resp, err := service.SubmitBooking(context.Background(), identity, &request.CreateBookingRequest{
		Type:    "hotel",
		Name:    "Spoofed Name",
		Email:   "spoof@example.com",
		Checkin: "2026-10-01",
		Nights:  2,
		Room:    "double",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", resp.Name)
	assert.Equal(t, 180.0, resp.TotalPrice)
	bookingRepo.AssertExpectations(t)
}

func TestSubmitBookingCollectsAllViolations(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	_, err := service.SubmitBooking(context.Background(), nil, &request.CreateBookingRequest{
		Type:    "hotel",
		Checkin: "not-a-date",
		Nights:  0,
		Room:    "deluxe",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Rules, "Name is required")
	assert.Contains(t, vErr.Rules, "A valid email is required")
	assert.Contains(t, vErr.Rules, "Nights must be at least 1")
	assert.Contains(t, vErr.Rules, "Check-in date must be a valid YYYY-MM-DD date")
	assert.Contains(t, vErr.Rules, "Invalid room type selected")
	assert.Len(t, vErr.Rules, 5)

	// Nothing may be persisted on a rejected submission.
	bookingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBookingLoyaltyLookupFailureStillBooks(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, db := newBookingService(bookingRepo)

	bookingRepo.On("LastActiveCreatedAt", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))
	bookingRepo.On("Insert", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*entity.Booking).ID = 44
		}).
		Return(nil)

	resp, err := service.SubmitBooking(context.Background(), nil, &request.CreateBookingRequest{
		Type:       "tickets",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		TicketDate: "2026-09-10",
		Tickets:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LoyaltyTierNone, resp.LoyaltyTier)
	assert.Equal(t, 10.0, resp.TotalPrice)
	assert.True(t, db.tx.committed)
}

func TestSubmitBookingInsertFailureRollsBack(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, db := newBookingService(bookingRepo)

	bookingRepo.On("LastActiveCreatedAt", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	_, err := service.SubmitBooking(context.Background(), nil, &request.CreateBookingRequest{
		Type:       "tickets",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		TicketDate: "2026-09-10",
		Tickets:    1,
	})

	require.Error(t, err)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestListMyBookingsRequiresIdentity(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	_, err := service.ListMyBookings(context.Background(), nil)
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestListMyBookingsMatchesUserAndEmail(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	userID := int64(7)
	bookingRepo.On("ListForOwner", mock.Anything, &userID, "alice@example.com").
		Return([]*entity.Booking{
			{ID: 2, Type: entity.BookingTypeTickets, Status: entity.BookingStatusActive},
			{ID: 1, Type: entity.BookingTypeHotel, Status: entity.BookingStatusCancelled},
		}, nil)

	resp, err := service.ListMyBookings(context.Background(), &entity.Identity{
		UserID: 7,
		Email:  "alice@example.com",
	})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
	bookingRepo.AssertExpectations(t)
}

func TestCancelBookingAuthorization(t *testing.T) {
	ownerID := int64(7)

	tests := []struct {
		name      string
		booking   *entity.Booking
		requester *entity.Identity
		wantErr   error
	}{
		{
			name:      "owner can cancel",
			booking:   &entity.Booking{ID: 1, UserID: &ownerID, Status: entity.BookingStatusActive},
			requester: &entity.Identity{UserID: 7},
		},
		{
			name:      "other user is forbidden",
			booking:   &entity.Booking{ID: 1, UserID: &ownerID, Status: entity.BookingStatusActive},
			requester: &entity.Identity{UserID: 8},
			wantErr:   usecase.ErrForbidden,
		},
		{
			name:      "admin can cancel anything",
			booking:   &entity.Booking{ID: 1, UserID: &ownerID, Status: entity.BookingStatusActive},
			requester: &entity.Identity{UserID: 9, IsAdmin: true},
		},
		{
			name:      "guest booking cancellable by matching email",
			booking:   &entity.Booking{ID: 1, Email: "jane@example.com", Status: entity.BookingStatusActive},
			requester: &entity.Identity{UserID: 8, Email: "jane@example.com"},
		},
		{
			name:      "guest booking with different email is forbidden",
			booking:   &entity.Booking{ID: 1, Email: "jane@example.com", Status: entity.BookingStatusActive},
			requester: &entity.Identity{UserID: 8, Email: "other@example.com"},
			wantErr:   usecase.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := new(MockBookingRepo)
			service, _ := newBookingService(bookingRepo)

			bookingRepo.On("FindByID", mock.Anything, int64(1)).Return(tt.booking, nil)
			if tt.wantErr == nil {
				bookingRepo.On("MarkCancelled", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
					Return(nil)
			}

			resp, err := service.CancelBooking(context.Background(), 1, tt.requester)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				bookingRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
			assert.NotNil(t, resp.CancelledAt)
		})
	}
}

func TestCancelBookingUnknownID(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	bookingRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := service.CancelBooking(context.Background(), 99, &entity.Identity{UserID: 7})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestCancelBookingTwiceIsRejected(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	service, _ := newBookingService(bookingRepo)

	ownerID := int64(7)
	cancelledAt := time.Now().Add(-time.Hour)
	bookingRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Booking{
		ID:          1,
		UserID:      &ownerID,
		Status:      entity.BookingStatusCancelled,
		CancelledAt: &cancelledAt,
	}, nil)

	_, err := service.CancelBooking(context.Background(), 1, &entity.Identity{UserID: 7})
	assert.ErrorIs(t, err, usecase.ErrAlreadyCancelled)
	bookingRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
}

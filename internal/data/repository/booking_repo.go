package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, type, user_id, name, email, checkin, nights, room,
	ticket_date, tickets, unit_price, total_price, meta, status, cancelled_at,
	created_at, loyalty_tier, loyalty_discount_pct, loyalty_discount_amount, loyalty_perks`

type BookingRepository interface {
	// Insert persists a booking and assigns its id. It takes an explicit
	// Queryer so the create flow can run inside the same transaction as the
	// loyalty lookback.
	Insert(ctx context.Context, q database.Queryer, booking *entity.Booking) error
	// LastActiveCreatedAt returns the creation time of the most recent active
	// booking owned by the identity, matching user_id when set and falling
	// back to ownerless rows with the same email. Nil when there is none.
	LastActiveCreatedAt(ctx context.Context, q database.Queryer, userID *int64, email string) (*time.Time, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	// ListForOwner returns bookings owned by userID or, for ownerless rows,
	// matching email, newest first. Guest and pre-signup bookings only match
	// on email.
	ListForOwner(ctx context.Context, userID *int64, email string) ([]*entity.Booking, error)
	MarkCancelled(ctx context.Context, id int64, cancelledAt time.Time) error
	// ListAll returns every booking newest first, optionally filtered by type
	// and status. Used by the admin export.
	ListAll(ctx context.Context, bookingType, status string) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Insert(ctx context.Context, q database.Queryer, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (type, user_id, name, email, checkin, nights, room,
			ticket_date, tickets, unit_price, total_price, meta, status, cancelled_at,
			created_at, loyalty_tier, loyalty_discount_pct, loyalty_discount_amount, loyalty_perks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		booking.Type,
		booking.UserID,
		booking.Name,
		booking.Email,
		booking.Checkin,
		booking.Nights,
		booking.Room,
		booking.TicketDate,
		booking.Tickets,
		booking.UnitPrice,
		booking.TotalPrice,
		booking.Meta,
		booking.Status,
		booking.CancelledAt,
		booking.CreatedAt,
		booking.LoyaltyTier,
		booking.LoyaltyDiscountPct,
		booking.LoyaltyDiscountAmount,
		booking.LoyaltyPerks,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("type", string(booking.Type)),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("insert %s booking: %w", booking.Type, err)
	}

	return nil
}

func (r *bookingRepository) LastActiveCreatedAt(ctx context.Context, q database.Queryer, userID *int64, email string) (*time.Time, error) {
	query := `
		SELECT created_at FROM bookings
		WHERE (user_id = $1 OR (user_id IS NULL AND email = $2)) AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var createdAt time.Time
	err := q.QueryRow(ctx, query, userID, email, entity.BookingStatusActive).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find last active booking",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find last active booking: %w", err)
	}

	return &createdAt, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) ListForOwner(ctx context.Context, userID *int64, email string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE user_id = $1 OR (user_id IS NULL AND email = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, email)
	if err != nil {
		r.log.Error("Failed to list bookings for owner",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("list bookings for owner: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, id int64, cancelledAt time.Time) error {
	query := `UPDATE bookings SET status = $2, cancelled_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, entity.BookingStatusCancelled, cancelledAt)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("cancel booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	return nil
}

func (r *bookingRepository) ListAll(ctx context.Context, bookingType, status string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE ($1 = '' OR type = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingType, status)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("type", bookingType),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Type,
		&booking.UserID,
		&booking.Name,
		&booking.Email,
		&booking.Checkin,
		&booking.Nights,
		&booking.Room,
		&booking.TicketDate,
		&booking.Tickets,
		&booking.UnitPrice,
		&booking.TotalPrice,
		&booking.Meta,
		&booking.Status,
		&booking.CancelledAt,
		&booking.CreatedAt,
		&booking.LoyaltyTier,
		&booking.LoyaltyDiscountPct,
		&booking.LoyaltyDiscountAmount,
		&booking.LoyaltyPerks,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}

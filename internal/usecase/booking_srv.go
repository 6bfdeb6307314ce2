package usecase

import (
	"context"
	"fmt"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/dto/response"
	"riget-zoo/pkg/database"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// SubmitBooking prices the draft, applies any loyalty discount and
	// persists the booking. identity is nil for guest submissions.
	SubmitBooking(ctx context.Context, identity *entity.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListMyBookings(ctx context.Context, identity *entity.Identity) ([]*response.BookingResponse, error)
	CancelBooking(ctx context.Context, id int64, requester *entity.Identity) (*response.BookingResponse, error)
}

type bookingService struct {
	db       database.PgxIface
	repo     *repository.Repository
	settings SettingsService
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, settings SettingsService, log *zap.Logger) BookingService {
	return &bookingService{
		db:       db,
		repo:     repo,
		settings: settings,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) SubmitBooking(ctx context.Context, identity *entity.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking, rules := buildDraft(identity, req, s.now())
	if len(rules) > 0 {
		s.log.Warn("Booking submission rejected",
			zap.String("type", req.Type),
			zap.Strings("rules", rules),
		)
		return nil, &ValidationError{Rules: rules}
	}

	cfg, err := s.settings.PricingConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing config: %w", err)
	}

	var unit, total float64
	if booking.Type == entity.BookingTypeHotel {
		unit, total, err = PriceHotel(cfg, booking.Room, booking.Nights)
	} else {
		unit, total, err = PriceTickets(cfg, booking.Tickets)
	}
	if err != nil {
		return nil, err
	}

	// Loyalty lookback and insert share one transaction so a half-priced
	// booking is never visible to a concurrent listing.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Read strictly before the insert: the new booking never qualifies as
	// its own last booking. Loyalty is a bonus, not a dependency; a failed
	// lookup degrades to no discount.
	last, err := s.repo.Booking.LastActiveCreatedAt(ctx, tx, booking.UserID, booking.Email)
	if err != nil {
		s.log.Warn("Loyalty lookup failed, continuing without discount", zap.Error(err))
		last = nil
	}

	loyalty := EvaluateLoyalty(cfg, last, booking.CreatedAt)
	booking.LoyaltyTier = loyalty.Tier
	booking.LoyaltyDiscountPct = loyalty.DiscountPct
	booking.LoyaltyPerks = loyalty.Perks

	booking.UnitPrice, booking.TotalPrice, booking.LoyaltyDiscountAmount =
		ApplyDiscount(unit, total, booking.Quantity(), loyalty.DiscountPct)

	if err := s.repo.Booking.Insert(ctx, tx, booking); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("type", string(booking.Type)),
		zap.String("email", booking.Email),
		zap.Float64("total_price", booking.TotalPrice),
		zap.String("loyalty_tier", string(booking.LoyaltyTier)),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, identity *entity.Identity) ([]*response.BookingResponse, error) {
	if identity == nil {
		return nil, ErrForbidden
	}

	userID := identity.UserID
	bookings, err := s.repo.Booking.ListForOwner(ctx, &userID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id int64, requester *entity.Identity) (*response.BookingResponse, error) {
	if requester == nil {
		return nil, ErrForbidden
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if !canCancel(booking, requester) {
		s.log.Warn("Cancel denied",
			zap.Int64("booking_id", id),
			zap.Int64("requester_id", requester.UserID),
		)
		return nil, ErrForbidden
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	cancelledAt := s.now()
	if err := s.repo.Booking.MarkCancelled(ctx, id, cancelledAt); err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w", id, err)
	}

	booking.Status = entity.BookingStatusCancelled
	booking.CancelledAt = &cancelledAt

	s.log.Info("Booking cancelled",
		zap.Int64("booking_id", id),
		zap.Int64("requester_id", requester.UserID),
	)

	return response.BookingToResponse(booking), nil
}

// canCancel implements the cancellation authorization: admins always; owned
// bookings by their user; ownerless (guest) bookings by matching email.
func canCancel(booking *entity.Booking, requester *entity.Identity) bool {
	if requester.IsAdmin {
		return true
	}
	if booking.UserID != nil {
		return *booking.UserID == requester.UserID
	}
	return booking.Email != "" && booking.Email == requester.Email
}

// buildDraft validates the submission and assembles the unpriced booking.
// Every violated rule is collected so the caller sees them all at once.
func buildDraft(identity *entity.Identity, req *request.CreateBookingRequest, now time.Time) (*entity.Booking, []string) {
	var rules []string

	booking := &entity.Booking{
		Name:      req.Name,
		Email:     req.Email,
		Status:    entity.BookingStatusActive,
		CreatedAt: now,
	}

	// Authenticated submissions take name and email from the session
	// identity, never from the form.
	if identity != nil {
		userID := identity.UserID
		booking.UserID = &userID
		booking.Name = identity.FullName()
		booking.Email = identity.Email
	} else {
		if booking.Name == "" {
			rules = append(rules, "Name is required")
		}
		if booking.Email == "" || !utils.IsValidEmail(booking.Email) {
			rules = append(rules, "A valid email is required")
		}
	}

	switch entity.BookingType(req.Type) {
	case entity.BookingTypeHotel:
		booking.Type = entity.BookingTypeHotel
		booking.Nights = req.Nights
		booking.Room = entity.RoomType(req.Room)
		if req.Nights < 1 {
			rules = append(rules, "Nights must be at least 1")
		}
		if checkin, ok := utils.ParseDate(req.Checkin); ok {
			booking.Checkin = &checkin
		} else {
			rules = append(rules, "Check-in date must be a valid YYYY-MM-DD date")
		}
		if !booking.Room.Valid() {
			rules = append(rules, "Invalid room type selected")
		}
	case entity.BookingTypeTickets:
		booking.Type = entity.BookingTypeTickets
		booking.Tickets = req.Tickets
		if req.Tickets < 1 {
			rules = append(rules, "Number of tickets must be at least 1")
		}
		if ticketDate, ok := utils.ParseDate(req.TicketDate); ok {
			booking.TicketDate = &ticketDate
		} else {
			rules = append(rules, "Ticket date must be a valid YYYY-MM-DD date")
		}
	default:
		rules = append(rules, "Unknown booking type")
	}

	return booking, rules
}

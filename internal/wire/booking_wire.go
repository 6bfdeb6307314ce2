package wire

import (
	"riget-zoo/internal/adaptor"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/booking - Submit a booking; guests allowed, a session
	// attaches the booking to the account and overrides name/email.
	r.Route("/api/booking", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

		r.Post("/", bookingHandler.SubmitBooking)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/user/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/user/bookings - Bookings owned by the current user
		r.Get("/", bookingHandler.ListMyBookings)
	})

	r.Route("/api/bookings/{id}/cancel", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings/{id}/cancel - Cancel an active booking
		r.Post("/", bookingHandler.CancelBooking)
	})
}

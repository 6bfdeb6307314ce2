package wire

import (
	"riget-zoo/internal/adaptor"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Group admin routes with middleware chain
	r.Route("/api/admin", func(r chi.Router) {
		// Apply middleware to all routes in this group
		r.Use(middleware.AuthSession(repo.Session, repo.User, log)) // Must be authenticated
		r.Use(middleware.Admin(log))                                // Must be admin

		// Pricing settings
		r.Get("/settings", handler.Admin.GetSettings)
		r.Put("/settings", handler.Admin.UpdateSettings)

		// Revenue reporting
		r.Get("/revenue/weekly", handler.Admin.WeeklyRevenue)
		r.Get("/revenue/daily", handler.Admin.DailyRevenue)

		// Booking export and user management
		r.Get("/bookings/export", handler.Admin.ExportBookings)
		r.Get("/users", handler.Admin.ListUsers)

		// Inbox listings
		r.Get("/contacts", handler.Contact.List)
		r.Get("/education-requests", handler.Education.List)
	})
}

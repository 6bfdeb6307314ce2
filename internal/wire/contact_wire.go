package wire

import (
	"riget-zoo/internal/adaptor"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/contact - Submit the contact form; a session pre-fills
	// name and email from the account.
	r.Route("/api/contact", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

		r.Post("/", contactHandler.Submit)
	})
}

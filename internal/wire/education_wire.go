package wire

import (
	"riget-zoo/internal/adaptor"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEducation(
	r chi.Router,
	educationHandler *adaptor.EducationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/education/tour - Request a school tour booking
	r.Route("/api/education/tour", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

		r.Post("/", educationHandler.Submit)
	})
}

package wire

import (
	"riget-zoo/internal/adaptor"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/signup - Create an account and start a session
	r.Post("/api/auth/signup", authHandler.Signup)

	// POST /api/auth/login - Authenticate and start a session
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/auth/logout", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/auth/logout - End the current session
		r.Post("/", authHandler.Logout)
	})
}

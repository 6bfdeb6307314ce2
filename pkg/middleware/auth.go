package middleware

import (
	"context"
	"net/http"
	"strings"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession requires a valid session token and puts the resolved identity
// into the request context.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, token, ok := resolveIdentity(r, sessionRepo, userRepo, logger)
			if !ok {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}
			if identity == nil {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the identity when a valid token is supplied and
// continues as a guest otherwise. Booking and contact submissions accept
// both.
func OptionalAuth(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if identity, token, ok := resolveIdentity(r, sessionRepo, userRepo, logger); ok && identity != nil {
				ctx = utils.SetIdentityContext(ctx, identity)
				ctx = utils.SetTokenContext(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects non-admin identities. Must run after AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := utils.GetIdentityFromContext(r.Context())
			if identity == nil {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !identity.IsAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.Int64("user_id", identity.UserID),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveIdentity returns (nil, "", true) when no token is supplied and
// (nil, "", false) when the supplied token is malformed, unknown or expired.
func resolveIdentity(r *http.Request, sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) (*entity.Identity, string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "", true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "", false
	}

	token, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, "", false
	}

	ctx := r.Context()
	session, err := sessionRepo.FindValid(ctx, token)
	if err != nil {
		logger.Error("Failed to validate session", zap.Error(err))
		return nil, "", false
	}
	if session == nil {
		return nil, "", false
	}

	identity, ok := loadIdentity(ctx, userRepo, session.UserID, logger)
	if !ok {
		return nil, "", false
	}

	return identity, token.String(), true
}

func loadIdentity(ctx context.Context, userRepo repository.UserRepository, userID int64, logger *zap.Logger) (*entity.Identity, bool) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load session user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, false
	}
	if user == nil {
		return nil, false
	}
	return entity.IdentityOf(user), true
}

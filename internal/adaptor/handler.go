package adaptor

import (
	"errors"
	"net/http"

	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Contact   *ContactHandler
	Education *EducationHandler
	Admin     *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Contact:   NewContactHandler(service.Contact, log),
		Education: NewEducationHandler(service.Education, log),
		Admin:     NewAdminHandler(service, log),
	}
}

// handleServiceError maps domain errors onto the JSON envelope. Not-found and
// forbidden responses deliberately carry no record details.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	var validationErr *usecase.ValidationError
	var configErr *usecase.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Rules)
	case errors.As(err, &configErr):
		utils.ResponseBadRequest(w, configErr.Error(), nil)
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "Not allowed")
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		utils.ResponseConflict(w, "Booking already cancelled")
	default:
		log.Error("Service error", zap.Error(err), zap.String("action", action))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// SubmitBooking handles POST /api/booking (guests and authenticated users)
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	identity := utils.GetIdentityFromContext(r.Context())

	booking, err := h.service.SubmitBooking(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "Booking received", booking)
}

// ListMyBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	identity := utils.GetIdentityFromContext(r.Context())
	if identity == nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.ListMyBookings(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles POST /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	identity := utils.GetIdentityFromContext(r.Context())
	if identity == nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), id, identity)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Submit handles POST /api/contact (guests and authenticated users)
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	identity := utils.GetIdentityFromContext(r.Context())

	contact, err := h.service.Submit(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "Thank you, your message has been received", contact)
}

// List handles GET /api/admin/contacts (admin)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list contacts")
		return
	}

	utils.ResponseSuccess(w, "success", contacts)
}

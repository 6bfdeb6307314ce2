package adaptor

import (
	"encoding/json"
	"net/http"

	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type EducationHandler struct {
	service usecase.EducationService
	log     *zap.Logger
}

func NewEducationHandler(service usecase.EducationService, log *zap.Logger) *EducationHandler {
	return &EducationHandler{
		service: service,
		log:     log.With(zap.String("handler", "education")),
	}
}

// Submit handles POST /api/education/tour
func (h *EducationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.EducationTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tourRequest, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit education request")
		return
	}

	utils.ResponseCreated(w, "Education tour request received", tourRequest)
}

// List handles GET /api/admin/education-requests (admin)
func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list education requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

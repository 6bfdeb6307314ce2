package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboard endpoints: pricing settings,
// revenue reports, user listing and the bookings export.
type AdminHandler struct {
	settings usecase.SettingsService
	report   usecase.ReportService
	log      *zap.Logger
}

func NewAdminHandler(service *usecase.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		settings: service.Settings,
		report:   service.Report,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// GetSettings handles GET /api/admin/settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSettings handles PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.settings.UpdateSettings(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "Settings saved", nil)
}

// WeeklyRevenue handles GET /api/admin/revenue/weekly
func (h *AdminHandler) WeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	rows, err := h.report.WeeklyRevenue(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "weekly revenue")
		return
	}

	utils.ResponseSuccess(w, "success", rows)
}

// DailyRevenue handles GET /api/admin/revenue/daily?days=N
func (h *AdminHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	days := utils.ParseInt(r.URL.Query().Get("days"), 30)

	series, err := h.report.DailyRevenue(r.Context(), days)
	if err != nil {
		handleServiceError(w, h.log, err, "daily revenue")
		return
	}

	utils.ResponseSuccess(w, "success", series)
}

// ExportBookings handles GET /api/admin/bookings/export?type=&status=
func (h *AdminHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	filename := fmt.Sprintf("bookings_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.report.ExportBookingsCSV(r.Context(), w, query.Get("type"), query.Get("status")); err != nil {
		// Headers may already be written; log and abort the stream.
		h.log.Error("Bookings export failed", zap.Error(err))
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.report.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

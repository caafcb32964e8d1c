package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"parking-booking/internal/dto/request"
	"parking-booking/internal/usecase"
	"parking-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListConfigs handles GET /api/admin/configs
func (h *AdminHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.service.ListConfigs(r.Context())
	if err != nil {
		renderServiceError(w, h.log, err, "list configs")
		return
	}

	utils.ResponseSuccess(w, "success", configs)
}

// UpdateConfig handles PUT /api/admin/configs/{vehicle_type}
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	vehicleType := chi.URLParam(r, "vehicle_type")

	var req request.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	config, err := h.service.UpdateConfig(r.Context(), vehicleType, &req)
	if err != nil {
		renderServiceError(w, h.log, err, "update config")
		return
	}

	utils.ResponseSuccess(w, "success", config)
}

// Seed handles POST /api/admin/seed; the body is optional
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req request.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Seed(r.Context(), &req)
	if err != nil {
		renderServiceError(w, h.log, err, "seed parking data")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ListTickets handles GET /api/admin/tickets?page=&per_page=
func (h *AdminHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	tickets, err := h.service.ListTickets(r.Context(), req)
	if err != nil {
		renderServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

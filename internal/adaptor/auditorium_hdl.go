package adaptor

import (
	"encoding/json"
	"net/http"

	"screening-booking/internal/dto/request"
	"screening-booking/internal/usecase"
	"screening-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuditoriumHandler struct {
	service usecase.AuditoriumService
	log     *zap.Logger
}

func NewAuditoriumHandler(service usecase.AuditoriumService, log *zap.Logger) *AuditoriumHandler {
	return &AuditoriumHandler{
		service: service,
		log:     log.With(zap.String("handler", "auditorium")),
	}
}

// GetAuditoriums handles GET /api/auditoriums
func (h *AuditoriumHandler) GetAuditoriums(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	auditoriums, err := h.service.GetAuditoriums(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get auditoriums")
		return
	}

	utils.ResponseSuccess(w, "Auditoriums retrieved successfully", auditoriums)
}

// GetAuditoriumByID handles GET /api/auditoriums/{id}
func (h *AuditoriumHandler) GetAuditoriumByID(w http.ResponseWriter, r *http.Request) {
	auditoriumID := chi.URLParam(r, "id")
	if auditoriumID == "" {
		utils.ResponseBadRequest(w, "Auditorium ID is required", nil)
		return
	}

	auditorium, err := h.service.GetAuditoriumByID(r.Context(), auditoriumID)
	if err != nil {
		handleServiceError(w, h.log, err, "get auditorium by ID")
		return
	}

	utils.ResponseSuccess(w, "Auditorium retrieved successfully", auditorium)
}

// CreateAuditorium handles POST /api/auditoriums
func (h *AuditoriumHandler) CreateAuditorium(w http.ResponseWriter, r *http.Request) {
	var req request.AuditoriumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auditorium, err := h.service.CreateAuditorium(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create auditorium")
		return
	}

	utils.ResponseCreated(w, "Auditorium created successfully", auditorium)
}

// UpdateAuditorium handles PUT /api/auditoriums/{id}
func (h *AuditoriumHandler) UpdateAuditorium(w http.ResponseWriter, r *http.Request) {
	auditoriumID := chi.URLParam(r, "id")
	if auditoriumID == "" {
		utils.ResponseBadRequest(w, "Auditorium ID is required", nil)
		return
	}

	var req request.AuditoriumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auditorium, err := h.service.UpdateAuditorium(r.Context(), auditoriumID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update auditorium")
		return
	}

	utils.ResponseSuccess(w, "Auditorium updated successfully", auditorium)
}

// DeleteAuditorium handles DELETE /api/auditoriums/{id}
func (h *AuditoriumHandler) DeleteAuditorium(w http.ResponseWriter, r *http.Request) {
	auditoriumID := chi.URLParam(r, "id")
	if auditoriumID == "" {
		utils.ResponseBadRequest(w, "Auditorium ID is required", nil)
		return
	}

	if err := h.service.DeleteAuditorium(r.Context(), auditoriumID); err != nil {
		handleServiceError(w, h.log, err, "delete auditorium")
		return
	}

	utils.ResponseSuccess(w, "Auditorium deleted successfully", nil)
}

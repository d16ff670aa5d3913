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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetSchedules handles GET /api/schedules
func (h *ScheduleHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	schedules, err := h.service.GetSchedules(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedules")
		return
	}

	utils.ResponseSuccess(w, "Schedules retrieved successfully", schedules)
}

// GetScheduleByID handles GET /api/schedules/{id}
func (h *ScheduleHandler) GetScheduleByID(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	schedule, err := h.service.GetScheduleByID(r.Context(), scheduleID)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedule by ID")
		return
	}

	utils.ResponseSuccess(w, "Schedule retrieved successfully", schedule)
}

// CreateSchedule handles POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create schedule")
		return
	}

	utils.ResponseCreated(w, "Schedule created successfully", schedule)
}

// UpdateSchedule handles PUT /api/schedules/{id}
func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	var req request.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), scheduleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule updated successfully", schedule)
}

// DeleteSchedule handles DELETE /api/schedules/{id}
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), scheduleID); err != nil {
		handleServiceError(w, h.log, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule deleted successfully", nil)
}

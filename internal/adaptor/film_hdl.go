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

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// GetFilms handles GET /api/films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	films, err := h.service.GetFilms(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /api/films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "id")
	if filmID == "" {
		utils.ResponseBadRequest(w, "Film ID is required", nil)
		return
	}

	film, err := h.service.GetFilmByID(r.Context(), filmID)
	if err != nil {
		handleServiceError(w, h.log, err, "get film by ID")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// CreateFilm handles POST /api/films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created successfully", film)
}

// UpdateFilm handles PUT /api/films/{id}
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "id")
	if filmID == "" {
		utils.ResponseBadRequest(w, "Film ID is required", nil)
		return
	}

	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), filmID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated successfully", film)
}

// DeleteFilm handles DELETE /api/films/{id}
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "id")
	if filmID == "" {
		utils.ResponseBadRequest(w, "Film ID is required", nil)
		return
	}

	if err := h.service.DeleteFilm(r.Context(), filmID); err != nil {
		handleServiceError(w, h.log, err, "delete film")
		return
	}

	utils.ResponseSuccess(w, "Film deleted successfully", nil)
}

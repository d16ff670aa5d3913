package wire

import (
	"net/http"

	"screening-booking/internal/adaptor"
	"screening-booking/internal/data/repository"
	"screening-booking/internal/usecase"
	"screening-booking/pkg/middleware"
	"screening-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireFilm(r, handler.Film)
	wireAuditorium(r, handler.Auditorium)
	wireAccount(r, handler.Account)
	wireSchedule(r, handler.Schedule)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"screening-booking/internal/data/entity"
	"screening-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a use case error onto an HTTP status. Domain
// sentinels are matched with errors.Is so wrapped context survives; the
// message shown to the caller is the wrapped chain.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, entity.ErrReferenceNotFound):
		log.Warn(operation+" failed - reference not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, entity.ErrShowTimeInPast),
		errors.Is(err, entity.ErrInvalidAmount):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, entity.ErrSeatTaken),
		errors.Is(err, entity.ErrAlreadyPaid),
		errors.Is(err, entity.ErrBookingNotPayable),
		errors.Is(err, entity.ErrBookingNotActive),
		errors.Is(err, entity.ErrHasDependents),
		errors.Is(err, entity.ErrLoginNameTaken):
		log.Warn(operation+" conflicted", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// paginationPage reads page/per_page with the usual defaults.
func paginationPage(r *http.Request) (page, perPage int) {
	query := r.URL.Query()
	return utils.ParseInt(query.Get("page"), 1), utils.ParseInt(query.Get("per_page"), 10)
}

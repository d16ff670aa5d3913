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

type BookingHandler struct {
	bookings usecase.BookingService
	payments usecase.PaymentService
	log      *zap.Logger
}

func NewBookingHandler(bookings usecase.BookingService, payments usecase.PaymentService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		payments: payments,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// Reserve handles POST /api/bookings
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req request.ReserveSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.bookings.Reserve(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reserve seat")
		return
	}

	utils.ResponseCreated(w, "Seat reserved successfully", booking)
}

// GetBookings handles GET /api/bookings with optional account_id and
// schedule_id filters
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	var accountID, scheduleID *string
	if v := r.URL.Query().Get("account_id"); v != "" {
		accountID = &v
	}
	if v := r.URL.Query().Get("schedule_id"); v != "" {
		scheduleID = &v
	}

	bookings, err := h.bookings.GetBookings(r.Context(), req, accountID, scheduleID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.bookings.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved successfully", booking)
}

// ChangeSeat handles PUT /api/bookings/{id}/seat
func (h *BookingHandler) ChangeSeat(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.ChangeSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.bookings.ChangeSeat(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "change seat")
		return
	}

	utils.ResponseSuccess(w, "Booking seat changed successfully", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.bookings.CancelBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", booking)
}

// ExpireBooking handles PUT /api/bookings/{id}/expire
func (h *BookingHandler) ExpireBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.bookings.ExpireBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "expire booking")
		return
	}

	utils.ResponseSuccess(w, "Booking expired successfully", booking)
}

// GetBookingPayments handles GET /api/bookings/{id}/payments
func (h *BookingHandler) GetBookingPayments(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	payments, err := h.payments.GetPaymentsByBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

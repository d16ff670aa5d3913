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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded successfully", payment)
}

// GetPayments handles GET /api/payments
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	payments, err := h.service.GetPayments(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

// GetPaymentByID handles GET /api/payments/{id}
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment by ID")
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved successfully", payment)
}

// UpdatePayment handles PUT /api/payments/{id}
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.UpdatePayment(r.Context(), paymentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update payment")
		return
	}

	utils.ResponseSuccess(w, "Payment updated successfully", payment)
}

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

type AccountHandler struct {
	accounts usecase.AccountService
	payments usecase.PaymentService
	log      *zap.Logger
}

func NewAccountHandler(accounts usecase.AccountService, payments usecase.PaymentService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		payments: payments,
		log:      log.With(zap.String("handler", "account")),
	}
}

// Register handles POST /api/accounts
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	account, err := h.accounts.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register account")
		return
	}

	utils.ResponseCreated(w, "Account registered successfully", account)
}

// GetAccounts handles GET /api/accounts
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = paginationPage(r)

	accounts, err := h.accounts.GetAccounts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get accounts")
		return
	}

	utils.ResponseSuccess(w, "Accounts retrieved successfully", accounts)
}

// GetAccountByID handles GET /api/accounts/{id}
func (h *AccountHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		utils.ResponseBadRequest(w, "Account ID is required", nil)
		return
	}

	account, err := h.accounts.GetAccountByID(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, h.log, err, "get account by ID")
		return
	}

	utils.ResponseSuccess(w, "Account retrieved successfully", account)
}

// DeactivateAccount handles PUT /api/accounts/{id}/deactivate
func (h *AccountHandler) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		utils.ResponseBadRequest(w, "Account ID is required", nil)
		return
	}

	if err := h.accounts.DeactivateAccount(r.Context(), accountID); err != nil {
		handleServiceError(w, h.log, err, "deactivate account")
		return
	}

	utils.ResponseSuccess(w, "Account deactivated successfully", nil)
}

// GetAccountPayments handles GET /api/accounts/{id}/payments
func (h *AccountHandler) GetAccountPayments(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		utils.ResponseBadRequest(w, "Account ID is required", nil)
		return
	}

	payments, err := h.payments.GetPaymentsByAccount(r.Context(), accountID)
	if err != nil {
		handleServiceError(w, h.log, err, "get account payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

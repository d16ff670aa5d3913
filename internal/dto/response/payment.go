package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID         string               `json:"id"`
	BookingID  string               `json:"booking_id"`
	AccountID  string               `json:"account_id"`
	Amount     float64              `json:"amount"`
	Method     entity.PaymentMethod `json:"method"`
	Status     entity.PaymentStatus `json:"status"`
	RecordedAt time.Time            `json:"recorded_at"`
	Reference  *string              `json:"reference,omitempty"`
}

// PaymentDetailResponse walks the full chain: payment, its booking, the
// booking's schedule with film/auditorium, and the paying account.
type PaymentDetailResponse struct {
	PaymentResponse
	Booking    BookingResponse    `json:"booking"`
	Schedule   ScheduleResponse   `json:"schedule"`
	Film       FilmResponse       `json:"film"`
	Auditorium AuditoriumResponse `json:"auditorium"`
	Account    AccountResponse    `json:"account"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID.String(),
		BookingID:  payment.BookingID.String(),
		AccountID:  payment.AccountID.String(),
		Amount:     payment.Amount,
		Method:     payment.Method,
		Status:     payment.Status,
		RecordedAt: payment.RecordedAt,
		Reference:  payment.Reference,
	}
}

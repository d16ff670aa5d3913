package request

type PaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	AccountID string  `json:"account_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required"`
	Method    string  `json:"method" validate:"required,oneof=card ewallet bank_transfer"`
	Status    string  `json:"status" validate:"required,oneof=pending success failed"`
	Reference *string `json:"reference,omitempty" validate:"omitempty,max=100"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodEWallet      PaymentMethod = "ewallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

type Payment struct {
	Base
	BookingID  uuid.UUID     `db:"booking_id"`
	AccountID  uuid.UUID     `db:"account_id"`
	Amount     float64       `db:"amount"`
	Method     PaymentMethod `db:"method"`
	Status     PaymentStatus `db:"status"`
	RecordedAt time.Time     `db:"recorded_at"`
	Reference  *string       `db:"reference"`
}

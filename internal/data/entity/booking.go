package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// Terminal reports whether the status frees the (schedule, seat) slot.
// Cancelled and expired bookings never block a new reservation.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusExpired
}

type Booking struct {
	Base
	ScheduleID uuid.UUID     `db:"schedule_id"`
	AccountID  uuid.UUID     `db:"account_id"`
	SeatCode   string        `db:"seat_code"`
	Status     BookingStatus `db:"status"`
	BookedAt   time.Time     `db:"booked_at"`
}

// Cancel returns the status the booking transitions to. Cancelling an
// already terminal booking keeps its current status so the call stays
// idempotent.
func (b *Booking) Cancel() BookingStatus {
	if b.Status.Terminal() {
		return b.Status
	}
	return BookingStatusCancelled
}

// Expire mirrors Cancel for the expired terminal state.
func (b *Booking) Expire() BookingStatus {
	if b.Status.Terminal() {
		return b.Status
	}
	return BookingStatusExpired
}

package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	ScheduleID string               `json:"schedule_id"`
	AccountID  string               `json:"account_id"`
	SeatCode   string               `json:"seat_code"`
	Status     entity.BookingStatus `json:"status"`
	BookedAt   time.Time            `json:"booked_at"`
}

// BookingDetailResponse carries the related-entity snapshots assembled
// by joining on identifiers at query time.
type BookingDetailResponse struct {
	BookingResponse
	Schedule   ScheduleResponse   `json:"schedule"`
	Film       FilmResponse       `json:"film"`
	Auditorium AuditoriumResponse `json:"auditorium"`
	Account    AccountResponse    `json:"account"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		ScheduleID: booking.ScheduleID.String(),
		AccountID:  booking.AccountID.String(),
		SeatCode:   booking.SeatCode,
		Status:     booking.Status,
		BookedAt:   booking.BookedAt,
	}
}

package request

type ReserveSeatRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid4"`
	AccountID  string `json:"account_id" validate:"required,uuid4"`
	SeatCode   string `json:"seat_code" validate:"required,min=1,max=10"`
}

type ChangeSeatRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid4"`
	SeatCode   string `json:"seat_code" validate:"required,min=1,max=10"`
}

package entity

import "errors"

// Domain errors. Services wrap these with context via fmt.Errorf("...: %w"),
// handlers unwrap with errors.Is to pick the HTTP status.
var (
	// ErrNotFound is returned when the target of an operation does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrReferenceNotFound is returned when a referenced record (film,
	// auditorium, schedule, booking, account) does not resolve.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrShowTimeInPast is returned when a schedule's show time is not
	// strictly in the future at the moment of the check.
	ErrShowTimeInPast = errors.New("show time must be in the future")

	// ErrInvalidAmount is returned when a price or payment amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrSeatTaken is returned when a seat already has an active booking
	// for the same schedule.
	ErrSeatTaken = errors.New("seat is already booked for this schedule")

	// ErrAlreadyPaid is returned when a booking already has a successful
	// payment.
	ErrAlreadyPaid = errors.New("booking already has a successful payment")

	// ErrBookingNotPayable is returned when a payment targets a booking
	// whose status no longer admits one.
	ErrBookingNotPayable = errors.New("booking is cancelled")

	// ErrBookingNotActive is returned when a seat change targets a
	// booking already in a terminal status.
	ErrBookingNotActive = errors.New("booking is no longer active")

	// ErrHasDependents is returned when a delete is blocked by records
	// that still reference the target.
	ErrHasDependents = errors.New("record is referenced by dependent records")

	// ErrLoginNameTaken is returned when a registration reuses an
	// existing login name.
	ErrLoginNameTaken = errors.New("login name is already registered")
)

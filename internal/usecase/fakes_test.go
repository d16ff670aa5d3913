package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"screening-booking/internal/data/entity"
	"screening-booking/internal/data/repository"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repositories used by the service tests.
// Writes that the database guards with partial unique indexes are made
// atomic here with a mutex, so concurrency tests observe the same
// one-winner outcome as the real store.
type fakeStore struct {
	mu          sync.Mutex
	films       map[uuid.UUID]*entity.Film
	auditoriums map[uuid.UUID]*entity.Auditorium
	accounts    map[uuid.UUID]*entity.Account
	schedules   map[uuid.UUID]*entity.Schedule
	bookings    map[uuid.UUID]*entity.Booking
	payments    map[uuid.UUID]*entity.Payment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		films:       make(map[uuid.UUID]*entity.Film),
		auditoriums: make(map[uuid.UUID]*entity.Auditorium),
		accounts:    make(map[uuid.UUID]*entity.Account),
		schedules:   make(map[uuid.UUID]*entity.Schedule),
		bookings:    make(map[uuid.UUID]*entity.Booking),
		payments:    make(map[uuid.UUID]*entity.Payment),
	}
}

func newFakeRepository(store *fakeStore) *repository.Repository {
	return &repository.Repository{
		Film:        &fakeFilmRepo{store},
		Auditorium:  &fakeAuditoriumRepo{store},
		Account:     &fakeAccountRepo{store},
		Schedule:    &fakeScheduleRepo{store},
		Booking:     &fakeBookingRepo{store},
		Payment:     &fakePaymentRepo{store},
		Consistency: &fakeConsistencyRepo{store},
	}
}

// ---- seeding helpers ----

func (s *fakeStore) seedFilm(title string) *entity.Film {
	film := &entity.Film{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:           title,
		DurationMinutes: 120,
	}
	s.mu.Lock()
	s.films[film.ID] = film
	s.mu.Unlock()
	return film
}

func (s *fakeStore) seedAuditorium(name string, capacity int) *entity.Auditorium {
	auditorium := &entity.Auditorium{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:     name,
		Capacity: capacity,
	}
	s.mu.Lock()
	s.auditoriums[auditorium.ID] = auditorium
	s.mu.Unlock()
	return auditorium
}

func (s *fakeStore) seedAccount(loginName string) *entity.Account {
	account := &entity.Account{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		DisplayName: loginName,
		Email:       loginName + "@example.com",
		LoginName:   loginName,
		SecretHash:  "x",
		Role:        entity.RoleCustomer,
		IsActive:    true,
	}
	s.mu.Lock()
	s.accounts[account.ID] = account
	s.mu.Unlock()
	return account
}

func (s *fakeStore) seedSchedule(filmID, auditoriumID uuid.UUID, showTime time.Time) *entity.Schedule {
	schedule := &entity.Schedule{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		AuditoriumID: auditoriumID,
		FilmID:       filmID,
		ShowTime:     showTime,
		Price:        50000,
	}
	s.mu.Lock()
	s.schedules[schedule.ID] = schedule
	s.mu.Unlock()
	return schedule
}

func (s *fakeStore) seedBooking(scheduleID, accountID uuid.UUID, seatCode string, status entity.BookingStatus) *entity.Booking {
	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ScheduleID: scheduleID,
		AccountID:  accountID,
		SeatCode:   seatCode,
		Status:     status,
		BookedAt:   time.Now(),
	}
	s.mu.Lock()
	s.bookings[booking.ID] = booking
	s.mu.Unlock()
	return booking
}

// ---- film ----

type fakeFilmRepo struct{ store *fakeStore }

func (r *fakeFilmRepo) Create(_ context.Context, film *entity.Film) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *film
	r.store.films[film.ID] = &cp
	return nil
}

func (r *fakeFilmRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Film, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	film, ok := r.store.films[id]
	if !ok {
		return nil, nil
	}
	cp := *film
	return &cp, nil
}

func (r *fakeFilmRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Film, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var films []*entity.Film
	for _, film := range r.store.films {
		cp := *film
		films = append(films, &cp)
	}
	sort.Slice(films, func(i, j int) bool { return films[i].Title < films[j].Title })
	return paginate(films, limit, offset), nil
}

func (r *fakeFilmRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.films)), nil
}

func (r *fakeFilmRepo) Update(_ context.Context, film *entity.Film) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.films[film.ID]; !ok {
		return fmt.Errorf("update film: %w", entity.ErrNotFound)
	}
	cp := *film
	r.store.films[film.ID] = &cp
	return nil
}

func (r *fakeFilmRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.films[id]; !ok {
		return fmt.Errorf("delete film: %w", entity.ErrNotFound)
	}
	for _, schedule := range r.store.schedules {
		if schedule.FilmID == id {
			return fmt.Errorf("delete film: %w", entity.ErrHasDependents)
		}
	}
	delete(r.store.films, id)
	return nil
}

// ---- auditorium ----

type fakeAuditoriumRepo struct{ store *fakeStore }

func (r *fakeAuditoriumRepo) Create(_ context.Context, auditorium *entity.Auditorium) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *auditorium
	r.store.auditoriums[auditorium.ID] = &cp
	return nil
}

func (r *fakeAuditoriumRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	auditorium, ok := r.store.auditoriums[id]
	if !ok {
		return nil, nil
	}
	cp := *auditorium
	return &cp, nil
}

func (r *fakeAuditoriumRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Auditorium, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var auditoriums []*entity.Auditorium
	for _, auditorium := range r.store.auditoriums {
		cp := *auditorium
		auditoriums = append(auditoriums, &cp)
	}
	sort.Slice(auditoriums, func(i, j int) bool { return auditoriums[i].Name < auditoriums[j].Name })
	return paginate(auditoriums, limit, offset), nil
}

func (r *fakeAuditoriumRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.auditoriums)), nil
}

func (r *fakeAuditoriumRepo) Update(_ context.Context, auditorium *entity.Auditorium) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.auditoriums[auditorium.ID]; !ok {
		return fmt.Errorf("update auditorium: %w", entity.ErrNotFound)
	}
	cp := *auditorium
	r.store.auditoriums[auditorium.ID] = &cp
	return nil
}

func (r *fakeAuditoriumRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.auditoriums[id]; !ok {
		return fmt.Errorf("delete auditorium: %w", entity.ErrNotFound)
	}
	for _, schedule := range r.store.schedules {
		if schedule.AuditoriumID == id {
			return fmt.Errorf("delete auditorium: %w", entity.ErrHasDependents)
		}
	}
	delete(r.store.auditoriums, id)
	return nil
}

// ---- account ----

type fakeAccountRepo struct{ store *fakeStore }

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *account
	r.store.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (r *fakeAccountRepo) FindByLoginName(_ context.Context, loginName string) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, account := range r.store.accounts {
		if account.LoginName == loginName {
			cp := *account
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var accounts []*entity.Account
	for _, account := range r.store.accounts {
		cp := *account
		accounts = append(accounts, &cp)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].CreatedAt.After(accounts[j].CreatedAt) })
	return paginate(accounts, limit, offset), nil
}

func (r *fakeAccountRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.accounts)), nil
}

func (r *fakeAccountRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return fmt.Errorf("set account active: %w", entity.ErrNotFound)
	}
	account.IsActive = active
	return nil
}

// ---- schedule ----

type fakeScheduleRepo struct{ store *fakeStore }

func (r *fakeScheduleRepo) Create(_ context.Context, schedule *entity.Schedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *schedule
	r.store.schedules[schedule.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	schedule, ok := r.store.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *schedule
	return &cp, nil
}

func (r *fakeScheduleRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var schedules []*entity.Schedule
	for _, schedule := range r.store.schedules {
		cp := *schedule
		schedules = append(schedules, &cp)
	}
	sort.Slice(schedules, func(i, j int) bool { return schedules[i].ShowTime.Before(schedules[j].ShowTime) })
	return paginate(schedules, limit, offset), nil
}

func (r *fakeScheduleRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.schedules)), nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, schedule *entity.Schedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.schedules[schedule.ID]; !ok {
		return fmt.Errorf("update schedule: %w", entity.ErrNotFound)
	}
	cp := *schedule
	r.store.schedules[schedule.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.schedules[id]; !ok {
		return fmt.Errorf("delete schedule: %w", entity.ErrNotFound)
	}
	// Mirrors the foreign key from bookings: referencing rows in any
	// status block the delete at the storage layer.
	for _, booking := range r.store.bookings {
		if booking.ScheduleID == id {
			return fmt.Errorf("delete schedule: %w", entity.ErrHasDependents)
		}
	}
	delete(r.store.schedules, id)
	return nil
}

// ---- booking ----

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) CreateActive(_ context.Context, booking *entity.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.bookings {
		if existing.Status == entity.BookingStatusActive &&
			existing.ScheduleID == booking.ScheduleID &&
			existing.SeatCode == booking.SeatCode {
			return fmt.Errorf("create booking: %w", entity.ErrSeatTaken)
		}
	}
	cp := *booking
	r.store.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) MoveSlot(_ context.Context, id, scheduleID uuid.UUID, seatCode string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return fmt.Errorf("move booking: %w", entity.ErrNotFound)
	}
	for _, existing := range r.store.bookings {
		if existing.ID != id &&
			existing.Status == entity.BookingStatusActive &&
			existing.ScheduleID == scheduleID &&
			existing.SeatCode == seatCode &&
			booking.Status == entity.BookingStatusActive {
			return fmt.Errorf("move booking: %w", entity.ErrSeatTaken)
		}
	}
	booking.ScheduleID = scheduleID
	booking.SeatCode = seatCode
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return fmt.Errorf("update booking status: %w", entity.ErrNotFound)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.store.bookings {
		cp := *booking
		bookings = append(bookings, &cp)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookedAt.After(bookings[j].BookedAt) })
	return paginate(bookings, limit, offset), nil
}

func (r *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.bookings)), nil
}

func (r *fakeBookingRepo) FindByAccountID(_ context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.store.bookings {
		if booking.AccountID == accountID {
			cp := *booking
			bookings = append(bookings, &cp)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookedAt.After(bookings[j].BookedAt) })
	return paginate(bookings, limit, offset), nil
}

func (r *fakeBookingRepo) FindByScheduleID(_ context.Context, scheduleID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.store.bookings {
		if booking.ScheduleID == scheduleID {
			cp := *booking
			bookings = append(bookings, &cp)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookedAt.Before(bookings[j].BookedAt) })
	return paginate(bookings, limit, offset), nil
}

func (r *fakeBookingRepo) CountByScheduleID(_ context.Context, scheduleID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, booking := range r.store.bookings {
		if booking.ScheduleID == scheduleID {
			count++
		}
	}
	return count, nil
}

// ---- payment ----

type fakePaymentRepo struct{ store *fakeStore }

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if payment.Status == entity.PaymentStatusSuccess {
		for _, existing := range r.store.payments {
			if existing.Status == entity.PaymentStatusSuccess && existing.BookingID == payment.BookingID {
				return fmt.Errorf("create payment: %w", entity.ErrAlreadyPaid)
			}
		}
	}
	cp := *payment
	r.store.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.payments[payment.ID]; !ok {
		return fmt.Errorf("update payment: %w", entity.ErrNotFound)
	}
	if payment.Status == entity.PaymentStatusSuccess {
		for _, existing := range r.store.payments {
			if existing.ID != payment.ID &&
				existing.Status == entity.PaymentStatusSuccess &&
				existing.BookingID == payment.BookingID {
				return fmt.Errorf("update payment: %w", entity.ErrAlreadyPaid)
			}
		}
	}
	cp := *payment
	r.store.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payment, ok := r.store.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *payment
	return &cp, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payments := r.collectLocked(func(*entity.Payment) bool { return true })
	return paginate(payments, limit, offset), nil
}

func (r *fakePaymentRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.payments)), nil
}

func (r *fakePaymentRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) ([]*entity.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.collectLocked(func(p *entity.Payment) bool { return p.AccountID == accountID }), nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.collectLocked(func(p *entity.Payment) bool { return p.BookingID == bookingID }), nil
}

// collectLocked returns matching payments newest first, mirroring the
// recorded_at DESC ordering of the real queries.
func (r *fakePaymentRepo) collectLocked(match func(*entity.Payment) bool) []*entity.Payment {
	var payments []*entity.Payment
	for _, payment := range r.store.payments {
		if match(payment) {
			cp := *payment
			payments = append(payments, &cp)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].RecordedAt.After(payments[j].RecordedAt) })
	return payments
}

// ---- consistency ----

type fakeConsistencyRepo struct{ store *fakeStore }

func (r *fakeConsistencyRepo) Exists(_ context.Context, kind repository.EntityKind, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	switch kind {
	case repository.KindFilm:
		_, ok := r.store.films[id]
		return ok, nil
	case repository.KindAuditorium:
		_, ok := r.store.auditoriums[id]
		return ok, nil
	case repository.KindAccount:
		_, ok := r.store.accounts[id]
		return ok, nil
	case repository.KindSchedule:
		_, ok := r.store.schedules[id]
		return ok, nil
	case repository.KindBooking:
		_, ok := r.store.bookings[id]
		return ok, nil
	case repository.KindPayment:
		_, ok := r.store.payments[id]
		return ok, nil
	}
	return false, fmt.Errorf("unknown entity kind %q", kind)
}

func (r *fakeConsistencyRepo) SeatFree(_ context.Context, scheduleID uuid.UUID, seatCode string, excludeBookingID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, booking := range r.store.bookings {
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if booking.Status == entity.BookingStatusActive &&
			booking.ScheduleID == scheduleID &&
			booking.SeatCode == seatCode {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeConsistencyRepo) NoSuccessfulPayment(_ context.Context, bookingID uuid.UUID, excludePaymentID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, payment := range r.store.payments {
		if excludePaymentID != nil && payment.ID == *excludePaymentID {
			continue
		}
		if payment.Status == entity.PaymentStatusSuccess && payment.BookingID == bookingID {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeConsistencyRepo) ScheduleHasBookings(_ context.Context, scheduleID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, booking := range r.store.bookings {
		if booking.ScheduleID == scheduleID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConsistencyRepo) FilmHasSchedules(_ context.Context, filmID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, schedule := range r.store.schedules {
		if schedule.FilmID == filmID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConsistencyRepo) AuditoriumHasSchedules(_ context.Context, auditoriumID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, schedule := range r.store.schedules {
		if schedule.AuditoriumID == auditoriumID {
			return true, nil
		}
	}
	return false, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

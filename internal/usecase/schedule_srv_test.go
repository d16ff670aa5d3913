package usecase

import (
	"context"
	"testing"
	"time"

	"screening-booking/internal/data/entity"
	"screening-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleServiceForTest(store *fakeStore, now time.Time) *scheduleService {
	svc := NewScheduleService(newFakeRepository(store), zap.NewNop()).(*scheduleService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateSchedule(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	svc := newScheduleServiceForTest(store, now)

	detail, err := svc.CreateSchedule(context.Background(), &request.ScheduleRequest{
		AuditoriumID: auditorium.ID.String(),
		FilmID:       film.ID.String(),
		ShowTime:     now.Add(2 * time.Hour),
		Price:        45000,
	})
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, film.Title, detail.Film.Title)
	assert.Equal(t, auditorium.Name, detail.Auditorium.Name)
	assert.Equal(t, 45000.0, detail.Price)
}

func TestCreateScheduleShowTimeMustBeFuture(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	svc := newScheduleServiceForTest(store, now)

	cases := []struct {
		name     string
		showTime time.Time
		wantErr  error
	}{
		{"past", now.Add(-time.Hour), entity.ErrShowTimeInPast},
		{"exactly now", now, entity.ErrShowTimeInPast},
		{"one second ahead", now.Add(time.Second), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSchedule(context.Background(), &request.ScheduleRequest{
				AuditoriumID: auditorium.ID.String(),
				FilmID:       film.ID.String(),
				ShowTime:     tc.showTime,
				Price:        45000,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateScheduleRejectsBadPrice(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	svc := newScheduleServiceForTest(store, now)

	for _, price := range []float64{0, -100} {
		_, err := svc.CreateSchedule(context.Background(), &request.ScheduleRequest{
			AuditoriumID: auditorium.ID.String(),
			FilmID:       film.ID.String(),
			ShowTime:     now.Add(time.Hour),
			Price:        price,
		})
		assert.ErrorIs(t, err, entity.ErrInvalidAmount)
	}
}

func TestCreateScheduleUnknownReferences(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	svc := newScheduleServiceForTest(store, now)

	_, err := svc.CreateSchedule(context.Background(), &request.ScheduleRequest{
		AuditoriumID: auditorium.ID.String(),
		FilmID:       uuid.New().String(),
		ShowTime:     now.Add(time.Hour),
		Price:        45000,
	})
	assert.ErrorIs(t, err, entity.ErrReferenceNotFound)

	_, err = svc.CreateSchedule(context.Background(), &request.ScheduleRequest{
		AuditoriumID: uuid.New().String(),
		FilmID:       film.ID.String(),
		ShowTime:     now.Add(time.Hour),
		Price:        45000,
	})
	assert.ErrorIs(t, err, entity.ErrReferenceNotFound)
}

func TestUpdateScheduleRevalidatesShowTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	schedule := store.seedSchedule(film.ID, auditorium.ID, now.Add(time.Hour))
	svc := newScheduleServiceForTest(store, now)

	_, err := svc.UpdateSchedule(context.Background(), schedule.ID.String(), &request.ScheduleRequest{
		AuditoriumID: auditorium.ID.String(),
		FilmID:       film.ID.String(),
		ShowTime:     now.Add(-time.Minute),
		Price:        45000,
	})
	assert.ErrorIs(t, err, entity.ErrShowTimeInPast)
}

func TestUpdateScheduleNotFound(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	svc := newScheduleServiceForTest(store, now)

	_, err := svc.UpdateSchedule(context.Background(), uuid.New().String(), &request.ScheduleRequest{
		AuditoriumID: auditorium.ID.String(),
		FilmID:       film.ID.String(),
		ShowTime:     now.Add(time.Hour),
		Price:        45000,
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteScheduleBlockedByBookings(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	account := store.seedAccount("alice")
	schedule := store.seedSchedule(film.ID, auditorium.ID, now.Add(time.Hour))
	store.seedBooking(schedule.ID, account.ID, "A1", entity.BookingStatusActive)
	svc := newScheduleServiceForTest(store, now)

	err := svc.DeleteSchedule(context.Background(), schedule.ID.String())
	assert.ErrorIs(t, err, entity.ErrHasDependents)

	// The schedule must survive the rejected delete.
	got, gerr := svc.GetScheduleByID(context.Background(), schedule.ID.String())
	require.NoError(t, gerr)
	assert.Equal(t, schedule.ID.String(), got.ID)
}

func TestDeleteScheduleBlockedByCancelledBookings(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	account := store.seedAccount("alice")
	schedule := store.seedSchedule(film.ID, auditorium.ID, now.Add(time.Hour))
	store.seedBooking(schedule.ID, account.ID, "A1", entity.BookingStatusCancelled)
	svc := newScheduleServiceForTest(store, now)

	// A cancelled booking still references the schedule, so the delete
	// conflicts just like an active one would.
	err := svc.DeleteSchedule(context.Background(), schedule.ID.String())
	assert.ErrorIs(t, err, entity.ErrHasDependents)
}

func TestDeleteScheduleWithoutBookings(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	film := store.seedFilm("Interstellar")
	auditorium := store.seedAuditorium("Studio 1", 120)
	schedule := store.seedSchedule(film.ID, auditorium.ID, now.Add(time.Hour))
	svc := newScheduleServiceForTest(store, now)

	require.NoError(t, svc.DeleteSchedule(context.Background(), schedule.ID.String()))

	_, err := svc.GetScheduleByID(context.Background(), schedule.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"screening-booking/internal/data/entity"
	"screening-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func registerRequest(loginName string) *request.RegisterAccountRequest {
	return &request.RegisterAccountRequest{
		DisplayName: "Erin Tester",
		Email:       loginName + "@example.com",
		LoginName:   loginName,
		Password:    "correct-horse",
		Role:        "customer",
	}
}

func TestRegisterAccount(t *testing.T) {
	store := newFakeStore()
	svc := NewAccountService(newFakeRepository(store), zap.NewNop())

	account, err := svc.Register(context.Background(), registerRequest("erin"))
	require.NoError(t, err)

	assert.Equal(t, "erin", account.LoginName)
	assert.True(t, account.IsActive)

	// The stored secret is hashed, never the raw password.
	stored := mustFindAccount(t, store, "erin")
	assert.NotEqual(t, "correct-horse", stored.SecretHash)
	assert.NotEmpty(t, stored.SecretHash)
}

func TestRegisterDuplicateLoginName(t *testing.T) {
	store := newFakeStore()
	svc := NewAccountService(newFakeRepository(store), zap.NewNop())

	_, err := svc.Register(context.Background(), registerRequest("frank"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("frank"))
	assert.ErrorIs(t, err, entity.ErrLoginNameTaken)
}

func TestDeactivateAccount(t *testing.T) {
	store := newFakeStore()
	account := store.seedAccount("gina")
	svc := NewAccountService(newFakeRepository(store), zap.NewNop())

	require.NoError(t, svc.DeactivateAccount(context.Background(), account.ID.String()))

	got, err := svc.GetAccountByID(context.Background(), account.ID.String())
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestDeleteFilmBlockedBySchedules(t *testing.T) {
	store := newFakeStore()
	film := store.seedFilm("Arrival")
	auditorium := store.seedAuditorium("Studio 4", 60)
	store.seedSchedule(film.ID, auditorium.ID, time.Now().Add(time.Hour))

	films := NewFilmService(newFakeRepository(store), zap.NewNop())
	err := films.DeleteFilm(context.Background(), film.ID.String())
	assert.ErrorIs(t, err, entity.ErrHasDependents)

	auditoriums := NewAuditoriumService(newFakeRepository(store), zap.NewNop())
	err = auditoriums.DeleteAuditorium(context.Background(), auditorium.ID.String())
	assert.ErrorIs(t, err, entity.ErrHasDependents)
}

func TestDeleteUnreferencedCatalogRows(t *testing.T) {
	store := newFakeStore()
	film := store.seedFilm("Arrival")
	auditorium := store.seedAuditorium("Studio 4", 60)

	films := NewFilmService(newFakeRepository(store), zap.NewNop())
	assert.NoError(t, films.DeleteFilm(context.Background(), film.ID.String()))

	auditoriums := NewAuditoriumService(newFakeRepository(store), zap.NewNop())
	assert.NoError(t, auditoriums.DeleteAuditorium(context.Background(), auditorium.ID.String()))
}

func mustFindAccount(t *testing.T, store *fakeStore, loginName string) *entity.Account {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, account := range store.accounts {
		if account.LoginName == loginName {
			return account
		}
	}
	t.Fatalf("account %s not registered", loginName)
	return nil
}

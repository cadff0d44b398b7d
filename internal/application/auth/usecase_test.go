package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUsers struct {
	byName   map[string]*entity.User
	touched  []int64
	created  []*entity.User
	password map[int64]string
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.byName[username], nil
}

func (f *fakeUsers) Create(ctx context.Context, u *entity.User) error {
	u.ID = 100
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsers) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if f.password == nil {
		f.password = map[int64]string{}
	}
	f.password[id] = hash
	return nil
}

func (f *fakeUsers) TouchLastLogin(ctx context.Context, id int64) error {
	f.touched = append(f.touched, id)
	return nil
}

type fakeHistory struct {
	entries []string
}

func (f *fakeHistory) Create(ctx context.Context, actorID int64, logType string) error {
	f.entries = append(f.entries, logType)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, limit, offset int) ([]*entity.HistoryLog, error) {
	return nil, nil
}

func (f *fakeHistory) Count(ctx context.Context) (int, error) { return len(f.entries), nil }

type fakeStore struct {
	revoked  map[string]time.Duration
	attempts map[string]int
	limit    int
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{revoked: map[string]time.Duration{}, attempts: map[string]int{}, limit: 5}
}

func (f *fakeStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	f.revoked[id] = ttl
	return nil
}

func (f *fakeStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[id]
	return ok, nil
}

func (f *fakeStore) AllowLogin(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.attempts[key]++
	return f.attempts[key] <= f.limit, nil
}

func newUsers(t *testing.T) *fakeUsers {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	return &fakeUsers{byName: map[string]*entity.User{
		"maria": {ID: 7, Username: "maria", PasswordHash: hash, FullName: "María Gómez", IsActive: true},
		"pedro": {ID: 8, Username: "pedro", PasswordHash: hash, IsActive: false},
	}}
}

func newUC(users *fakeUsers, history *fakeHistory, store SessionStore) *AuthUseCase {
	return NewAuthUseCase(users, history, store, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}, nil)
}

func TestLogin_OK(t *testing.T) {
	users := newUsers(t)
	history := &fakeHistory{}
	uc := newUC(users, history, nil)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: " maria ", Password: "correct-horse"}, "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, []int64{7}, users.touched)
	assert.Equal(t, []string{entity.LogTypeLogin}, history.entries)

	actor, err := uc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), actor.UserID)
	assert.Equal(t, "maria", actor.Username)
	assert.NotEmpty(t, actor.SessionID)
}

func TestLogin_Errores(t *testing.T) {
	uc := newUC(newUsers(t), &fakeHistory{}, nil)

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"usuario inexistente", "nadie", "correct-horse", domain.ErrAuthentication},
		{"password incorrecto", "maria", "wrong", domain.ErrAuthentication},
		{"campos vacíos", "", "", domain.ErrAuthentication},
		{"cuenta inactiva", "pedro", "correct-horse", domain.ErrInactiveAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), dto.LoginRequest{Username: tt.username, Password: tt.password}, "10.0.0.1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLogin_LimiteDeIntentos(t *testing.T) {
	store := newFakeStore()
	store.limit = 2
	uc := newUC(newUsers(t), &fakeHistory{}, store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "wrong"}, "10.0.0.1")
		assert.ErrorIs(t, err, domain.ErrAuthentication)
	}
	_, err := uc.Login(ctx, dto.LoginRequest{Username: "MARIA", Password: "correct-horse"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "correct-horse"}, "10.0.0.2")
	assert.NoError(t, err, "otra IP tiene su propio contador")
}

func TestLogin_StoreCaidoNoBloquea(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("dial tcp: connection refused")
	uc := newUC(newUsers(t), &fakeHistory{}, store)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "correct-horse"}, "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.Authenticate(context.Background(), resp.Token)
	assert.NoError(t, err)
}

func TestLogout_RevocaSesion(t *testing.T) {
	store := newFakeStore()
	history := &fakeHistory{}
	uc := newUC(newUsers(t), history, store)
	ctx := context.Background()

	resp, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "correct-horse"}, "10.0.0.1")
	require.NoError(t, err)
	actor, err := uc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, *actor))

	ttl, ok := store.revoked[actor.SessionID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
	assert.Equal(t, []string{entity.LogTypeLogin, entity.LogTypeLogout}, history.entries)

	_, err = uc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc := newUC(newUsers(t), &fakeHistory{}, nil)

	_, err := uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureUser(t *testing.T) {
	users := newUsers(t)
	uc := newUC(users, &fakeHistory{}, nil)
	ctx := context.Background()

	u, created, err := uc.EnsureUser(ctx, "lucia", "s3cret-pass", "Lucía")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(100), u.ID)
	assert.True(t, u.IsActive)

	u, created, err = uc.EnsureUser(ctx, "maria", "nuevo-password", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.NotEmpty(t, users.password[7])
	assert.Equal(t, users.password[7], u.PasswordHash)

	_, _, err = uc.EnsureUser(ctx, "x", "corto", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

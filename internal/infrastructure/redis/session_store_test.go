package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/pkg/config"
)

type expireCall struct {
	key string
	ttl time.Duration
}

type mockCmdable struct {
	data        map[string]time.Duration
	incr        map[string]int64
	expireCalls []expireCall
	err         error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: map[string]time.Duration{}, incr: map[string]int64{}}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.err)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = expiration
	return redis.NewStatusResult("OK", m.err)
}

func (m *mockCmdable) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, m.err)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, expireCall{key: key, ttl: expiration})
	return redis.NewBoolResult(true, nil)
}

func newTestStore(m *mockCmdable) *SessionStore {
	return &SessionStore{store: m, limit: 2, win: time.Minute}
}

func TestRevokeAndIsRevoked(t *testing.T) {
	ctx := context.Background()
	m := newMockCmdable()
	s := newTestStore(m)

	revoked, err := s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "abc", 30*time.Minute))
	assert.Equal(t, 30*time.Minute, m.data["inv:revoked:abc"])

	revoked, err = s.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevoke_TTLVencidoNoEscribe(t *testing.T) {
	m := newMockCmdable()
	s := newTestStore(m)
	require.NoError(t, s.Revoke(context.Background(), "abc", 0))
	assert.Empty(t, m.data)
}

func TestAllowLogin_VentanaFija(t *testing.T) {
	ctx := context.Background()
	m := newMockCmdable()
	s := newTestStore(m)

	for i := 0; i < 2; i++ {
		ok, err := s.AllowLogin(ctx, "login:maria:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := s.AllowLogin(ctx, "login:maria:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, m.expireCalls, 1, "el TTL se fija solo en el primer intento")
	assert.Equal(t, "inv:rate_limit:login:maria:10.0.0.1", m.expireCalls[0].key)
	assert.Equal(t, time.Minute, m.expireCalls[0].ttl)
}

func TestAllowLogin_ErrorDeRedis(t *testing.T) {
	m := newMockCmdable()
	m.err = errors.New("connection refused")
	s := newTestStore(m)

	ok, err := s.AllowLogin(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestOptionsFromConfig(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)

	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", DB: 2})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = optionsFromConfig(config.RedisConfig{URL: "redis://:secret@cache:6380/1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/mobile-inventory/internal/application/auth"
	"github.com/jhoicas/mobile-inventory/pkg/config"
)

const (
	keyNamespace    = "inv"
	revokedPrefix   = "revoked"
	rateLimitPrefix = "rate_limit"

	// LoginLimit intentos de login permitidos por ventana y clave (usuario + IP).
	LoginLimit  = 5
	LoginWindow = time.Minute
)

var _ auth.SessionStore = (*SessionStore)(nil)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Exists(context.Context, ...string) *redis.IntCmd
	Incr(context.Context, string) *redis.IntCmd
	Expire(context.Context, string, time.Duration) *redis.BoolCmd
}

// SessionStore sesiones revocadas y contador de intentos de login sobre Redis.
type SessionStore struct {
	store cmdable
	raw   *redis.Client
	limit int64
	win   time.Duration
}

// New conecta con Redis y verifica la conexión con PING.
func New(ctx context.Context, cfg config.RedisConfig) (*SessionStore, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &SessionStore{store: raw, raw: raw, limit: LoginLimit, win: LoginWindow}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis url or address is required")
	}
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		if opts.DB == 0 {
			opts.DB = cfg.DB
		}
		return opts, nil
	}
	return &redis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}, nil
}

// Revoke marca la sesión como cerrada hasta que el token expire.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.store.Set(ctx, s.buildKey(revokedPrefix, sessionID), 1, ttl).Err()
}

func (s *SessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.store.Exists(ctx, s.buildKey(revokedPrefix, sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AllowLogin ventana fija: INCR y EXPIRE en el primer intento.
func (s *SessionStore) AllowLogin(ctx context.Context, key string) (bool, error) {
	allowed, _, err := s.FixedWindowAllow(ctx, key, s.limit, s.win)
	return allowed, err
}

// FixedWindowAllow aplica un límite simple de ventana fija.
func (s *SessionStore) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	key := s.buildKey(rateLimitPrefix, scope)
	count, err := s.store.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if window > 0 && count == 1 {
		if err := s.store.Expire(ctx, key, window).Err(); err != nil {
			return false, count, err
		}
	}
	return count <= limit, count, nil
}

// Ping verifica la conexión (health check).
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.store.Ping(ctx).Err()
}

func (s *SessionStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *SessionStore) buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}

package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
	"github.com/jhoicas/mobile-inventory/pkg/jwt"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

// MinPasswordLength largo mínimo de contraseña al crear o resetear usuarios.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionStore revocación de sesiones y límite de intentos de login.
// Es opcional: sin store el logout solo borra la cookie y no hay límite de intentos.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	AllowLogin(ctx context.Context, key string) (bool, error)
}

// AuthUseCase casos de uso de sesión: login, logout y validación del token por petición.
type AuthUseCase struct {
	userRepo repository.UserRepository
	history  repository.HistoryLogRepository
	store    SessionStore
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. store puede ser nil.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	history repository.HistoryLogRepository,
	store SessionStore,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo: userRepo,
		history:  history,
		store:    store,
		jwtCfg:   jwtCfg,
		log:      log.Named("auth"),
		now:      time.Now,
	}
}

// Login verifica usuario/password, genera JWT y registra la entrada en el historial.
// Usuario inexistente o password incorrecto devuelven el mismo domain.ErrAuthentication.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, clientIP string) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrAuthentication
	}
	if uc.store != nil {
		ok, err := uc.store.AllowLogin(ctx, "login:"+strings.ToLower(username)+":"+clientIP)
		if err != nil {
			uc.log.Warn().Err(err).Msg("login rate limit unavailable")
		} else if !ok {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAuthentication
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthentication
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}

	token, sess, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		uc.log.Warn().Err(err).Int64("user_id", user.ID).Msg("last login update failed")
	}
	uc.logHistory(ctx, user.ID, entity.LogTypeLogin)
	uc.log.Info().Int64("user_id", user.ID).Str("ip", clientIP).Msg("login")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
		},
	}, nil
}

// Logout revoca la sesión hasta su vencimiento y registra la salida en el historial.
func (uc *AuthUseCase) Logout(ctx context.Context, actor entity.Actor) error {
	if uc.store != nil && actor.SessionID != "" {
		ttl := actor.ExpiresAt.Sub(uc.now())
		if ttl > 0 {
			if err := uc.store.Revoke(ctx, actor.SessionID, ttl); err != nil {
				return err
			}
		}
	}
	uc.logHistory(ctx, actor.UserID, entity.LogTypeLogout)
	return nil
}

// Authenticate valida el token de la petición y devuelve el actor.
// Si el store no responde la sesión se acepta (se registra un warning).
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Actor, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	sess, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if uc.store != nil {
		revoked, err := uc.store.IsRevoked(ctx, sess.ID)
		if err != nil {
			uc.log.Warn().Err(err).Msg("session revocation check unavailable")
		} else if revoked {
			return nil, domain.ErrUnauthorized
		}
	}
	return &entity.Actor{
		UserID:    sess.UserID,
		Username:  sess.Username,
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// EnsureUser crea el usuario o, si ya existe, le resetea la contraseña y lo deja activo.
func (uc *AuthUseCase) EnsureUser(ctx context.Context, username, password, fullName string) (*entity.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < MinPasswordLength {
		return nil, false, domain.ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if err := uc.userRepo.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return nil, false, err
		}
		existing.PasswordHash = hash
		existing.IsActive = true
		return existing, false, nil
	}
	u := &entity.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		IsActive:     true,
		CreatedAt:    uc.now(),
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// HashPassword hash bcrypt con el costo por defecto.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password vacío")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (uc *AuthUseCase) logHistory(ctx context.Context, userID int64, logType string) {
	if uc.history == nil {
		return
	}
	if err := uc.history.Create(ctx, userID, logType); err != nil {
		uc.log.Warn().Err(err).Str("log_type", logType).Msg("history log write failed")
	}
}

package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// SessionCookie nombre de la cookie con el token de sesión.
const SessionCookie = "session"

// LocalActor key de c.Locals con el entity.Actor autenticado.
const LocalActor = "actor"

type actorKey struct{}

// Authenticator valida el token de sesión (lo implementa *auth.AuthUseCase).
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Actor, error)
}

// AuthMiddleware exige sesión válida: cookie "session" o header Authorization: Bearer <token>.
// Sin sesión, las páginas redirigen a /login y las peticiones JSON reciben 401.
// El actor queda en c.Locals(LocalActor) y en el UserContext de la petición.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return unauthenticated(c, "MISSING_TOKEN", "sesión requerida")
		}
		actor, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return unauthenticated(c, "INVALID_TOKEN", "sesión inválida o expirada")
		}
		c.Locals(LocalActor, *actor)
		c.SetUserContext(WithActor(c.UserContext(), *actor))
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

func unauthenticated(c *fiber.Ctx, code, msg string) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// WithActor guarda el actor en el contexto de la petición.
func WithActor(ctx context.Context, a entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext devuelve el actor guardado por AuthMiddleware.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(entity.Actor)
	return a, ok
}

// GetActor devuelve el actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) entity.Actor {
	a, _ := c.Locals(LocalActor).(entity.Actor)
	return a
}

// wantsJSON rutas /api y clientes que piden Accept: application/json.
func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

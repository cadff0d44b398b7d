package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// loginFailedMessage mensaje único para usuario inexistente o password incorrecto.
const loginFailedMessage = "Invalid username or password"

// AuthService operaciones de sesión que usa el handler (las implementa *auth.AuthUseCase).
type AuthService interface {
	Authenticator
	Login(ctx context.Context, in dto.LoginRequest, clientIP string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, actor entity.Actor) error
}

// AuthHandler login y logout.
type AuthHandler struct {
	uc           AuthService
	secureCookie bool
}

// NewAuthHandler construye el handler. secureCookie marca la cookie de sesión como Secure.
func NewAuthHandler(uc AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, secureCookie: secureCookie}
}

// LoginPage muestra el formulario. Con sesión válida redirige al dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if tok := c.Cookies(SessionCookie); tok != "" {
		if _, err := h.uc.Authenticate(c.UserContext(), tok); err == nil {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
	}
	return c.Render("login", fiber.Map{"Title": "Log in", "Username": ""}, layout)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Acepta formulario (redirige al dashboard y deja la cookie de sesión) o JSON (devuelve el token).
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json,html
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginFailed(c, in, err)
	}
	out, err := h.uc.Login(c.UserContext(), in, c.IP())
	if err != nil {
		return h.loginFailed(c, in, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if wantsJSON(c) {
		return c.JSON(out)
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, in dto.LoginRequest, err error) error {
	status, code := ErrorStatus(err)
	msg := loginFailedMessage
	switch {
	case errors.Is(err, domain.ErrInactiveAccount):
		msg = "This account is inactive"
	case errors.Is(err, domain.ErrTooManyAttempts):
		msg = "Too many login attempts, try again in a minute"
	case status == fiber.StatusInternalServerError:
		return writeError(c, err)
	default:
		status, code = fiber.StatusUnauthorized, "AUTHENTICATION"
	}

	if wantsJSON(c) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	if status == fiber.StatusTooManyRequests {
		c.Status(status)
	}
	return c.Render("login", fiber.Map{"Title": "Log in", "Error": msg, "Username": in.Username}, layout)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetActor(c)); err != nil {
		return writeError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

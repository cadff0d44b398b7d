package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/internal/application/auth"
	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/application/report"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
	apphttp "github.com/jhoicas/mobile-inventory/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// fakeAuthn acepta solo el token "good".
type fakeAuthn struct{}

func (fakeAuthn) Authenticate(ctx context.Context, token string) (*entity.Actor, error) {
	if token != "good" {
		return nil, domain.ErrUnauthorized
	}
	return &entity.Actor{UserID: 7, Username: "maria", SessionID: "s-1"}, nil
}

func buildProtectedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	handler := func(c *fiber.Ctx) error {
		fromCtx, _ := apphttp.ActorFromContext(c.UserContext())
		return c.JSON(fiber.Map{"user": apphttp.GetActor(c).Username, "ctx_user": fromCtx.Username})
	}
	app.Get("/dashboard", apphttp.AuthMiddleware(fakeAuthn{}), handler)
	app.Get("/api/withdrawals", apphttp.AuthMiddleware(fakeAuthn{}), handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_PaginaSinSesionRedirigeALogin(t *testing.T) {
	resp := doRequest(t, buildProtectedApp(), httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddleware_APISinSesionDevuelve401(t *testing.T) {
	resp := doRequest(t, buildProtectedApp(), httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil))
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_AcceptJSONDevuelve401(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "expired"})

	resp := doRequest(t, buildProtectedApp(), req)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_SesionValida(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "good"}) }},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil)
			tt.setup(req)
			resp := doRequest(t, buildProtectedApp(), req)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body map[string]string
			decodeBody(t, resp, &body)
			assert.Equal(t, "maria", body["user"])
			assert.Equal(t, "maria", body["ctx_user"])
		})
	}
}

func TestAuthMiddleware_BearerMalFormado(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil)
	req.Header.Set("Authorization", "Token good")
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "good"})

	resp := doRequest(t, buildProtectedApp(), req)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, 404, "NOT_FOUND"},
		{fmt.Errorf("%w: stock negativo", domain.ErrInvalidQuantity), 422, "INVALID_QUANTITY"},
		{fmt.Errorf("%w: tipo de ítem %q", domain.ErrInvalidInput, "x"), 400, "VALIDATION"},
		{domain.ErrConflict, 409, "CONFLICT"},
		{domain.ErrAuthentication, 401, "AUTHENTICATION"},
		{domain.ErrInactiveAccount, 403, "INACTIVE_ACCOUNT"},
		{domain.ErrTooManyAttempts, 429, "TOO_MANY_ATTEMPTS"},
		{fmt.Errorf("%w: timeout", domain.ErrUpstreamUnavailable), 503, "UPSTREAM_UNAVAILABLE"},
		{errors.New("boom"), 500, "INTERNAL"},
	}
	for _, tt := range tests {
		status, code := apphttp.ErrorStatus(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte mensual
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	rows []repository.MonthlyTotal
	err  error
}

func (f *fakeReportRepo) MonthlyTotals(ctx context.Context, limit int) ([]repository.MonthlyTotal, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func buildReportApp(repo repository.ReportRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	h := apphttp.NewReportHandler(report.NewMonthlyReportUseCase(repo, nil, 12, nil))
	app.Get("/monthly-report/data", apphttp.AuthMiddleware(fakeAuthn{}), h.Data)
	return app
}

func reportRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/monthly-report/data?months=6", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer good")
	return req
}

func TestMonthlyReportData_OK(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(1200), Expenses: decimal.NewFromInt(1000)},
		{Month: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(400)},
	}}
	resp := doRequest(t, buildReportApp(repo), reportRequest())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.MonthlyReportDTO
	decodeBody(t, resp, &body)
	require.Len(t, body.MonthlyData, 2)
	assert.Equal(t, "2024-02", body.MonthlyData[0].Month)
	assert.True(t, body.MonthlyData[0].Profit.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, body.MonthlyData[0].ProfitChange)
	assert.True(t, body.MonthlyData[0].ProfitChange.Equal(decimal.NewFromInt(-400)))
	assert.Nil(t, body.MonthlyData[1].RevenueChange)
	assert.True(t, body.Summary.TotalRevenue.Equal(decimal.NewFromInt(2200)))
}

func TestMonthlyReportData_BaseCaidaDevuelve503(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")}
	resp := doRequest(t, buildReportApp(repo), reportRequest())
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	byName map[string]*entity.User
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.byName[strings.ToLower(username)], nil
}
func (f *fakeUsers) Create(ctx context.Context, u *entity.User) error                 { return nil }
func (f *fakeUsers) UpdatePassword(ctx context.Context, id int64, hash string) error { return nil }
func (f *fakeUsers) TouchLastLogin(ctx context.Context, id int64) error              { return nil }

type fakeHistory struct{}

func (fakeHistory) Create(ctx context.Context, actorID int64, logType string) error { return nil }
func (fakeHistory) List(ctx context.Context, limit, offset int) ([]*entity.HistoryLog, error) {
	return nil, nil
}
func (fakeHistory) Count(ctx context.Context) (int, error) { return 0, nil }

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	users := &fakeUsers{byName: map[string]*entity.User{
		"maria": {ID: 7, Username: "maria", PasswordHash: hash, IsActive: true},
	}}
	uc := auth.NewAuthUseCase(users, fakeHistory{}, nil, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "test"}, nil)

	app := fiber.New(fiber.Config{Views: apphttp.NewViews(), ErrorHandler: apphttp.ErrorHandler})
	h := apphttp.NewAuthHandler(uc, false)
	app.Get("/login", h.LoginPage)
	app.Post("/login", h.Login)
	return app
}

func loginForm(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin_FormularioOK(t *testing.T) {
	resp := doRequest(t, buildLoginApp(t), loginForm("maria", "correct-horse"))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
}

func TestLogin_FormularioCredencialesInvalidas(t *testing.T) {
	app := buildLoginApp(t)

	for _, username := range []string{"maria", "nadie"} {
		resp := doRequest(t, app, loginForm(username, "wrong"))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Invalid username or password")
		assert.Empty(t, resp.Cookies())
	}
}

func TestLogin_JSON(t *testing.T) {
	app := buildLoginApp(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"maria","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp := doRequest(t, app, req)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "AUTHENTICATION", errBody.Code)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"maria","password":"correct-horse"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp = doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decodeBody(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(7), out.User.ID)
}

func TestLoginPage_Renderiza(t *testing.T) {
	resp := doRequest(t, buildLoginApp(t), httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `action="/login"`)
	assert.NotContains(t, string(body), "Log out")
}

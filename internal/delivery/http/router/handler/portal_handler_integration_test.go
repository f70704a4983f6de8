package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medportal/config"
	httpmiddleware "medportal/internal/delivery/http/middleware"
	"medportal/internal/delivery/http/validator"
	"medportal/internal/infra/auth"
	"medportal/internal/infra/memstore"
	"medportal/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type portalFixture struct {
	echo    *echo.Echo
	portal  *PortalHandler
	admin   *AdminHandler
	authMid *httpmiddleware.AuthMiddleware
}

func newPortalFixture(t *testing.T) *portalFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memstore.NewAccountStore()
	hasher := auth.NewSHA256Hasher()

	registration := impl.NewRegistrationService(store, hasher, logger)
	authSvc := impl.NewAuthService(store, hasher, tokens, logger)
	directory := impl.NewDirectoryService(store, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return &portalFixture{
		echo:    e,
		portal:  NewPortalHandler(registration, authSvc, logger),
		admin:   NewAdminHandler(directory, logger),
		authMid: httpmiddleware.NewAuthMiddleware(tokens),
	}
}

func (f *portalFixture) do(t *testing.T, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

const validPatientBody = `{
	"firstName": "Alice",
	"lastName": "Nguyen",
	"username": "alice",
	"email": "a@b.com",
	"password": "abc123",
	"confirmPassword": "abc123",
	"addressLine1": "1 Main St",
	"city": "Springfield",
	"state": "IL",
	"postalCode": "62704",
	"termsAccepted": true
}`

func registerRoutes(f *portalFixture) {
	f.echo.POST("/auth/register/patient", f.portal.RegisterPatient)
	f.echo.POST("/auth/register/provider", f.portal.RegisterProvider)
	f.echo.POST("/auth/login", f.portal.Login)
	f.echo.GET("/portal/profile", f.portal.GetProfile, f.authMid.Authenticate)
	f.echo.GET("/admin/accounts/count", f.admin.CountAccounts)
}

func TestPortalHandler_RegisterPatient(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	rec := f.do(t, http.MethodPost, "/auth/register/patient", validPatientBody, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":1`)
	assert.Contains(t, body, `"a@b.com"`)
	assert.NotContains(t, body, "passwordDigest")
	assert.NotContains(t, body, "abc123")
}

func TestPortalHandler_RegisterDuplicate(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	first := f.do(t, http.MethodPost, "/auth/register/patient", validPatientBody, nil)
	require.Equal(t, http.StatusCreated, first.Code)

	second := f.do(t, http.MethodPost, "/auth/register/patient", validPatientBody, nil)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "DUPLICATE_ACCOUNT")

	// Store must be unchanged by the failed attempt.
	count := f.do(t, http.MethodGet, "/admin/accounts/count?role=patient", "", nil)
	assert.Equal(t, http.StatusOK, count.Code)
	assert.Contains(t, count.Body.String(), `"count":1`)
}

func TestPortalHandler_RegisterValidationErrors(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	rec := f.do(t, http.MethodPost, "/auth/register/patient", `{"email":"not-an-email"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "please enter a valid email address")
	assert.Contains(t, body, "firstName")
	assert.Contains(t, body, "postalCode")
}

func TestPortalHandler_LoginAndProfile(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	require.Equal(t, http.StatusCreated,
		f.do(t, http.MethodPost, "/auth/register/patient", validPatientBody, nil).Code)

	rec := f.do(t, http.MethodPost, "/auth/login",
		`{"role":"patient","email":"a@b.com","password":"abc123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	profile := f.do(t, http.MethodGet, "/portal/profile", "", header)
	assert.Equal(t, http.StatusOK, profile.Code)
	assert.Contains(t, profile.Body.String(), `"a@b.com"`)
}

func TestPortalHandler_LoginFailuresAreGeneric(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	require.Equal(t, http.StatusCreated,
		f.do(t, http.MethodPost, "/auth/register/patient", validPatientBody, nil).Code)

	wrongPassword := f.do(t, http.MethodPost, "/auth/login",
		`{"role":"patient","email":"a@b.com","password":"abc124"}`, nil)
	unknownEmail := f.do(t, http.MethodPost, "/auth/login",
		`{"role":"patient","email":"nobody@b.com","password":"abc123"}`, nil)
	wrongRole := f.do(t, http.MethodPost, "/auth/login",
		`{"role":"provider","email":"a@b.com","password":"abc123"}`, nil)

	for _, rec := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail, wrongRole} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	}

	// The three failure bodies are indistinguishable.
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, wrongPassword.Body.String(), wrongRole.Body.String())
}

func TestPortalHandler_ProfileRequiresToken(t *testing.T) {
	f := newPortalFixture(t)
	registerRoutes(f)

	missing := f.do(t, http.MethodGet, "/portal/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)

	header := http.Header{}
	header.Set("Authorization", "Bearer not-a-token")
	invalid := f.do(t, http.MethodGet, "/portal/profile", "", header)
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
}

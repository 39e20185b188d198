package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dealerdesk/backoffice-go/internal/domain/auth"
	"github.com/dealerdesk/backoffice-go/internal/domain/user"
	"github.com/dealerdesk/backoffice-go/internal/handler/http/middleware"
	"github.com/dealerdesk/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
}

type stubAuthService struct {
	loginResp auth.LoginResponse
	loginErr  error
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	return auth.RefreshResponse{}, auth.ErrInvalidToken
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	jwtService := newTestJWTService()

	refreshToken, refreshExp, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	handler := NewAuthHandler(jwtService, &stubAuthService{
		loginResp: auth.LoginResponse{
			AccessToken:  "access-token",
			RefreshToken: refreshToken,
			ExpiresAt:    refreshExp,
			UserID:       "user-1",
			Email:        "admin@example.com",
			Role:         "admin",
		},
	})

	body, _ := json.Marshal(auth.LoginRequest{Email: "admin@example.com", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			UserID      string `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.Equal(t, "user-1", envelope.Data.UserID)

	// Refresh token must travel as an HttpOnly cookie only
	assert.NotContains(t, rec.Body.String(), refreshToken)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	jwtService := newTestJWTService()
	handler := NewAuthHandler(jwtService, &stubAuthService{loginErr: auth.ErrInvalidCredentials})

	body, _ := json.Marshal(auth.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshWithoutCookie(t *testing.T) {
	jwtService := newTestJWTService()
	handler := NewAuthHandler(jwtService, &stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rec := httptest.NewRecorder()

	handler.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// protectedTestRouter wires the real auth middleware chain around a dummy
// admin-only endpoint.
func protectedTestRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Post("/admin-action", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func TestAdminOnlyMiddleware(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedTestRouter(jwtService)

	adminToken, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	staffToken, _, err := jwtService.GenerateAccessToken("user-2", "staff@example.com", user.RoleStaff)
	require.NoError(t, err)

	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"admin allowed", adminToken, http.StatusOK},
		{"staff forbidden", staffToken, http.StatusForbidden},
		{"no token", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin-action", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedTestRouter(jwtService)

	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin-action", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

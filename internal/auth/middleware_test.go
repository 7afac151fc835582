package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tulipkids/funwalk-api/internal/config"
)

func tokenExpiringIn(t *testing.T, h *AuthHandler, d time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(d).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := handler.AuthMiddleware(next)

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, _ := handler.GenerateToken()
		req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "garbage"})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("SlidingRefresh", func(t *testing.T) {
		// Expires in 11 hours, less than TokenDuration/2 = 12 hours,
		// so the middleware should hand back a fresh cookie.
		token := tokenExpiringIn(t, handler, 11*time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		refreshed := false
		for _, c := range rec.Result().Cookies() {
			if c.Name == "auth_token" && c.Value != "" {
				refreshed = true
			}
		}
		if !refreshed {
			t.Error("expected a refreshed auth_token cookie")
		}
	})

	t.Run("NoRefreshWhenFresh", func(t *testing.T) {
		token := tokenExpiringIn(t, handler, 13*time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		for _, c := range rec.Result().Cookies() {
			if c.Name == "auth_token" {
				t.Error("did not expect a refreshed cookie for a fresh token")
			}
		}
	})
}

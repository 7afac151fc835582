package auth

import (
	"context"
	"testing"

	"github.com/tulipkids/funwalk-api/internal/config"
)

func TestHandleLogin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminSecret: "letmein"}
	handler := NewAuthHandler(cfg)

	t.Run("CorrectSecret", func(t *testing.T) {
		input := &LoginRequest{}
		input.Body.Secret = "letmein"
		resp, err := handler.HandleLogin(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleLogin returned error: %v", err)
		}
		if resp.SetCookie.Name != "auth_token" || resp.SetCookie.Value == "" {
			t.Errorf("expected auth_token cookie to be set, got %+v", resp.SetCookie)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		input := &LoginRequest{}
		input.Body.Secret = "guess"
		if _, err := handler.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error for wrong secret, got nil")
		}
	})

	t.Run("Unconfigured", func(t *testing.T) {
		unset := NewAuthHandler(&config.Config{JWTSecret: "test-secret"})
		input := &LoginRequest{}
		input.Body.Secret = ""
		if _, err := unset.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error when no admin secret is configured")
		}
	})
}

func TestAuthorize(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminSecret: "letmein"}
	handler := NewAuthHandler(cfg)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := handler.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if err := handler.Authorize(context.Background(), "auth_token="+token); err != nil {
			t.Fatalf("Authorize returned error: %v", err)
		}
	})

	t.Run("NoCookie", func(t *testing.T) {
		if err := handler.Authorize(context.Background(), ""); err == nil {
			t.Fatal("expected error without cookie, got nil")
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		other := NewAuthHandler(&config.Config{JWTSecret: "other-secret"})
		token, _ := other.GenerateToken()
		if err := handler.Authorize(context.Background(), "auth_token="+token); err == nil {
			t.Fatal("expected error for token signed with another key")
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if err := handler.Authorize(context.Background(), "auth_token=not-a-jwt"); err == nil {
			t.Fatal("expected error for malformed token")
		}
	})
}

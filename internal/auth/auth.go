package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tulipkids/funwalk-api/internal/config"
)

const TokenDuration = 24 * time.Hour

const cookieName = "auth_token"

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// AuthInput is embedded by protected huma inputs so handlers can call
// Authorize with the raw cookie header.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Session cookie"`
}

type LoginRequest struct {
	Body struct {
		Secret string `json:"secret" required:"true" doc:"Organizer access secret"`
	}
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	if h.cfg.AdminSecret == "" {
		return nil, huma.Error503ServiceUnavailable("Admin access is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(input.Body.Secret), []byte(h.cfg.AdminSecret)) != 1 {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{
		SetCookie: http.Cookie{
			Name:     cookieName,
			Value:    token,
			Expires:  time.Now().Add(TokenDuration),
			HttpOnly: true,
			Path:     "/",
		},
	}
	res.Body.Message = "Logged in"
	return res, nil
}

type LogoutResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogout(ctx context.Context, input *struct{}) (*LogoutResponse, error) {
	res := &LogoutResponse{
		SetCookie: http.Cookie{
			Name:     cookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Path:     "/",
		},
	}
	res.Body.Message = "Logged out"
	return res, nil
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the admin token carried in a Cookie header.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) error {
	value, err := cookieValue(cookieHeader)
	if err != nil {
		return huma.Error401Unauthorized("Unauthorized: No token found")
	}

	claims, err := h.parseToken(value)
	if err != nil {
		return huma.Error401Unauthorized("Unauthorized: Invalid token")
	}
	if claims["role"] != "admin" {
		return huma.Error401Unauthorized("Unauthorized: Invalid token claims")
	}
	return nil
}

func (h *AuthHandler) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// cookieValue pulls the auth token out of a raw Cookie header.
func cookieValue(cookieHeader string) (string, error) {
	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(cookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

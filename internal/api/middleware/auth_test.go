package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pricelist", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret)(next)(c)
	return rec, c, err
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) sessionError {
	t.Helper()
	var env sessionError
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "anna@mail.com",
		"name":  "Anna",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	rec, c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, _ := c.Get("user_id").(string); got != "user-1" {
		t.Errorf("user_id = %q, want user-1", got)
	}
	if got, _ := c.Get("email").(string); got != "anna@mail.com" {
		t.Errorf("email = %q", got)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	rec, _, err := runAuth(t, "")
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Returncode != domain.CodeSessionInvalid {
		t.Errorf("returncode = %q, want 300", env.Returncode)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	rec, _, _ := runAuth(t, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Returncode != domain.CodeSessionInvalid {
		t.Errorf("returncode = %q, want 300", env.Returncode)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _, _ := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Returncode != domain.CodeSessionInvalid {
		t.Errorf("returncode = %q, want 300", env.Returncode)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec, _, _ := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	// Expiry is a distinct sub-kind; clients message it differently.
	if env.Returncode != domain.CodeSessionExpired {
		t.Errorf("returncode = %q, want 301", env.Returncode)
	}
	if env.Message != "login.error_expired" {
		t.Errorf("message = %q, want login.error_expired", env.Message)
	}
}

func TestLanguageFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"sv", "sv"},
		{"SV", "sv"},
		{"sv-SE", "sv"},
		{"sv-SE;q=0.9", "sv"},
		{"sv-SE,en;q=0.8", "sv"},
		{"  en-GB  ", "en"},
	}
	for _, tc := range cases {
		if got := LanguageFromHeader(tc.header); got != tc.want {
			t.Errorf("LanguageFromHeader(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestLocaleMiddlewareSetsLang(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/terms", nil)
	req.Header.Set("Accept-Language", "sv-SE;q=0.9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Locale()(func(c echo.Context) error { return nil })(c)
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if got, _ := c.Get("lang").(string); got != "sv" {
		t.Errorf("lang = %q, want sv", got)
	}
}

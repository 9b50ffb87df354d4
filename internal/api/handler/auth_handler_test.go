package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

type stubAuthService struct {
	RegisterFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	LoginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.RegisterFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.LoginFn(ctx, email, password)
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &stubAuthService{
		LoginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "anna@mail.com" || password != "secret1" {
				t.Errorf("credentials = %q/%q", email, password)
			}
			return "tok-1", &domain.User{Name: "Anna", Email: email}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/login", `{"email":"anna@mail.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Returncode != domain.CodeOK {
		t.Errorf("returncode = %q, want 200", resp.Returncode)
	}
	if resp.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1", resp.Token)
	}
	if resp.User == nil || resp.User.Name != "Anna" {
		t.Errorf("user = %+v, want Anna", resp.User)
	}
}

func TestAuthHandlerLoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		LoginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatal("service reached with invalid input")
			return "", nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret1"}`},
		{"bad email", `{"email":"not-an-email","password":"secret1"}`},
		{"short password", `{"email":"anna@mail.com","password":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newEchoContext(t, http.MethodPost, "/auth/login", tc.body)
			err := h.Login(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("Login() error = %v, want 400", err)
			}
		})
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	svc := &stubAuthService{
		RegisterFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			if name != "Anna" || email != "anna@mail.com" {
				t.Errorf("input = %q/%q", name, email)
			}
			return &domain.User{ID: "user-1", Name: name, Email: email}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/register", `{"name":"Anna","email":"anna@mail.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Returncode != domain.CodeOK || resp.User == nil || resp.User.Email != "anna@mail.com" {
		t.Errorf("response = %+v", resp)
	}
}

func TestAuthHandlerRegisterExistingEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		RegisterFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newEchoContext(t, http.MethodPost, "/auth/register", `{"name":"Anna","email":"anna@mail.com","password":"secret1"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("Register() error = %v, want ErrUserExists passed through", err)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		LoginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newEchoContext(t, http.MethodPost, "/auth/login", `{"email":"anna@mail.com","password":"secret1"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials passed through", err)
	}
}

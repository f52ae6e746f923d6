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

	"github.com/learnhub/learning-platform/internal/api/middleware"
	"github.com/learnhub/learning-platform/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string, role domain.Role) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
	return s.registerFn(ctx, name, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
			if name != "A" || email != "a@x.com" || password != "secret1" || role != domain.RoleStudent {
				t.Fatalf("unexpected args: %s %s %s %s", name, email, password, role)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"secret1","role":"student"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["token"] != "token123" || len(resp) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_RoleOmitted(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
			if role != "" {
				t.Fatalf("expected empty role to be passed through, got %q", role)
			}
			return "token123", nil
		},
	}

	c, rec := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"name":"B","email":"a@x.com","password":"other","role":"teacher"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != MsgUserExists {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := map[string]struct {
		body string
		want string
	}{
		"missing name": {`{"email":"a@x.com","password":"pw"}`, "name is required"},
		"bad email":    {`{"name":"A","email":"nope","password":"pw"}`, "email must be a valid email"},
		"missing pass": {`{"name":"A","email":"a@x.com"}`, "password is required"},
		"unknown role": {`{"name":"A","email":"a@x.com","password":"pw","role":"root"}`, "role must be one of: student teacher admin"},
		"invalid json": {"not-json", MsgInvalidPayload},
		"wrong type":   {`{"name":1}`, MsgInvalidPayload},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := postJSON(e, "/api/auth/register", tc.body)
			_ = handler.Register(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg := decodeBody(t, rec)["message"]; msg != tc.want {
				t.Fatalf("expected message %q, got %v", tc.want, msg)
			}
		})
	}
}

func TestAuthHandler_Register_UnexpectedError(t *testing.T) {
	e := newTestEcho()
	boom := errors.New("mongo down")
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
			return "", boom
		},
	}

	c, _ := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"pw"}`)
	if err := NewAuthHandler(stub).Register(c); !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if tok := decodeBody(t, rec)["token"]; tok != "token123" {
		t.Fatalf("expected token, got %v", tok)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeBody(t, rec)["message"]; msg != MsgInvalidCredentials {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", "{")
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), rec)
	c.Set(middleware.IdentityKey, domain.Identity{ID: "u1", Role: domain.RoleTeacher})

	if err := NewAuthHandler(&stubAuthService{}).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["id"] != "u1" || resp["role"] != "teacher" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

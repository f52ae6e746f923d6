package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learning-platform/internal/api/metrics"
	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

// Messages returned by the credential endpoints.
const (
	MsgUserExists         = "User exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidPayload     = "Invalid payload"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account and returns a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	roleLabel := req.Role
	if roleLabel == "" {
		roleLabel = "default"
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues(roleLabel, metrics.ResultDuplicate).Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: MsgUserExists})
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrMissingFields):
			metrics.RegistrationsTotal.WithLabelValues(roleLabel, metrics.ResultInvalid).Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		metrics.RegistrationsTotal.WithLabelValues(roleLabel, metrics.ResultError).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(roleLabel, metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidPayload})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(metrics.ResultInvalidCredentials).Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidCredentials})
		}
		metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me returns the identity decoded from the caller's token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  messageResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}

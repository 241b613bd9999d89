package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/poetracikal/backend/internal/events"
	"github.com/poetracikal/backend/internal/logging"
	"github.com/poetracikal/backend/internal/models"
	"github.com/poetracikal/backend/internal/service"
	"github.com/poetracikal/backend/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func userPayload(u *models.User) transport.UserPayload {
	return transport.UserPayload{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func (h *AuthHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.UserTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "error", err)
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	res, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("register_failed", "status", 400, "reason", "email already registered")
			return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register user")
	}

	h.publish(c, res.User.ID.Hex(), map[string]any{
		"type":   "user_registered",
		"userID": res.User.ID.Hex(),
		"email":  res.User.Email,
	})

	l.Info("register_success")
	return c.JSON(http.StatusOK, transport.AuthResponse{
		Token: res.Token,
		User:  userPayload(res.User),
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	h.publish(c, res.User.ID.Hex(), map[string]any{
		"type":   "user_logged_in",
		"userID": res.User.ID.Hex(),
		"email":  res.User.Email,
	})

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.AuthResponse{
		Token: res.Token,
		User:  userPayload(res.User),
	})
}

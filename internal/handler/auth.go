package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/himalayancrown/hotel-reservation/internal/config"
	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
	"github.com/himalayancrown/hotel-reservation/internal/service"
	"github.com/himalayancrown/hotel-reservation/internal/utils"
)

// AuthHandler bundles dependencies for the identity endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Auth *service.AuthService
}

func NewAuthHandler(cfg config.Config, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: auth}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"` // accepted for form parity, never stored
}
type loginReq struct {
	Email string `json:"email" validate:"required,email"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Register: create user (role derived from the email) and return a token
// immediately so the client can proceed without a separate login call.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login: lookup by email only and persist the session pointer.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Login(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout clears the persisted session pointer.  Idempotent: logging out when
// nobody is logged in still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Auth.Logout(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me resolves the full user record behind the access token.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.UserByID(ctx, uid)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Session reports the persisted current-user pointer, if any.
func (h *AuthHandler) Session(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusOK, echo.Map{"user": nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load session failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

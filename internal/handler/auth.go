package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/service"
	"github.com/iliyamo/eventsphere/internal/session"
	"github.com/iliyamo/eventsphere/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *service.AccountService
	Log      *slog.Logger
}

func NewAuthHandler(cfg config.Config, accounts *service.AccountService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts, Log: log}
}

// ----- DTOs -----

type googleReq struct {
	Credential string `json:"credential" validate:"required"`
}
type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}
type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResp struct {
	User    model.Account `json:"user"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Expires time.Time     `json:"expires"`
}

// Google: verify a Google ID token, find or create the account.
func (h *AuthHandler) Google(c echo.Context) error {
	var req googleReq
	if _, ok := bindValid(c, &req); !ok {
		return message(c, http.StatusUnauthorized, "Authentication failed")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	acc, err := h.Accounts.ResolveByThirdPartyToken(ctx, req.Credential)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			return message(c, http.StatusUnauthorized, "Authentication failed")
		}
		return internalError(c, h.Log, "google sign-in", err)
	}
	return h.issue(c, http.StatusOK, acc, "Login successful")
}

// Register: create a password account and sign it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if msg, ok := bindValid(c, &req); !ok {
		return message(c, http.StatusBadRequest, msg)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	acc, err := h.Accounts.Register(ctx, req.Email, req.Password, req.Name)
	switch {
	case errors.Is(err, service.ErrPolicyViolation):
		return message(c, http.StatusBadRequest, "Email domain is not allowed")
	case errors.Is(err, service.ErrDuplicateAccount):
		return message(c, http.StatusBadRequest, "User already exists")
	case err != nil:
		return internalError(c, h.Log, "register", err)
	}
	return h.issue(c, http.StatusCreated, acc, "Registration successful")
}

// Login: verify email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if _, ok := bindValid(c, &req); !ok {
		return message(c, http.StatusUnauthorized, "Invalid credentials")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	acc, err := h.Accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			return message(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return internalError(c, h.Log, "login", err)
	}
	return h.issue(c, http.StatusOK, acc, "Login successful")
}

// Me returns the account behind the session token.
func (h *AuthHandler) Me(c echo.Context) error {
	s, ok := session.FromContext(c.Request().Context())
	if !ok {
		return message(c, http.StatusUnauthorized, "Authentication required")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	acc, found, err := h.Accounts.Account(ctx, s.AccountID)
	if err != nil {
		return internalError(c, h.Log, "load account", err)
	}
	if !found {
		return message(c, http.StatusUnauthorized, "Account no longer exists")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": acc})
}

func (h *AuthHandler) issue(c echo.Context, status int, acc model.Account, msg string) error {
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, acc.Email, acc.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c, h.Log, "issue token", err)
	}
	return c.JSON(status, authResp{User: acc.Sanitized(), Message: msg, Token: tok.Token, Expires: tok.Exp})
}

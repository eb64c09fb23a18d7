package handler

import (
	"errors"
	"net/http"

	"github.com/cosmopedia/internal/middleware"
	"github.com/cosmopedia/internal/service"
	"github.com/cosmopedia/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and registration
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles user login
// POST /auth/
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Forbidden(c, "Username or/and Password is not valid!")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, h.authService.SessionMaxAge(), "/", "", false, true)
	response.Message(c, http.StatusOK, "Welcome!")
}

// Logout handles session revocation
// POST /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			middleware.LogError("failed to revoke session: %v", err)
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Message(c, http.StatusOK, "Goodbye!")
}

// Register handles account creation. The created profile is returned;
// the password never is.
// POST /registration/
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.FieldError(c, "username", "A user with that username already exists.")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Success(c, user.Profile())
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.POST("/auth/", h.Login)
	r.POST("/logout/", authRequired, h.Logout)
	r.POST("/registration/", h.Register)
}

package handler

import (
	"net/http"

	"github.com/cosmopedia/internal/middleware"
	"github.com/cosmopedia/internal/service"
	"github.com/cosmopedia/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles the caller's own profile
type ProfileHandler struct {
	userService *service.UserService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

// GetProfile returns the caller's profile
// GET /profile/
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	response.Success(c, user.Profile())
}

// UpdateProfile partially updates first/last name and email. Username
// and password are immutable here.
// PATCH /profile/
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	profile, err := h.userService.UpdateProfile(user, &req)
	if err != nil {
		response.InternalError(c, "failed to update profile")
		return
	}

	response.Success(c, profile)
}

// DeleteProfile permanently removes the caller's account. The optional
// reason is logged for diagnostics and never persisted.
// DELETE /profile/
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.Reason != "" {
		middleware.LogInfo("account %d (%s) deleted, reason: %q", user.ID, user.Username, req.Reason)
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), user); err != nil {
		response.InternalError(c, "failed to delete account")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Message(c, http.StatusOK, "Profile deleted!")
}

// RegisterRoutes registers profile routes
func (h *ProfileHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.GET("/profile/", authRequired, h.GetProfile)
	r.PATCH("/profile/", authRequired, h.UpdateProfile)
	r.DELETE("/profile/", authRequired, h.DeleteProfile)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"furniture-admin-api/internal/auth"
	"furniture-admin-api/internal/response"
)

// AuthHandler exposes token issuance, introspection and revocation
type AuthHandler struct {
	service *auth.Service
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(service *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// RegisterRoutes mounts the auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/introspect", h.Introspect)
	rg.POST("/logout", h.Logout)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "invalid credentials")
		return
	}
	response.SendSuccess(c, http.StatusOK, "authenticated", res)
}

// Introspect handles POST /auth/introspect. Invalid tokens answer
// valid=false with a 200, never an error.
func (h *AuthHandler) Introspect(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res := h.service.Introspect(c.Request.Context(), req.Token)
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.Token); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "logout failed")
		return
	}
	response.SendSuccess(c, http.StatusOK, "logged out", nil)
}

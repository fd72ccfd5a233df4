package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.TokenManager
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(h.tokens))
	{
		protected.POST("/auth/refresh", h.Refresh)
		protected.GET("/me", h.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Refresh(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.authService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

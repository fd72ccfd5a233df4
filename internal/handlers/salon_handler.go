package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type SalonHandler struct {
	*BaseHandler
	salonService services.SalonService
	tokens       *auth.TokenManager
}

func NewSalonHandler(base *BaseHandler, salonService services.SalonService, tokens *auth.TokenManager) *SalonHandler {
	return &SalonHandler{
		BaseHandler:  base,
		salonService: salonService,
		tokens:       tokens,
	}
}

func (h *SalonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/salons")
	{
		public.GET("/city/:city", h.ListByCity)
		public.GET("/:slug", h.Get)
	}

	owned := rg.Group("/salons")
	owned.Use(middleware.AuthMiddleware(h.tokens))
	owned.Use(middleware.RequireAction(auth.ActionManageSalon))
	{
		owned.POST("", h.Create)
		owned.GET("/me/profile", h.GetOwn)
		owned.PATCH("/:id", h.Update)
		owned.DELETE("/:id", h.Delete)
	}
}

func (h *SalonHandler) ListByCity(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	salons, err := h.salonService.ListByCity(db, c.Param("city"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	salon, err := h.salonService.GetBySlug(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	salon, err := h.salonService.GetByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSalonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	salon, err := h.salonService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSalonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	salon, err := h.salonService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.salonService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

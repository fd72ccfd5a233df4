package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type CityHandler struct {
	*BaseHandler
	cityService services.CityService
	tokens      *auth.TokenManager
}

func NewCityHandler(base *BaseHandler, cityService services.CityService, tokens *auth.TokenManager) *CityHandler {
	return &CityHandler{
		BaseHandler: base,
		cityService: cityService,
		tokens:      tokens,
	}
}

func (h *CityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cities := rg.Group("/cities")
	{
		cities.GET("", h.List)
		cities.GET("/:slug", h.Get)
	}

	admin := rg.Group("/admin/cities")
	admin.Use(middleware.AuthMiddleware(h.tokens))
	admin.Use(middleware.RequireAction(auth.ActionManageCities))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *CityHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	// Inactive cities are admin-only noise on the public surface.
	cities, err := h.cityService.List(db, c.Query("all") == "")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (h *CityHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	city, err := h.cityService.GetBySlug(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}

func (h *CityHandler) Create(c *gin.Context) {
	var req dto.CreateCityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	city, err := h.cityService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, city)
}

func (h *CityHandler) Update(c *gin.Context) {
	var req dto.UpdateCityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	city, err := h.cityService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}

func (h *CityHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.cityService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

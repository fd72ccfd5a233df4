package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	tokens         *auth.TokenManager
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService, tokens *auth.TokenManager) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		tokens:         tokens,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/catalog")
	{
		public.GET("/categories", h.ListCategories)
		public.GET("/services/:id", h.GetService)
		public.GET("/salons/:id/services", h.ListBySalon)
		public.GET("/masters/:id/services", h.ListByMaster)
	}

	admin := rg.Group("/admin/catalog")
	admin.Use(middleware.AuthMiddleware(h.tokens))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/categories", h.CreateCategory)
	}

	owned := rg.Group("/catalog/services")
	owned.Use(middleware.AuthMiddleware(h.tokens))
	{
		owned.POST("", h.CreateService)
		owned.PATCH("/:id", h.UpdateService)
		owned.DELETE("/:id", h.DeleteService)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.catalogService.ListCategories(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	category, err := h.catalogService.CreateCategory(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	db := h.GetDB(c)

	service, err := h.catalogService.GetService(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) ListBySalon(c *gin.Context) {
	db := h.GetDB(c)

	services, err := h.catalogService.ListBySalon(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) ListByMaster(c *gin.Context) {
	db := h.GetDB(c)

	services, err := h.catalogService.ListByMaster(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.CreateService(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.UpdateService(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.catalogService.DeleteService(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

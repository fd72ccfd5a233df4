package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type MasterHandler struct {
	*BaseHandler
	masterService   services.MasterService
	relationService services.RelationService
	tokens          *auth.TokenManager
}

func NewMasterHandler(base *BaseHandler, masterService services.MasterService, relationService services.RelationService, tokens *auth.TokenManager) *MasterHandler {
	return &MasterHandler{
		BaseHandler:     base,
		masterService:   masterService,
		relationService: relationService,
		tokens:          tokens,
	}
}

func (h *MasterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/masters")
	{
		public.GET("/city/:city", h.ListByCity)
		public.GET("/:slug", h.Get)
		public.GET("/:slug/salons", h.ListSalons)
	}

	owned := rg.Group("/masters")
	owned.Use(middleware.AuthMiddleware(h.tokens))
	owned.Use(middleware.RequireAction(auth.ActionManageMaster))
	{
		owned.POST("", h.Create)
		owned.GET("/me/profile", h.GetOwn)
		owned.PATCH("/:id", h.Update)
		owned.DELETE("/:id", h.Delete)
	}
}

func (h *MasterHandler) ListByCity(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	masters, err := h.masterService.ListByCity(db, c.Param("city"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, masters)
}

func (h *MasterHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	master, err := h.masterService.GetBySlug(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, master)
}

// ListSalons exposes where a master currently works.
func (h *MasterHandler) ListSalons(c *gin.Context) {
	db := h.GetDB(c)

	master, err := h.masterService.GetBySlug(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	relations, err := h.relationService.ListMasterSalons(db, master.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, relations)
}

func (h *MasterHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	master, err := h.masterService.GetByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, master)
}

func (h *MasterHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMasterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	master, err := h.masterService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, master)
}

func (h *MasterHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMasterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	master, err := h.masterService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, master)
}

func (h *MasterHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.masterService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

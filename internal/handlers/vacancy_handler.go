package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type VacancyHandler struct {
	*BaseHandler
	vacancyService services.VacancyService
	tokens         *auth.TokenManager
}

func NewVacancyHandler(base *BaseHandler, vacancyService services.VacancyService, tokens *auth.TokenManager) *VacancyHandler {
	return &VacancyHandler{
		BaseHandler:    base,
		vacancyService: vacancyService,
		tokens:         tokens,
	}
}

func (h *VacancyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/vacancies")
	{
		public.GET("", h.ListOpen)
		public.GET("/:id", h.Get)
	}

	salon := rg.Group("/vacancies")
	salon.Use(middleware.AuthMiddleware(h.tokens))
	salon.Use(middleware.RequireAction(auth.ActionPostVacancies))
	{
		salon.POST("", h.Create)
		salon.GET("/me/list", h.ListOwn)
		salon.PATCH("/:id", h.Update)
		salon.DELETE("/:id", h.Delete)
		salon.GET("/:id/applications", h.ListApplications)
		salon.PATCH("/applications/:id", h.AnswerApplication)
	}

	master := rg.Group("/vacancies")
	master.Use(middleware.AuthMiddleware(h.tokens))
	master.Use(middleware.RequireAction(auth.ActionApplyVacancies))
	{
		master.POST("/:id/apply", h.Apply)
		master.GET("/me/applications", h.ListOwnApplications)
	}
}

func (h *VacancyHandler) ListOpen(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	vacancies, err := h.vacancyService.ListOpen(db, c.Query("city"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancies)
}

func (h *VacancyHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	vacancy, err := h.vacancyService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancy)
}

func (h *VacancyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	vacancy, err := h.vacancyService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vacancy)
}

func (h *VacancyHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	vacancies, err := h.vacancyService.ListOwn(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancies)
}

func (h *VacancyHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	vacancy, err := h.vacancyService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancy)
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.vacancyService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VacancyHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.vacancyService.Apply(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *VacancyHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.vacancyService.ListApplications(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *VacancyHandler) ListOwnApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.vacancyService.ListOwnApplications(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *VacancyHandler) AnswerApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.vacancyService.AnswerApplication(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

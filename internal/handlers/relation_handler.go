package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
)

type RelationHandler struct {
	*BaseHandler
	relationService services.RelationService
	tokens          *auth.TokenManager
}

func NewRelationHandler(base *BaseHandler, relationService services.RelationService, tokens *auth.TokenManager) *RelationHandler {
	return &RelationHandler{
		BaseHandler:     base,
		relationService: relationService,
		tokens:          tokens,
	}
}

func (h *RelationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/relations")
	{
		public.GET("/salons/:id/masters", h.ListSalonMasters)
	}

	salon := rg.Group("/invitations")
	salon.Use(middleware.AuthMiddleware(h.tokens))
	salon.Use(middleware.RequireAction(auth.ActionInviteMasters))
	{
		salon.POST("", h.Invite)
		salon.GET("/sent", h.ListSent)
	}

	master := rg.Group("/invitations")
	master.Use(middleware.AuthMiddleware(h.tokens))
	master.Use(middleware.RequireAction(auth.ActionAnswerInvitation))
	{
		master.GET("/received", h.ListReceived)
		master.PATCH("/:id", h.Answer)
	}

	relations := rg.Group("/relations")
	relations.Use(middleware.AuthMiddleware(h.tokens))
	{
		relations.DELETE("/:salonID/:masterID", h.End)
	}
}

func (h *RelationHandler) ListSalonMasters(c *gin.Context) {
	db := h.GetDB(c)

	relations, err := h.relationService.ListSalonMasters(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, relations)
}

func (h *RelationHandler) Invite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InviteMasterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	invitation, err := h.relationService.Invite(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

func (h *RelationHandler) ListSent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	invitations, err := h.relationService.ListSalonInvitations(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

func (h *RelationHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	invitations, err := h.relationService.ListMasterInvitations(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

func (h *RelationHandler) Answer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AnswerInvitationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	invitation, err := h.relationService.Answer(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}

func (h *RelationHandler) End(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.relationService.EndRelation(db, userID, c.Param("salonID"), c.Param("masterID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

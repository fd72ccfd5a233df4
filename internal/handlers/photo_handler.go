package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/middleware"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/services"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type PhotoHandler struct {
	*BaseHandler
	photoService services.PhotoService
	tokens       *auth.TokenManager
}

func NewPhotoHandler(base *BaseHandler, photoService services.PhotoService, tokens *auth.TokenManager) *PhotoHandler {
	return &PhotoHandler{
		BaseHandler:  base,
		photoService: photoService,
		tokens:       tokens,
	}
}

func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/photos")
	{
		public.GET("/entity/:kind/:id", h.ListByEntity)
	}

	owned := rg.Group("/photos")
	owned.Use(middleware.AuthMiddleware(h.tokens))
	owned.Use(middleware.RequireAction(auth.ActionManagePhotos))
	{
		owned.POST("", h.Upload)
		owned.PUT("/:id", h.Replace)
		owned.DELETE("/:id", h.Delete)
		owned.POST("/:id/main", h.SetMain)
		owned.POST("/reorder", h.Reorder)
	}
}

// ListByEntity returns an entity's photos; ?only_main=true narrows the
// result to the main photo.
func (h *PhotoHandler) ListByEntity(c *gin.Context) {
	db := h.GetDB(c)
	onlyMain, _ := strconv.ParseBool(c.Query("only_main"))

	photos, err := h.photoService.GetEntityPhotos(db, models.EntityKind(c.Param("kind")), c.Param("id"), onlyMain)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}

// Upload accepts a multipart batch under the "files" field. Partial success
// is reported as 207: some images stored, the rest listed with reasons.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.RoleFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}

	req := dto.UploadPhotosRequest{
		EntityKind: c.PostForm("entity_kind"),
		EntityID:   c.PostForm("entity_id"),
		ImageType:  c.PostForm("image_type"),
		Files:      form.File["files"],
	}
	if !h.ValidateStruct(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.photoService.AddPhotos(c.Request.Context(), db, userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if len(resp.Failures) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}

func (h *PhotoHandler) Replace(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.RoleFromContext(c)

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	req := dto.ReplacePhotoRequest{ImageType: c.PostForm("image_type")}
	if !h.ValidateStruct(c, &req) {
		return
	}

	db := h.GetDB(c)

	photo, err := h.photoService.ReplacePhoto(c.Request.Context(), db, userID, role, c.Param("id"), file, req.ImageType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.RoleFromContext(c)

	db := h.GetDB(c)

	resp, err := h.photoService.DeletePhoto(c.Request.Context(), db, userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PhotoHandler) SetMain(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.RoleFromContext(c)

	db := h.GetDB(c)

	if err := h.photoService.SetMainPhoto(db, userID, role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PhotoHandler) Reorder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.RoleFromContext(c)

	var req dto.ReorderPhotosRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.photoService.ReorderPhotos(db, userID, role, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gob26/beautycity/internal/handlers"
)

// RegisterRoutes wires every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CityHandler.RegisterRoutes(api)
		appHandlers.SalonHandler.RegisterRoutes(api)
		appHandlers.MasterHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.VacancyHandler.RegisterRoutes(api)
		appHandlers.RelationHandler.RegisterRoutes(api)
		appHandlers.PhotoHandler.RegisterRoutes(api)
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.GET("/eating-time", h.getEatingTime)
		protected.GET("/recommendations", h.getRecommendations)
		protected.GET("/places/:placeId", h.getPlaceDetails)
		protected.GET("/stats", h.getStats)
	}

	// Маршруты событий сессии
	sessions := protected.Group("/sessions/:id")
	{
		sessions.POST("/location", h.updateLocation)
		sessions.POST("/places", h.placesChanged)
		sessions.GET("/history", h.getHistory)
	}
}

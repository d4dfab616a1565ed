package routes

import (
	"time"

	"tembea/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, jh *handlers.JourneyHandler, ph *handlers.PaymentHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterJourneyRoutes(r, jh)
	RegisterGeoRoutes(r)
	RegisterCatalogRoutes(r)
	RegisterPaymentRoutes(r, ph)
}

// RegisterGeoRoutes registers the location catalog endpoints.
func RegisterGeoRoutes(r *gin.Engine) {
	api := r.Group("/api/geo")
	{
		api.GET("/regions", handlers.GetRegions)
		api.GET("/regions/:region/districts", handlers.GetDistricts)
		api.GET("/regions/:region/districts/:district/wards", handlers.GetWards)
		api.GET("/regions/:region/districts/:district/wards/:ward/streets", handlers.GetStreets)
	}
}

// RegisterCatalogRoutes registers the service category reference endpoint.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", handlers.GetCategories)
	}
}

// RegisterPaymentRoutes registers the payment handoff endpoints.
func RegisterPaymentRoutes(r *gin.Engine, ph *handlers.PaymentHandler) {
	api := r.Group("/api/payments")
	{
		api.POST("", ph.CreatePayment)
		api.GET("", ph.ListPayments)
	}
}

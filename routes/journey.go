package routes

import (
	"tembea/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJourneyRoutes registers all endpoints for the trip wizard.
func RegisterJourneyRoutes(r *gin.Engine, jh *handlers.JourneyHandler) {
	api := r.Group("/api/journey")
	{
		api.POST("/session", jh.StartSession)
		api.GET("/session/:sessionID", jh.GetSession)
		api.DELETE("/session/:sessionID", jh.CancelSession)

		// Step data.
		api.PUT("/session/:sessionID/location", jh.SetLocation)
		api.PUT("/session/:sessionID/dates", jh.SetDates)
		api.PUT("/session/:sessionID/services", jh.SetCategories)

		// Step transitions.
		api.POST("/session/:sessionID/next", jh.Advance)
		api.POST("/session/:sessionID/back", jh.Back)

		// Provider/service selection.
		api.POST("/session/:sessionID/providers/:providerID/select", jh.ToggleProvider)
		api.POST("/session/:sessionID/listings/:serviceID/select", jh.ToggleService)

		// Budget and summary.
		api.GET("/session/:sessionID/budget", jh.Estimate)
		api.GET("/session/:sessionID/summary", jh.Summary)

		// Wizard exits.
		api.POST("/session/:sessionID/save", jh.SavePlan)
		api.POST("/session/:sessionID/checkout", jh.Checkout)

		// Saved plans.
		api.GET("/plans", jh.ListPlans)
		api.GET("/plans/:planID", jh.GetPlan)
		api.DELETE("/plans/:planID", jh.DeletePlan)
		api.POST("/plans/:planID/checkout", jh.CheckoutSavedPlan)
	}
}

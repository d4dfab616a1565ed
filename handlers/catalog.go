package handlers

import (
	"net/http"

	"tembea/models"
	"tembea/services/planner"

	"github.com/gin-gonic/gin"
)

// GetCategories returns the fixed category enum plus the parametric
// rate tables, so the storefront renders tiers from the same reference
// data the calculator uses.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":         models.AllCategories,
		"accommodationTiers": planner.AccommodationTiers,
		"transportTiers":     planner.TransportTiers,
		"tourAddOns":         planner.TourAddOns,
	})
}

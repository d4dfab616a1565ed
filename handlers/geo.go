package handlers

import (
	"net/http"

	"tembea/services/geo"
	"tembea/utils"

	"github.com/gin-gonic/gin"
)

// GetRegions lists all regions in the location catalog.
func GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": geo.Regions()})
}

// GetDistricts lists the districts of a region.
func GetDistricts(c *gin.Context) {
	districts, err := geo.Districts(c.Param("region"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unknown location", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"districts": districts})
}

// GetWards lists the wards of a district.
func GetWards(c *gin.Context) {
	wards, err := geo.Wards(c.Param("region"), c.Param("district"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unknown location", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"wards": wards})
}

// GetStreets lists the streets of a ward.
func GetStreets(c *gin.Context) {
	streets, err := geo.Streets(c.Param("region"), c.Param("district"), c.Param("ward"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unknown location", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"streets": streets})
}

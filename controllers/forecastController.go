package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/analytics"
	"github.com/canakikol/stok-takip/store"
)

// StockForecast projects depletion for every product and counts the statuses
// for the dashboard tiles.
func StockForecast(c *gin.Context) {
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sales, err := store.DB.Sales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	forecasts := analytics.ForecastStock(products, sales)
	counts := make(map[string]int)
	for _, f := range forecasts {
		counts[f.Status]++
	}
	c.JSON(http.StatusOK, gin.H{
		"forecasts": forecasts,
		"summary": gin.H{
			"total":     len(forecasts),
			"urgent":    counts[analytics.ForecastUrgent],
			"attention": counts[analytics.ForecastAttention],
			"normal":    counts[analytics.ForecastNormal],
			"safe":      counts[analytics.ForecastSafe],
			"no_data":   counts[analytics.ForecastNoData],
		},
	})
}

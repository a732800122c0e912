package analytics

import (
	"math"

	"github.com/canakikol/stok-takip/models"
)

// Forecast statuses, bucketed by projected days of stock left.
const (
	ForecastNoData    = "NoData"
	ForecastUrgent    = "Urgent"    // <= 7 days
	ForecastAttention = "Attention" // 8-14 days
	ForecastNormal    = "Normal"    // 15-30 days
	ForecastSafe      = "Safe"      // > 30 days
)

// Forecast is the depletion projection for one product. DaysRemaining is nil
// when no projection can be made (no recorded sales, or a zero rate).
type Forecast struct {
	ProductID     int     `json:"product_id"`
	Product       string  `json:"product"`
	Category      string  `json:"category"`
	Stock         int     `json:"stock"`
	MinimumStock  int     `json:"minimum_stock"`
	DailyAverage  float64 `json:"daily_average"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
	Status        string  `json:"status"`
}

// ForecastStock projects, for every product, how many days the current stock
// lasts at the product's historical sale rate. The rate is the mean of the
// per-day sold quantities over the days that have at least one recorded sale;
// days without sales contribute no row and so do not dilute the mean. This is
// a static linear projection with no smoothing or seasonality adjustment.
func ForecastStock(products []models.Product, sales []models.Sale) []Forecast {
	perProduct := make(map[int]map[string]int)
	for _, s := range sales {
		byDay := perProduct[s.ProductID]
		if byDay == nil {
			byDay = make(map[string]int)
			perProduct[s.ProductID] = byDay
		}
		byDay[s.Date] += s.Quantity
	}

	forecasts := make([]Forecast, 0, len(products))
	for _, p := range products {
		f := Forecast{
			ProductID:    p.ID,
			Product:      p.Name,
			Category:     p.Category,
			Stock:        p.Stock,
			MinimumStock: p.MinimumStock,
			Status:       ForecastNoData,
		}

		byDay := perProduct[p.ID]
		if len(byDay) > 0 {
			total := 0
			for _, qty := range byDay {
				total += qty
			}
			rate := float64(total) / float64(len(byDay))
			if rate > 0 {
				days := int(math.Floor(float64(p.Stock) / rate))
				f.DailyAverage = rate
				f.DaysRemaining = &days
				f.Status = forecastStatus(days)
			}
		}
		forecasts = append(forecasts, f)
	}
	return forecasts
}

func forecastStatus(days int) string {
	switch {
	case days <= 7:
		return ForecastUrgent
	case days <= 14:
		return ForecastAttention
	case days <= 30:
		return ForecastNormal
	default:
		return ForecastSafe
	}
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canakikol/stok-takip/models"
)

func TestForecastNoSales(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Gomlek", Stock: 40, MinimumStock: 5},
	}

	forecasts := ForecastStock(products, nil)

	require.Len(t, forecasts, 1)
	assert.Equal(t, ForecastNoData, forecasts[0].Status)
	assert.Nil(t, forecasts[0].DaysRemaining)
	assert.Zero(t, forecasts[0].DailyAverage)
}

func TestForecastRateOverSaleDaysOnly(t *testing.T) {
	// Two days with sales out of a long gap: the denominator is the number
	// of days with at least one sale, not calendar days.
	products := []models.Product{{ID: 1, Name: "Gomlek", Stock: 30}}
	sales := []models.Sale{
		{ID: 1, ProductID: 1, Date: "2024-05-01", Quantity: 2},
		{ID: 2, ProductID: 1, Date: "2024-05-01", Quantity: 2},
		{ID: 3, ProductID: 1, Date: "2024-05-20", Quantity: 2},
	}

	forecasts := ForecastStock(products, sales)

	require.Len(t, forecasts, 1)
	f := forecasts[0]
	assert.InDelta(t, 3.0, f.DailyAverage, 1e-9) // (4+2)/2 days
	require.NotNil(t, f.DaysRemaining)
	assert.Equal(t, 10, *f.DaysRemaining) // floor(30/3)
	assert.Equal(t, ForecastAttention, f.Status)
}

func TestForecastStatusBuckets(t *testing.T) {
	// One sale of one unit on a single day gives a rate of exactly
	// stock/days, so the stock value selects the bucket directly.
	cases := []struct {
		stock  int
		status string
	}{
		{0, ForecastUrgent},
		{7, ForecastUrgent},
		{8, ForecastAttention},
		{14, ForecastAttention},
		{15, ForecastNormal},
		{30, ForecastNormal},
		{31, ForecastSafe},
	}
	sales := []models.Sale{{ID: 1, ProductID: 1, Date: "2024-05-01", Quantity: 1}}

	for _, tc := range cases {
		forecasts := ForecastStock([]models.Product{{ID: 1, Stock: tc.stock}}, sales)
		require.Len(t, forecasts, 1)
		require.NotNil(t, forecasts[0].DaysRemaining)
		assert.Equal(t, tc.stock, *forecasts[0].DaysRemaining)
		assert.Equalf(t, tc.status, forecasts[0].Status, "stock=%d", tc.stock)
	}
}

func TestForecastIgnoresOtherProducts(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Gomlek", Stock: 10},
		{ID: 2, Name: "Pantolon", Stock: 10},
	}
	sales := []models.Sale{
		{ID: 1, ProductID: 2, Date: "2024-05-01", Quantity: 5},
	}

	forecasts := ForecastStock(products, sales)

	require.Len(t, forecasts, 2)
	assert.Equal(t, ForecastNoData, forecasts[0].Status)
	assert.Equal(t, ForecastUrgent, forecasts[1].Status)
}

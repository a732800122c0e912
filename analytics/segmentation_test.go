package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canakikol/stok-takip/models"
)

var segNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fiveCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Ayse", Region: "Marmara", LastPurchase: "2024-06-13", PurchaseCount: 50, TotalSpend: 5000},
		{ID: 2, Name: "Mehmet", Region: "Ege", LastPurchase: "2024-05-16", PurchaseCount: 20, TotalSpend: 2000},
		{ID: 3, Name: "Fatma", Region: "Marmara", LastPurchase: "2024-04-16", PurchaseCount: 10, TotalSpend: 1000},
		{ID: 4, Name: "Ali", Region: "Akdeniz", LastPurchase: "2024-03-17", PurchaseCount: 5, TotalSpend: 500},
		{ID: 5, Name: "Zeynep", Region: "Ege", LastPurchase: "2024-02-16", PurchaseCount: 1, TotalSpend: 100},
	}
}

func TestSegmentTopQuantileIsVIP(t *testing.T) {
	scored := SegmentCustomers(fiveCustomers(), segNow)

	require.Len(t, scored, 5)
	top := scored[0]
	assert.Equal(t, 2, top.RecencyDays)
	assert.Equal(t, 5, top.RecencyScore)
	assert.Equal(t, 5, top.FrequencyScore)
	assert.Equal(t, 5, top.MonetaryScore)
	assert.Equal(t, SegmentVIP, top.Segment)
	assert.Equal(t, segmentRecommendations[SegmentVIP], top.Recommendation)
}

func TestSegmentBottomQuantileIsLost(t *testing.T) {
	scored := SegmentCustomers(fiveCustomers(), segNow)

	bottom := scored[4]
	assert.Equal(t, 1, bottom.RecencyScore)
	assert.Equal(t, 1, bottom.FrequencyScore)
	assert.Equal(t, 1, bottom.MonetaryScore)
	assert.Equal(t, SegmentLost, bottom.Segment)
}

func TestSegmentationIdempotent(t *testing.T) {
	customers := fiveCustomers()

	first := SegmentCustomers(customers, segNow)
	second := SegmentCustomers(customers, segNow)

	assert.Equal(t, first, second)
}

func TestSegmentationEmptyTable(t *testing.T) {
	assert.Nil(t, SegmentCustomers(nil, segNow))
}

func TestQuantileScoresDegenerateToDistinctCount(t *testing.T) {
	// Three distinct values among five customers collapse to three bins.
	scores := quantileScores([]float64{1, 1, 2, 2, 3}, 5, false)
	assert.Equal(t, []int{1, 1, 2, 2, 3}, scores)

	// A single distinct value puts everyone on the neutral score.
	scores = quantileScores([]float64{7, 7, 7}, 5, false)
	assert.Equal(t, []int{3, 3, 3}, scores)
}

func TestQuantileScoresInverted(t *testing.T) {
	scores := quantileScores([]float64{2, 30, 60, 90, 120}, 5, true)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, scores)
}

func TestSingleCustomerIsNeutral(t *testing.T) {
	scored := SegmentCustomers(fiveCustomers()[:1], segNow)

	require.Len(t, scored, 1)
	assert.Equal(t, 3, scored[0].RecencyScore)
	assert.Equal(t, 3, scored[0].FrequencyScore)
	assert.Equal(t, 3, scored[0].MonetaryScore)
	// All scores 3 lands in the second rule of the table.
	assert.Equal(t, SegmentLoyal, scored[0].Segment)
}

func TestUnparseableDateLandsInWorstBucket(t *testing.T) {
	customers := fiveCustomers()
	customers[4].LastPurchase = "never"

	scored := SegmentCustomers(customers, segNow)

	assert.Equal(t, 3650, scored[4].RecencyDays)
	assert.Equal(t, 1, scored[4].RecencyScore)
}

func TestRegionSummaries(t *testing.T) {
	scored := SegmentCustomers(fiveCustomers(), segNow)

	summaries := RegionSummaries(scored)

	require.Len(t, summaries, 3)
	assert.Equal(t, "Akdeniz", summaries[0].Region)
	assert.Equal(t, 1, summaries[0].Customers)
	assert.Equal(t, "Ege", summaries[1].Region)
	assert.Equal(t, 2, summaries[1].Customers)
	assert.InDelta(t, 1050.0, summaries[1].AvgSpend, 1e-9)
	assert.Equal(t, "Marmara", summaries[2].Region)
}

func TestSegmentDistributionCounts(t *testing.T) {
	scored := SegmentCustomers(fiveCustomers(), segNow)

	dist := SegmentDistribution(scored)
	total := 0
	for _, n := range dist {
		total += n
	}
	assert.Equal(t, 5, total)
	assert.GreaterOrEqual(t, dist[SegmentVIP], 1)
}

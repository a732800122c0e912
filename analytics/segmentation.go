package analytics

import (
	"sort"
	"time"

	"github.com/canakikol/stok-takip/models"
)

// Segment names, ordered from best to worst.
const (
	SegmentVIP     = "VIP"
	SegmentLoyal   = "Loyal"
	SegmentActive  = "Active"
	SegmentMidTier = "Mid-tier"
	SegmentAtRisk  = "At-risk"
	SegmentLost    = "Lost"
)

var segmentRecommendations = map[string]string{
	SegmentVIP:     "VIP service, exclusive campaigns, early access",
	SegmentLoyal:   "Loyalty program, special discounts",
	SegmentActive:  "More product recommendations, campaigns",
	SegmentMidTier: "Personalized recommendations, e-mail campaigns",
	SegmentAtRisk:  "Re-activation campaigns",
	SegmentLost:    "Win-back campaigns, special offers",
}

// ScoredCustomer is a customer row annotated with its derived RFM result.
type ScoredCustomer struct {
	models.Customer
	RecencyDays    int    `json:"recency_days"`
	RecencyScore   int    `json:"recency_score"`
	FrequencyScore int    `json:"frequency_score"`
	MonetaryScore  int    `json:"monetary_score"`
	Segment        string `json:"segment"`
	Recommendation string `json:"recommendation"`
}

// RegionSummary aggregates customers by region for the region charts.
type RegionSummary struct {
	Region           string  `json:"region"`
	Customers        int     `json:"customers"`
	AvgSpend         float64 `json:"avg_spend"`
	AvgPurchaseCount float64 `json:"avg_purchase_count"`
}

// SegmentCustomers scores every customer 1-5 on recency, frequency and
// monetary value by equal-population binning over the whole table, then
// assigns a segment from an ordered rule table (first match wins). Scores
// are population-relative: adding or removing customers can shift everyone's
// boundaries. Re-running on an unchanged table yields identical labels.
func SegmentCustomers(customers []models.Customer, now time.Time) []ScoredCustomer {
	n := len(customers)
	if n == 0 {
		return nil
	}

	recency := make([]float64, n)
	frequency := make([]float64, n)
	monetary := make([]float64, n)
	for i, c := range customers {
		recency[i] = float64(recencyDays(c.LastPurchase, now))
		frequency[i] = float64(c.PurchaseCount)
		monetary[i] = c.TotalSpend
	}

	// Recency is scored inversely: fewer days since the last purchase is a
	// higher score.
	rScores := quantileScores(recency, 5, true)
	fScores := quantileScores(frequency, 5, false)
	mScores := quantileScores(monetary, 5, false)

	scored := make([]ScoredCustomer, n)
	for i, c := range customers {
		segment := assignSegment(rScores[i], fScores[i], mScores[i])
		scored[i] = ScoredCustomer{
			Customer:       c,
			RecencyDays:    int(recency[i]),
			RecencyScore:   rScores[i],
			FrequencyScore: fScores[i],
			MonetaryScore:  mScores[i],
			Segment:        segment,
			Recommendation: segmentRecommendations[segment],
		}
	}
	return scored
}

// recencyDays is the age of the customer's last purchase in whole days. A
// missing or unparseable date counts as ten years, which lands in the worst
// recency bucket without faulting the whole table.
func recencyDays(lastPurchase string, now time.Time) int {
	day, err := time.Parse("2006-01-02", lastPurchase)
	if err != nil {
		return 3650
	}
	return int(now.Sub(day).Hours() / 24)
}

// quantileScores bins values into up to maxBins equal-population buckets and
// returns a 1-based score per value. Bins are assigned by average rank, so
// tied values always share a score. With fewer distinct values than bins the
// bin count degrades to the distinct count, and a single distinct value puts
// everyone on the neutral score 3; small or heavily tied populations can
// therefore never reach the top bucket.
func quantileScores(values []float64, maxBins int, inverted bool) []int {
	n := len(values)
	scores := make([]int, n)
	if n == 0 {
		return scores
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	distinct := 1
	for i := 1; i < n; i++ {
		if sorted[i] != sorted[i-1] {
			distinct++
		}
	}
	bins := maxBins
	if distinct < bins {
		bins = distinct
	}
	if bins <= 1 {
		for i := range scores {
			scores[i] = 3
		}
		return scores
	}

	for i, v := range values {
		less, equal := 0, 0
		for _, w := range values {
			switch {
			case w < v:
				less++
			case w == v:
				equal++
			}
		}
		rank := float64(less) + float64(equal-1)/2
		bin := int(rank * float64(bins) / float64(n))
		if bin >= bins {
			bin = bins - 1
		}
		if inverted {
			scores[i] = bins - bin
		} else {
			scores[i] = bin + 1
		}
	}
	return scores
}

// assignSegment walks the fixed rule table in order; the first match wins.
func assignSegment(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentVIP
	case r >= 3 && f >= 3 && m >= 3:
		return SegmentLoyal
	case r >= 3 && (f >= 3 || m >= 3):
		return SegmentActive
	case r >= 2 && (f >= 2 || m >= 2):
		return SegmentMidTier
	case r >= 2:
		return SegmentAtRisk
	default:
		return SegmentLost
	}
}

// SegmentDistribution counts customers per segment.
func SegmentDistribution(scored []ScoredCustomer) map[string]int {
	counts := make(map[string]int)
	for _, c := range scored {
		counts[c.Segment]++
	}
	return counts
}

// RegionSummaries aggregates scored customers per region, sorted by region
// name so the series order is stable.
func RegionSummaries(scored []ScoredCustomer) []RegionSummary {
	type acc struct {
		count     int
		spend     float64
		purchases int
	}
	byRegion := make(map[string]*acc)
	for _, c := range scored {
		a := byRegion[c.Region]
		if a == nil {
			a = &acc{}
			byRegion[c.Region] = a
		}
		a.count++
		a.spend += c.TotalSpend
		a.purchases += c.PurchaseCount
	}

	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	summaries := make([]RegionSummary, 0, len(regions))
	for _, r := range regions {
		a := byRegion[r]
		summaries = append(summaries, RegionSummary{
			Region:           r,
			Customers:        a.count,
			AvgSpend:         a.spend / float64(a.count),
			AvgPurchaseCount: float64(a.purchases) / float64(a.count),
		})
	}
	return summaries
}

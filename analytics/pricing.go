package analytics

import (
	"math"
	"time"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

// Margin bounds and the demand window. The suggested price is kept between a
// 20% and a 50% margin over cost, and never below 90% of the current price.
const (
	minMarginFactor  = 1.2
	maxMarginFactor  = 1.5
	priceFloorFactor = 0.9
	demandWindowDays = 30
)

// Hand-tuned monthly factors for the textile seasonality pattern.
var seasonalFactors = map[time.Month]float64{
	time.January:   0.95,
	time.February:  0.9,
	time.March:     1.05,
	time.April:     1.1,
	time.May:       1.05,
	time.June:      1.0,
	time.July:      1.1,
	time.August:    1.05,
	time.September: 1.15,
	time.October:   1.1,
	time.November:  1.05,
	time.December:  1.0,
}

// Price adjustment per customer segment; unknown segments are neutral.
var segmentFactors = map[string]float64{
	"Premium":  1.1,
	"Mid":      1.0,
	"Economic": 0.95,
	"New":      0.97,
}

// PriceRecommendation is the pricing row for one product, carrying both the
// current and the suggested margin so the caller can see when the clamp had
// to favor the price floor over the margin ceiling.
type PriceRecommendation struct {
	ProductID       int     `json:"product_id"`
	Product         string  `json:"product"`
	Category        string  `json:"category"`
	CurrentPrice    float64 `json:"current_price"`
	SuggestedPrice  float64 `json:"suggested_price"`
	Change          float64 `json:"change"`
	ChangePercent   float64 `json:"change_percent"`
	Stock           int     `json:"stock"`
	MinimumStock    int     `json:"minimum_stock"`
	PurchasePrice   float64 `json:"purchase_price"`
	CurrentMargin   float64 `json:"current_margin_percent"`
	SuggestedMargin float64 `json:"suggested_margin_percent"`
}

// PricingEngine computes suggested prices from a snapshot of the product and
// sales tables. It is a pure function of the snapshot and Now; nothing is
// learned or persisted.
type PricingEngine struct {
	Products []models.Product
	Sales    []models.Sale
	Now      time.Time
}

// Suggest prices one product for the given customer segment. The result is
// base × demand × stock × seasonal × segment, clamped into
// [max(cost×1.2, base×0.9), cost×1.5]; when the floor exceeds the ceiling
// the floor wins. An unknown product id is an error, not a silent echo of
// the base price.
func (e PricingEngine) Suggest(productID int, basePrice float64, segment string) (float64, error) {
	var product *models.Product
	for i := range e.Products {
		if e.Products[i].ID == productID {
			product = &e.Products[i]
			break
		}
	}
	if product == nil {
		return 0, store.ErrProductNotFound
	}

	raw := basePrice *
		e.demandFactor(productID) *
		stockFactor(product.Stock, product.MinimumStock) *
		seasonalFactor(e.Now.Month()) *
		segmentFactor(segment)

	floor := math.Max(product.PurchasePrice*minMarginFactor, basePrice*priceFloorFactor)
	ceiling := product.PurchasePrice * maxMarginFactor
	price := math.Max(floor, math.Min(raw, ceiling))
	return math.Round(price*100) / 100, nil
}

// demandFactor maps the trailing-30-day mean daily sale quantity to a fixed
// tier. The denominator is the window length, not the days with sales.
func (e PricingEngine) demandFactor(productID int) float64 {
	start := e.Now.AddDate(0, 0, -demandWindowDays)
	total := 0
	seen := false
	for _, s := range e.Sales {
		if s.ProductID != productID {
			continue
		}
		day, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(e.Now) {
			continue
		}
		total += s.Quantity
		seen = true
	}
	if !seen {
		return 1.0
	}

	avgDaily := float64(total) / float64(demandWindowDays)
	switch {
	case avgDaily == 0:
		return 1.0
	case avgDaily <= 1:
		return 0.9
	case avgDaily <= 3:
		return 1.0
	case avgDaily <= 5:
		return 1.2
	default:
		return 1.4
	}
}

func stockFactor(stock, minimum int) float64 {
	current := float64(stock)
	min := float64(minimum)
	switch {
	case current <= min*0.5:
		return 1.2
	case current <= min:
		return 1.1
	case current <= min*2:
		return 1.0
	case current <= min*5:
		return 0.95
	default:
		return 0.9
	}
}

func seasonalFactor(month time.Month) float64 {
	if f, ok := seasonalFactors[month]; ok {
		return f
	}
	return 1.0
}

func segmentFactor(segment string) float64 {
	if f, ok := segmentFactors[segment]; ok {
		return f
	}
	return 1.0
}

// Recommendations prices every product at the neutral segment and reports the
// proposed change against the current sale price.
func (e PricingEngine) Recommendations() []PriceRecommendation {
	recs := make([]PriceRecommendation, 0, len(e.Products))
	for _, p := range e.Products {
		suggested, err := e.Suggest(p.ID, p.SalePrice, "Mid")
		if err != nil {
			continue
		}
		change := suggested - p.SalePrice
		changePercent := 0.0
		if p.SalePrice > 0 {
			changePercent = change / p.SalePrice * 100
		}
		suggestedMargin := 0.0
		if p.PurchasePrice > 0 {
			suggestedMargin = (suggested - p.PurchasePrice) / p.PurchasePrice * 100
		}
		recs = append(recs, PriceRecommendation{
			ProductID:       p.ID,
			Product:         p.Name,
			Category:        p.Category,
			CurrentPrice:    p.SalePrice,
			SuggestedPrice:  suggested,
			Change:          change,
			ChangePercent:   changePercent,
			Stock:           p.Stock,
			MinimumStock:    p.MinimumStock,
			PurchasePrice:   p.PurchasePrice,
			CurrentMargin:   p.MarginPercent(),
			SuggestedMargin: suggestedMargin,
		})
	}
	return recs
}

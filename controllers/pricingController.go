package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/canakikol/stok-takip/analytics"
	"github.com/canakikol/stok-takip/store"
)

// PriceProposal is the staged half of the confirm-then-apply flow: creating
// one stages the selected price changes, confirming applies them in a single
// product-table rewrite. Proposals live in process memory only.
type PriceProposal struct {
	ID        int                             `json:"id"`
	Scope     string                          `json:"scope"`
	State     string                          `json:"state"`
	CreatedAt time.Time                       `json:"created_at"`
	Changes   []analytics.PriceRecommendation `json:"changes"`
}

var (
	proposalMu     sync.Mutex
	proposalNextID = 1
	proposals      = make(map[int]*PriceProposal)
)

func pricingEngine() (analytics.PricingEngine, error) {
	products, err := store.DB.Products()
	if err != nil {
		return analytics.PricingEngine{}, err
	}
	sales, err := store.DB.Sales()
	if err != nil {
		return analytics.PricingEngine{}, err
	}
	return analytics.PricingEngine{Products: products, Sales: sales, Now: time.Now()}, nil
}

// PricingRecommendations returns the suggested price for every product.
func PricingRecommendations(c *gin.Context) {
	engine, err := pricingEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recs := engine.Recommendations()
	increases, decreases := 0, 0
	changeSum := 0.0
	for _, r := range recs {
		if r.Change > 0 {
			increases++
		} else if r.Change < 0 {
			decreases++
		}
		changeSum += r.ChangePercent
	}
	avgChange := 0.0
	if len(recs) > 0 {
		avgChange = changeSum / float64(len(recs))
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations":    recs,
		"total":              len(recs),
		"increases":          increases,
		"decreases":          decreases,
		"avg_change_percent": avgChange,
	})
}

// CreatePriceProposal stages a bulk price update. Scope selects which
// recommendations are included: all, increases, or decreases.
func CreatePriceProposal(c *gin.Context) {
	var input struct {
		Scope string `json:"scope" binding:"required,oneof=all increases decreases"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	engine, err := pricingEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	changes := make([]analytics.PriceRecommendation, 0)
	for _, r := range engine.Recommendations() {
		switch input.Scope {
		case "increases":
			if r.Change <= 0 {
				continue
			}
		case "decreases":
			if r.Change >= 0 {
				continue
			}
		}
		changes = append(changes, r)
	}
	if len(changes) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No price changes match the requested scope"})
		return
	}

	proposalMu.Lock()
	proposal := &PriceProposal{
		ID:        proposalNextID,
		Scope:     input.Scope,
		State:     "pending",
		CreatedAt: time.Now(),
		Changes:   changes,
	}
	proposalNextID++
	proposals[proposal.ID] = proposal
	proposalMu.Unlock()

	c.JSON(http.StatusCreated, proposal)
}

// ConfirmPriceProposal applies a staged proposal. The new prices are written
// in one rewrite of the product table.
func ConfirmPriceProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	proposalMu.Lock()
	proposal, found := proposals[id]
	if found && proposal.State == "pending" {
		proposal.State = "confirmed"
	}
	proposalMu.Unlock()

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	}
	if proposal.State != "confirmed" {
		c.JSON(http.StatusConflict, gin.H{"error": "Proposal is not pending"})
		return
	}

	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	newPrices := make(map[int]float64, len(proposal.Changes))
	for _, ch := range proposal.Changes {
		newPrices[ch.ProductID] = ch.SuggestedPrice
	}
	applied := 0
	for i := range products {
		if price, ok := newPrices[products[i].ID]; ok {
			products[i].SalePrice = price
			applied++
		}
	}
	if err := store.DB.SaveProducts(products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	proposalMu.Lock()
	delete(proposals, id)
	proposalMu.Unlock()

	log.WithFields(log.Fields{"proposal": id, "applied": applied}).Info("Price proposal applied")
	c.JSON(http.StatusOK, gin.H{"message": "Prices updated", "applied": applied})
}

// CancelPriceProposal discards a staged proposal without applying it.
func CancelPriceProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	proposalMu.Lock()
	_, found := proposals[id]
	delete(proposals, id)
	proposalMu.Unlock()

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proposal cancelled"})
}

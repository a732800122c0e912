package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/analytics"
	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

func handleCustomerError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type customerInput struct {
	Name          string  `json:"name" binding:"required"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Region        string  `json:"region"`
	LastPurchase  string  `json:"last_purchase_date"`
	PurchaseCount int     `json:"total_purchase_count"`
	TotalSpend    float64 `json:"total_spend"`
}

func (in customerInput) validate() error {
	if in.LastPurchase != "" {
		if _, err := time.Parse("2006-01-02", in.LastPurchase); err != nil {
			return errors.New("last_purchase_date must be YYYY-MM-DD")
		}
	}
	return nil
}

func GetCustomers(c *gin.Context) {
	customers, err := store.DB.Customers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func CreateCustomer(c *gin.Context) {
	var input customerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := store.DB.AddCustomer(models.Customer{
		Name:          input.Name,
		Age:           input.Age,
		Gender:        input.Gender,
		Region:        input.Region,
		LastPurchase:  input.LastPurchase,
		PurchaseCount: input.PurchaseCount,
		TotalSpend:    input.TotalSpend,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created successfully", "customer": customer})
}

func UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input customerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		ID:            id,
		Name:          input.Name,
		Age:           input.Age,
		Gender:        input.Gender,
		Region:        input.Region,
		LastPurchase:  input.LastPurchase,
		PurchaseCount: input.PurchaseCount,
		TotalSpend:    input.TotalSpend,
	}
	if err := store.DB.UpdateCustomer(customer); err != nil {
		handleCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DB.DeleteCustomer(id); err != nil {
		handleCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// CustomerSegmentation runs the RFM analysis over the whole customer table
// and returns the scored rows plus the aggregates the segment charts use.
func CustomerSegmentation(c *gin.Context) {
	customers, err := store.DB.Customers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	scored := analytics.SegmentCustomers(customers, time.Now())

	avgRecency, avgPurchases, avgSpend := 0.0, 0.0, 0.0
	for _, s := range scored {
		avgRecency += float64(s.RecencyDays)
		avgPurchases += float64(s.PurchaseCount)
		avgSpend += s.TotalSpend
	}
	if n := float64(len(scored)); n > 0 {
		avgRecency /= n
		avgPurchases /= n
		avgSpend /= n
	}

	distribution := analytics.SegmentDistribution(scored)
	c.JSON(http.StatusOK, gin.H{
		"customers":    scored,
		"distribution": distribution,
		"regions":      analytics.RegionSummaries(scored),
		"metrics": gin.H{
			"total":              len(scored),
			"avg_recency_days":   avgRecency,
			"avg_purchase_count": avgPurchases,
			"avg_spend":          avgSpend,
			"vip_count":          distribution[analytics.SegmentVIP],
			"lost_count":         distribution[analytics.SegmentLost],
		},
	})
}

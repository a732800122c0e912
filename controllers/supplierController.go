package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

func handleSupplierError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrSupplierNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type supplierInput struct {
	Name             string  `json:"name" binding:"required"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Address          string  `json:"address"`
	Categories       string  `json:"categories"`
	LeadTimeDays     int     `json:"lead_time_days"`
	PerformanceScore float64 `json:"performance_score"`
	Active           *bool   `json:"active"`
}

func (in supplierInput) validate() error {
	if in.LeadTimeDays < 1 {
		return errors.New("lead_time_days must be at least 1")
	}
	if in.PerformanceScore < 1.0 || in.PerformanceScore > 5.0 {
		return errors.New("performance_score must be between 1.0 and 5.0")
	}
	return nil
}

func GetSuppliers(c *gin.Context) {
	suppliers, err := store.DB.Suppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func CreateSupplier(c *gin.Context) {
	var input supplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	supplier, err := store.DB.AddSupplier(models.Supplier{
		Name:             input.Name,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		Categories:       input.Categories,
		LeadTimeDays:     input.LeadTimeDays,
		PerformanceScore: input.PerformanceScore,
		LastOrderDate:    time.Now().Format("2006-01-02"),
		Active:           active,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created successfully", "supplier": supplier})
}

func UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := store.DB.Supplier(id)
	if err != nil {
		handleSupplierError(c, err)
		return
	}

	var input supplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Name = input.Name
	existing.Phone = input.Phone
	existing.Email = input.Email
	existing.Address = input.Address
	existing.Categories = input.Categories
	existing.LeadTimeDays = input.LeadTimeDays
	existing.PerformanceScore = input.PerformanceScore
	if input.Active != nil {
		existing.Active = *input.Active
	}

	if err := store.DB.UpdateSupplier(existing); err != nil {
		handleSupplierError(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DB.DeleteSupplier(id); err != nil {
		handleSupplierError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

// SupplierAnalytics feeds the supplier charts: the performance and lead-time
// series plus table-wide averages.
func SupplierAnalytics(c *gin.Context) {
	suppliers, err := store.DB.Suppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make([]string, 0, len(suppliers))
	performance := make([]float64, 0, len(suppliers))
	leadTimes := make([]int, 0, len(suppliers))
	avgPerformance, avgLeadTime := 0.0, 0.0
	for _, s := range suppliers {
		names = append(names, s.Name)
		performance = append(performance, s.PerformanceScore)
		leadTimes = append(leadTimes, s.LeadTimeDays)
		avgPerformance += s.PerformanceScore
		avgLeadTime += float64(s.LeadTimeDays)
	}
	if n := float64(len(suppliers)); n > 0 {
		avgPerformance /= n
		avgLeadTime /= n
	}

	c.JSON(http.StatusOK, gin.H{
		"suppliers":       names,
		"performance":     performance,
		"lead_time_days":  leadTimes,
		"total":           len(suppliers),
		"avg_performance": avgPerformance,
		"avg_lead_time":   avgLeadTime,
	})
}

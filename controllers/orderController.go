package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

type orderRow struct {
	models.Order
	SupplierName string `json:"supplier_name"`
	Orphaned     bool   `json:"orphaned"`
}

// GetOrders lists orders joined with supplier names. An order whose supplier
// no longer exists is returned with the orphaned flag set instead of being
// dropped or faulting the listing.
func GetOrders(c *gin.Context) {
	orders, err := store.DB.Orders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	suppliers, err := store.DB.Suppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make(map[int]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}

	rows := make([]orderRow, 0, len(orders))
	orphaned := 0
	for _, o := range orders {
		name, ok := names[o.SupplierID]
		if !ok {
			orphaned++
		}
		rows = append(rows, orderRow{Order: o, SupplierName: name, Orphaned: !ok})
	}
	if orphaned > 0 {
		log.WithFields(log.Fields{"count": orphaned}).Warn("Orders reference missing suppliers")
	}
	c.JSON(http.StatusOK, gin.H{"orders": rows, "orphaned_count": orphaned})
}

func CreateOrder(c *gin.Context) {
	var input struct {
		SupplierID   int     `json:"supplier_id" binding:"required"`
		ProductName  string  `json:"product_name" binding:"required"`
		Quantity     int     `json:"quantity" binding:"required,gt=0"`
		UnitPrice    float64 `json:"unit_price"`
		DeliveryDate string  `json:"delivery_date"`
		Status       string  `json:"status"`
		Notes        string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := store.DB.Supplier(input.SupplierID)
	if err != nil {
		handleSupplierError(c, err)
		return
	}

	status := input.Status
	if status == "" {
		status = models.OrderPending
	}
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	delivery := input.DeliveryDate
	if delivery == "" {
		delivery = time.Now().AddDate(0, 0, supplier.LeadTimeDays).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", delivery); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_date must be YYYY-MM-DD"})
		return
	}

	order, err := store.DB.AddOrder(models.Order{
		SupplierID:   supplier.ID,
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		OrderDate:    time.Now().Format("2006-01-02"),
		DeliveryDate: delivery,
		Status:       status,
		Notes:        input.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

func UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	order, err := store.DB.UpdateOrderStatus(id, input.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DB.DeleteOrder(id); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

type autoOrderSuggestion struct {
	ProductID         int               `json:"product_id"`
	Product           string            `json:"product"`
	Category          string            `json:"category"`
	Stock             int               `json:"stock"`
	MinimumStock      int               `json:"minimum_stock"`
	Deficit           int               `json:"deficit"`
	SuggestedQuantity int               `json:"suggested_quantity"`
	EstimatedCost     float64           `json:"estimated_cost"`
	Suppliers         []models.Supplier `json:"suppliers"`
}

// matchSuppliers returns the suppliers whose free-text category list contains
// the product category (case-insensitive substring), best performance first.
func matchSuppliers(suppliers []models.Supplier, category string) []models.Supplier {
	matched := make([]models.Supplier, 0)
	for _, s := range suppliers {
		if category != "" && strings.Contains(strings.ToLower(s.Categories), strings.ToLower(category)) {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PerformanceScore > matched[j].PerformanceScore
	})
	return matched
}

// AutoOrderSuggestions proposes a restock order for every low-stock product:
// twice the deficit against the minimum, costed at the purchase price, with
// the matching suppliers ranked by performance score.
func AutoOrderSuggestions(c *gin.Context) {
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	suppliers, err := store.DB.Suppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suggestions := make([]autoOrderSuggestion, 0)
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		deficit := p.MinimumStock - p.Stock
		quantity := deficit * 2
		suggestions = append(suggestions, autoOrderSuggestion{
			ProductID:         p.ID,
			Product:           p.Name,
			Category:          p.Category,
			Stock:             p.Stock,
			MinimumStock:      p.MinimumStock,
			Deficit:           deficit,
			SuggestedQuantity: quantity,
			EstimatedCost:     float64(quantity) * p.PurchasePrice,
			Suppliers:         matchSuppliers(suppliers, p.Category),
		})
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "supplier_count": len(suppliers)})
}

// PlaceAutoOrder commits the suggestion for one product: the best-performing
// supplier matching the category takes the order (falling back to the best
// supplier overall), delivery at today plus the supplier's lead time.
func PlaceAutoOrder(c *gin.Context) {
	var input struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := store.DB.Product(input.ProductID)
	if err != nil {
		handleProductError(c, err)
		return
	}
	if !product.LowStock() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not below its minimum stock"})
		return
	}

	suppliers, err := store.DB.Suppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(suppliers) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No suppliers available for automatic ordering"})
		return
	}

	candidates := matchSuppliers(suppliers, product.Category)
	if len(candidates) == 0 {
		candidates = append([]models.Supplier(nil), suppliers...)
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].PerformanceScore > candidates[j].PerformanceScore
		})
	}
	best := candidates[0]

	quantity := (product.MinimumStock - product.Stock) * 2
	order, err := store.DB.AddOrder(models.Order{
		SupplierID:   best.ID,
		ProductName:  product.Name,
		Quantity:     quantity,
		UnitPrice:    product.PurchasePrice,
		OrderDate:    time.Now().Format("2006-01-02"),
		DeliveryDate: time.Now().AddDate(0, 0, best.LeadTimeDays).Format("2006-01-02"),
		Status:       models.OrderPending,
		Notes:        fmt.Sprintf("Automatic restock order - %s - low stock", product.Category),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.WithFields(log.Fields{
		"product":  product.Name,
		"supplier": best.Name,
		"quantity": quantity,
	}).Info("Automatic order placed")
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Automatic order placed",
		"order":    order,
		"supplier": best,
	})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

func handleProductError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

type productRow struct {
	models.Product
	LowStock      bool    `json:"low_stock"`
	MarginPercent float64 `json:"margin_percent"`
}

func GetProducts(c *gin.Context) {
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{Product: p, LowStock: p.LowStock(), MarginPercent: p.MarginPercent()})
	}
	c.JSON(http.StatusOK, rows)
}

func GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := store.DB.Product(id)
	if err != nil {
		handleProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func CreateProduct(c *gin.Context) {
	var input struct {
		Name          string  `json:"name" binding:"required"`
		Category      string  `json:"category"`
		Stock         int     `json:"stock"`
		MinimumStock  int     `json:"minimum_stock"`
		PurchasePrice float64 `json:"purchase_price"`
		SalePrice     float64 `json:"sale_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Stock < 0 || input.MinimumStock < 0 || input.PurchasePrice < 0 || input.SalePrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantities and prices must not be negative"})
		return
	}

	product, err := store.DB.AddProduct(models.Product{
		Name:          input.Name,
		Category:      input.Category,
		Stock:         input.Stock,
		MinimumStock:  input.MinimumStock,
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

func UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := store.DB.Product(id)
	if err != nil {
		handleProductError(c, err)
		return
	}

	var input struct {
		Name          string  `json:"name" binding:"required"`
		Category      string  `json:"category"`
		Stock         int     `json:"stock"`
		MinimumStock  int     `json:"minimum_stock"`
		PurchasePrice float64 `json:"purchase_price"`
		SalePrice     float64 `json:"sale_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Stock < 0 || input.MinimumStock < 0 || input.PurchasePrice < 0 || input.SalePrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantities and prices must not be negative"})
		return
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Stock = input.Stock
	product.MinimumStock = input.MinimumStock
	product.PurchasePrice = input.PurchasePrice
	product.SalePrice = input.SalePrice

	if err := store.DB.UpdateProduct(product); err != nil {
		handleProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DB.DeleteProduct(id); err != nil {
		handleProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// LowStockItems lists products at or below their minimum stock.
func LowStockItems(c *gin.Context) {
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch low stock items"})
		return
	}
	low := make([]models.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	c.JSON(http.StatusOK, low)
}

// ProductSummary returns the stock-management dashboard tiles. An empty
// product table yields zeros and raises no low-stock warning.
func ProductSummary(c *gin.Context) {
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lowStock := 0
	totalValue := 0.0
	for _, p := range products {
		if p.LowStock() {
			lowStock++
		}
		totalValue += float64(p.Stock) * p.SalePrice
	}
	c.JSON(http.StatusOK, gin.H{
		"total":       len(products),
		"low_stock":   lowStock,
		"total_value": totalValue,
	})
}

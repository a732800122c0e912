package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

type saleRow struct {
	ID            int     `json:"id"`
	Date          string  `json:"date"`
	Product       string  `json:"product"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchase_price"`
	Total         float64 `json:"total"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
}

func CreateSale(c *gin.Context) {
	var input struct {
		ProductID int     `json:"product_id" binding:"required"`
		Quantity  int     `json:"quantity" binding:"required,gt=0"`
		Price     float64 `json:"price"`
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

	// The form pre-fills the product's sale price; an omitted price means
	// "sell at list price".
	price := input.Price
	if price <= 0 {
		price = product.SalePrice
	}

	sale, err := store.DB.RecordSale(input.ProductID, input.Quantity, price, time.Now().Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, store.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// joinSales merges sale rows with their product and derives the money
// columns. Sales whose product was deleted are dropped, matching the
// inner-join history view.
func joinSales(sales []models.Sale, products []models.Product) []saleRow {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	rows := make([]saleRow, 0, len(sales))
	for _, s := range sales {
		p, ok := byID[s.ProductID]
		if !ok {
			continue
		}
		profit := float64(s.Quantity) * (s.Price - p.PurchasePrice)
		margin := 0.0
		if p.PurchasePrice > 0 {
			margin = (s.Price - p.PurchasePrice) / p.PurchasePrice * 100
		}
		rows = append(rows, saleRow{
			ID:            s.ID,
			Date:          s.Date,
			Product:       p.Name,
			Category:      p.Category,
			Quantity:      s.Quantity,
			Price:         s.Price,
			PurchasePrice: p.PurchasePrice,
			Total:         s.Total(),
			Profit:        profit,
			MarginPercent: margin,
		})
	}
	return rows
}

func GetSales(c *gin.Context) {
	sales, err := store.DB.Sales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	rows := joinSales(sales, products)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].ID > rows[j].ID
	})

	totalRevenue, totalProfit := 0.0, 0.0
	for _, r := range rows {
		totalRevenue += r.Total
		totalProfit += r.Profit
	}
	c.JSON(http.StatusOK, gin.H{
		"sales":         rows,
		"total_count":   len(rows),
		"total_revenue": totalRevenue,
		"total_profit":  totalProfit,
	})
}

func GetRecentSales(c *gin.Context) {
	sales, err := store.DB.Sales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	rows := joinSales(sales, products)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].ID > rows[j].ID
	})
	if len(rows) > 5 {
		rows = rows[:5]
	}
	c.JSON(http.StatusOK, rows)
}

// SalesAnalytics feeds the sales charts: totals per category, the top selling
// products, and the profit summary.
func SalesAnalytics(c *gin.Context) {
	sales, err := store.DB.Sales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	products, err := store.DB.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	rows := joinSales(sales, products)

	type bucket struct {
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}
	byCategory := make(map[string]*bucket)
	byProduct := make(map[string]*bucket)
	totalProfit, marginSum := 0.0, 0.0
	bestProduct, bestProfit := "", 0.0
	profitByProduct := make(map[string]float64)

	for _, r := range rows {
		cb := byCategory[r.Category]
		if cb == nil {
			cb = &bucket{Name: r.Category}
			byCategory[r.Category] = cb
		}
		cb.Quantity += r.Quantity
		cb.Revenue += r.Total

		pb := byProduct[r.Product]
		if pb == nil {
			pb = &bucket{Name: r.Product}
			byProduct[r.Product] = pb
		}
		pb.Quantity += r.Quantity
		pb.Revenue += r.Total

		totalProfit += r.Profit
		marginSum += r.MarginPercent
		profitByProduct[r.Product] += r.Profit
		if profitByProduct[r.Product] > bestProfit || bestProduct == "" {
			bestProduct = r.Product
			bestProfit = profitByProduct[r.Product]
		}
	}

	categories := make([]bucket, 0, len(byCategory))
	for _, b := range byCategory {
		categories = append(categories, *b)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	topProducts := make([]bucket, 0, len(byProduct))
	for _, b := range byProduct {
		topProducts = append(topProducts, *b)
	}
	sort.Slice(topProducts, func(i, j int) bool { return topProducts[i].Quantity > topProducts[j].Quantity })
	if len(topProducts) > 10 {
		topProducts = topProducts[:10]
	}

	avgMargin := 0.0
	if len(rows) > 0 {
		avgMargin = marginSum / float64(len(rows))
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":      categories,
		"top_products":    topProducts,
		"total_profit":    totalProfit,
		"avg_margin":      avgMargin,
		"most_profitable": bestProduct,
	})
}

func DeleteSaleRecords(c *gin.Context) {
	if err := store.DB.DeleteSales(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear sales history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales records cleared successfully"})
}

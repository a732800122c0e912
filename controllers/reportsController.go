package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/canakikol/stok-takip/models"
	"github.com/canakikol/stok-takip/store"
)

type GenerateReportRequest struct {
	ReportType string `json:"reportType" binding:"required,oneof=sales current-stock low-stock valuation"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type reportRow struct {
	Date       string
	Product    string
	Quantity   int
	Price      float64
	TotalValue float64
}

// GenerateReport renders one of the dashboard reports as a PDF attachment.
// Only the sales report takes a date range.
func GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate, endDate time.Time
	if req.ReportType == "sales" {
		var err error
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format"})
			return
		}
		endDate, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format"})
			return
		}
	}

	rows, title, err := fetchReportData(req.ReportType, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdf, err := renderReportPDF(rows, title, req.ReportType, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", req.ReportType))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func fetchReportData(reportType string, startDate, endDate time.Time) ([]reportRow, string, error) {
	var rows []reportRow
	var title string

	switch reportType {
	case "sales":
		sales, err := store.DB.Sales()
		if err != nil {
			return nil, "", err
		}
		products, err := store.DB.Products()
		if err != nil {
			return nil, "", err
		}
		byID := make(map[int]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		for _, sale := range sales {
			day, err := time.Parse("2006-01-02", sale.Date)
			if err != nil || day.Before(startDate) || day.After(endDate) {
				continue
			}
			rows = append(rows, reportRow{
				Date:       sale.Date,
				Product:    byID[sale.ProductID].Name,
				Quantity:   sale.Quantity,
				Price:      sale.Price,
				TotalValue: sale.Total(),
			})
		}
		title = "Sales Report"

	case "current-stock":
		products, err := store.DB.Products()
		if err != nil {
			return nil, "", err
		}
		for _, product := range products {
			rows = append(rows, reportRow{
				Product:    product.Name,
				Quantity:   product.Stock,
				Price:      product.SalePrice,
				TotalValue: float64(product.Stock) * product.SalePrice,
			})
		}
		title = "Current Stock Report"

	case "low-stock":
		products, err := store.DB.Products()
		if err != nil {
			return nil, "", err
		}
		for _, product := range products {
			if !product.LowStock() {
				continue
			}
			rows = append(rows, reportRow{
				Product:    product.Name,
				Quantity:   product.Stock,
				Price:      product.SalePrice,
				TotalValue: float64(product.Stock) * product.SalePrice,
			})
		}
		title = "Low Stock Report"

	case "valuation":
		products, err := store.DB.Products()
		if err != nil {
			return nil, "", err
		}
		// Price column carries the unit cost; TotalValue the potential
		// profit if the whole stock sells at the current price.
		for _, product := range products {
			rows = append(rows, reportRow{
				Product:    product.Name,
				Quantity:   product.Stock,
				Price:      product.PurchasePrice,
				TotalValue: float64(product.Stock) * (product.SalePrice - product.PurchasePrice),
			})
		}
		title = "Inventory Valuation Report"

	default:
		return nil, "", fmt.Errorf("invalid report type")
	}

	return rows, title, nil
}

func renderReportPDF(rows []reportRow, title, reportType string, startDate, endDate time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	if reportType == "sales" {
		pdf.CellFormat(0, 10, fmt.Sprintf("Date Range: %s to %s", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
		pdf.Ln(5)

		var totalItems int
		var totalValue float64
		for _, row := range rows {
			totalItems += row.Quantity
			totalValue += row.TotalValue
		}
		pdf.CellFormat(0, 10, fmt.Sprintf("Total Items Sold: %d", totalItems), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Total Sales: TL %.2f", totalValue), "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	priceHeader := "Price"
	valueHeader := "Total Value"
	if reportType == "valuation" {
		priceHeader = "Unit Cost"
		valueHeader = "Pot. Profit"
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 10, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Quantity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, priceHeader, "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, valueHeader, "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.CellFormat(40, 10, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 10, row.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("TL %.2f", row.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("TL %.2f", row.TotalValue), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

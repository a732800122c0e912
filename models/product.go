package models

// Product is one row of products.csv. Stock is the current on-hand quantity;
// MinimumStock is the reorder threshold the low-stock checks compare against.
type Product struct {
	ID            int     `json:"id" csv:"id"`
	Name          string  `json:"name" csv:"name" binding:"required"`
	Category      string  `json:"category" csv:"category"`
	Stock         int     `json:"stock" csv:"stock"`
	MinimumStock  int     `json:"minimum_stock" csv:"minimum_stock"`
	PurchasePrice float64 `json:"purchase_price" csv:"purchase_price"`
	SalePrice     float64 `json:"sale_price" csv:"sale_price"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinimumStock
}

// MarginPercent is the margin of the current sale price over cost, in percent.
// A zero purchase price yields 0 rather than a division fault.
func (p Product) MarginPercent() float64 {
	if p.PurchasePrice == 0 {
		return 0
	}
	return (p.SalePrice - p.PurchasePrice) / p.PurchasePrice * 100
}

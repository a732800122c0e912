package models

// Customer is one row of customers.csv. Recency, RFM scores and segment are
// derived on every read and never persisted.
type Customer struct {
	ID            int     `json:"id" csv:"id"`
	Name          string  `json:"name" csv:"name" binding:"required"`
	Age           int     `json:"age" csv:"age"`
	Gender        string  `json:"gender" csv:"gender"`
	Region        string  `json:"region" csv:"region"`
	LastPurchase  string  `json:"last_purchase_date" csv:"last_purchase_date"`
	PurchaseCount int     `json:"total_purchase_count" csv:"total_purchase_count"`
	TotalSpend    float64 `json:"total_spend" csv:"total_spend"`
}

package models

// Supplier is one row of suppliers.csv. Categories is free text matched by
// substring when pairing low-stock products with suppliers.
type Supplier struct {
	ID               int     `json:"id" csv:"id"`
	Name             string  `json:"name" csv:"name" binding:"required"`
	Phone            string  `json:"phone" csv:"phone"`
	Email            string  `json:"email" csv:"email"`
	Address          string  `json:"address" csv:"address"`
	Categories       string  `json:"categories" csv:"categories"`
	LeadTimeDays     int     `json:"lead_time_days" csv:"lead_time_days"`
	PerformanceScore float64 `json:"performance_score" csv:"performance_score"`
	LastOrderDate    string  `json:"last_order_date" csv:"last_order_date"`
	Active           bool    `json:"active" csv:"active"`
}

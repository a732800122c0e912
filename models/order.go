package models

// Order statuses. Stored as-is in orders.csv.
const (
	OrderPending   = "Pending"
	OrderConfirmed = "Confirmed"
	OrderInTransit = "InTransit"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is one row of orders.csv. ProductName is free text, not a foreign
// key; SupplierID references suppliers.csv and is joined at read time.
type Order struct {
	ID           int     `json:"id" csv:"id"`
	SupplierID   int     `json:"supplier_id" csv:"supplier_id"`
	ProductName  string  `json:"product_name" csv:"product_name"`
	Quantity     int     `json:"quantity" csv:"quantity"`
	UnitPrice    float64 `json:"unit_price" csv:"unit_price"`
	TotalPrice   float64 `json:"total_price" csv:"total_price"`
	OrderDate    string  `json:"order_date" csv:"order_date"`
	DeliveryDate string  `json:"delivery_date" csv:"delivery_date"`
	Status       string  `json:"status" csv:"status"`
	Notes        string  `json:"notes" csv:"notes"`
}

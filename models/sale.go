package models

// Sale is one row of sales.csv. Rows are append-only; the date is stored as
// an ISO day (2006-01-02) so the file stays spreadsheet-friendly.
type Sale struct {
	ID        int     `json:"id" csv:"id"`
	ProductID int     `json:"product_id" csv:"product_id"`
	Date      string  `json:"date" csv:"date"`
	Quantity  int     `json:"quantity" csv:"quantity"`
	Price     float64 `json:"price" csv:"price"`
}

// Total is the row amount at the recorded unit price.
func (s Sale) Total() float64 {
	return float64(s.Quantity) * s.Price
}

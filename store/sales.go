package store

import "github.com/canakikol/stok-takip/models"

// Sales returns the full sales table.
func (s *Store) Sales() ([]models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sales []models.Sale
	if err := loadFile(s, salesFile, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// RecordSale appends a sale row and decrements the product's stock. The two
// datasets are rewritten one after the other under the store lock; there is
// no cross-file transaction, so a crash between the writes can leave a sale
// without its stock decrement.
func (s *Store) RecordSale(productID, quantity int, price float64, date string) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Sale{}, err
	}
	idx := -1
	for i := range products {
		if products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Sale{}, ErrProductNotFound
	}
	if products[idx].Stock < quantity {
		return models.Sale{}, ErrInsufficientStock
	}

	var sales []models.Sale
	if err := loadFile(s, salesFile, &sales); err != nil {
		return models.Sale{}, err
	}
	sale := models.Sale{
		ID:        nextID(sales, func(s models.Sale) int { return s.ID }),
		ProductID: productID,
		Date:      date,
		Quantity:  quantity,
		Price:     price,
	}
	sales = append(sales, sale)
	if err := saveFile(s, salesFile, sales); err != nil {
		return models.Sale{}, err
	}

	products[idx].Stock -= quantity
	if err := saveFile(s, productsFile, products); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// DeleteSales clears the sales history.
func (s *Store) DeleteSales() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveFile(s, salesFile, []models.Sale{})
}

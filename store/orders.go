package store

import "github.com/canakikol/stok-takip/models"

// Orders returns the full order table.
func (s *Store) Orders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := loadFile(s, ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AddOrder appends an order under a fresh max+1 id. TotalPrice is always
// recomputed from quantity and unit price.
func (s *Store) AddOrder(o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := loadFile(s, ordersFile, &orders); err != nil {
		return models.Order{}, err
	}
	o.ID = nextID(orders, func(o models.Order) int { return o.ID })
	o.TotalPrice = float64(o.Quantity) * o.UnitPrice
	orders = append(orders, o)
	if err := saveFile(s, ordersFile, orders); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// UpdateOrderStatus moves an order to a new status.
func (s *Store) UpdateOrderStatus(id int, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := loadFile(s, ordersFile, &orders); err != nil {
		return models.Order{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := saveFile(s, ordersFile, orders); err != nil {
				return models.Order{}, err
			}
			return orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// DeleteOrder removes the row with the given id.
func (s *Store) DeleteOrder(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := loadFile(s, ordersFile, &orders); err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders = append(orders[:i], orders[i+1:]...)
			return saveFile(s, ordersFile, orders)
		}
	}
	return ErrOrderNotFound
}

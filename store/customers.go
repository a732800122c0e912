package store

import "github.com/canakikol/stok-takip/models"

// Customers returns the full customer table.
func (s *Store) Customers() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := loadFile(s, customersFile, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// AddCustomer appends a customer under a fresh max+1 id.
func (s *Store) AddCustomer(c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := loadFile(s, customersFile, &customers); err != nil {
		return models.Customer{}, err
	}
	c.ID = nextID(customers, func(c models.Customer) int { return c.ID })
	customers = append(customers, c)
	if err := saveFile(s, customersFile, customers); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// UpdateCustomer replaces the row with the same id.
func (s *Store) UpdateCustomer(c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := loadFile(s, customersFile, &customers); err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			return saveFile(s, customersFile, customers)
		}
	}
	return ErrCustomerNotFound
}

// DeleteCustomer removes the row with the given id.
func (s *Store) DeleteCustomer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := loadFile(s, customersFile, &customers); err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			return saveFile(s, customersFile, customers)
		}
	}
	return ErrCustomerNotFound
}

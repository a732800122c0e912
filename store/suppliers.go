package store

import "github.com/canakikol/stok-takip/models"

// Suppliers returns the full supplier table.
func (s *Store) Suppliers() ([]models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var suppliers []models.Supplier
	if err := loadFile(s, suppliersFile, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Supplier looks up a single supplier by id.
func (s *Store) Supplier(id int) (models.Supplier, error) {
	suppliers, err := s.Suppliers()
	if err != nil {
		return models.Supplier{}, err
	}
	for _, sup := range suppliers {
		if sup.ID == id {
			return sup, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

// AddSupplier appends a supplier under a fresh max+1 id.
func (s *Store) AddSupplier(sup models.Supplier) (models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var suppliers []models.Supplier
	if err := loadFile(s, suppliersFile, &suppliers); err != nil {
		return models.Supplier{}, err
	}
	sup.ID = nextID(suppliers, func(s models.Supplier) int { return s.ID })
	suppliers = append(suppliers, sup)
	if err := saveFile(s, suppliersFile, suppliers); err != nil {
		return models.Supplier{}, err
	}
	return sup, nil
}

// UpdateSupplier replaces the row with the same id.
func (s *Store) UpdateSupplier(sup models.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var suppliers []models.Supplier
	if err := loadFile(s, suppliersFile, &suppliers); err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == sup.ID {
			suppliers[i] = sup
			return saveFile(s, suppliersFile, suppliers)
		}
	}
	return ErrSupplierNotFound
}

// DeleteSupplier removes the row with the given id. Orders referencing the
// supplier are left in place and surface as orphaned on the order listing.
func (s *Store) DeleteSupplier(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var suppliers []models.Supplier
	if err := loadFile(s, suppliersFile, &suppliers); err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			suppliers = append(suppliers[:i], suppliers[i+1:]...)
			return saveFile(s, suppliersFile, suppliers)
		}
	}
	return ErrSupplierNotFound
}

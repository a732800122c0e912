package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/canakikol/stok-takip/models"
)

// Defaults applied when an older products.csv predates a column.
const (
	defaultCategory     = "Tekstil"
	defaultMinimumStock = 5
)

// Products returns the full product table, backfilling columns that older
// files do not carry yet (category, minimum_stock).
func (s *Store) Products() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadProducts()
}

func (s *Store) loadProducts() ([]models.Product, error) {
	columns, err := s.fileColumns(productsFile)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := loadFile(s, productsFile, &products); err != nil {
		return nil, err
	}
	if len(columns) == 0 || len(products) == 0 {
		return products, nil
	}

	backfilled := false
	if !hasColumn(columns, "category") {
		for i := range products {
			products[i].Category = defaultCategory
		}
		backfilled = true
	}
	if !hasColumn(columns, "minimum_stock") {
		for i := range products {
			products[i].MinimumStock = defaultMinimumStock
		}
		backfilled = true
	}
	if backfilled {
		log.WithFields(log.Fields{"file": productsFile}).Warn("backfilled missing columns")
		if err := saveFile(s, productsFile, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// Product looks up a single product by id.
func (s *Store) Product(id int) (models.Product, error) {
	products, err := s.Products()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AddProduct appends a product under a fresh max+1 id and rewrites the table.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return models.Product{}, err
	}
	p.ID = nextID(products, func(p models.Product) int { return p.ID })
	products = append(products, p)
	if err := saveFile(s, productsFile, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces the row with the same id.
func (s *Store) UpdateProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return saveFile(s, productsFile, products)
		}
	}
	return ErrProductNotFound
}

// SaveProducts rewrites the whole product table. Used by the bulk price
// apply, which stages many row updates and commits them in one write.
func (s *Store) SaveProducts(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveFile(s, productsFile, products)
}

// DeleteProduct removes the row with the given id.
func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return saveFile(s, productsFile, products)
		}
	}
	return ErrProductNotFound
}

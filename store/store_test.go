package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canakikol/stok-takip/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestMissingDatasetIsEmptyTable(t *testing.T) {
	s := newTestStore(t)

	products, err := s.Products()

	require.NoError(t, err)
	assert.Empty(t, products)

	// The first read creates the file with a header row only.
	data, err := os.ReadFile(s.path(productsFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(string(data)), "\n")+1)
	assert.Contains(t, string(data), "minimum_stock")
}

func TestAddProductAssignsMaxPlusOne(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddProduct(models.Product{Name: "Gomlek", Stock: 10, MinimumStock: 5, PurchasePrice: 50, SalePrice: 80})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := s.AddProduct(models.Product{Name: "Pantolon"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// Deleting the highest id frees it for reuse (max+1 scheme).
	require.NoError(t, s.DeleteProduct(2))
	third, err := s.AddProduct(models.Product{Name: "Etek"})
	require.NoError(t, err)
	assert.Equal(t, 2, third.ID)
}

func TestProductRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	added, err := s.AddProduct(models.Product{Name: "Gomlek", Category: "Tekstil", Stock: 10, MinimumStock: 5, PurchasePrice: 49.90, SalePrice: 79.90})
	require.NoError(t, err)

	// A fresh store over the same directory sees the same rows.
	reopened, err := New(dir)
	require.NoError(t, err)
	got, err := reopened.Product(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	s := newTestStore(t)
	p, err := s.AddProduct(models.Product{Name: "Gomlek", Stock: 10})
	require.NoError(t, err)

	p.Stock = 25
	p.SalePrice = 99.90
	require.NoError(t, s.UpdateProduct(p))

	got, err := s.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Stock)

	require.NoError(t, s.DeleteProduct(p.ID))
	_, err = s.Product(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, s.UpdateProduct(p), ErrProductNotFound)
	assert.ErrorIs(t, s.DeleteProduct(p.ID), ErrProductNotFound)
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	s := newTestStore(t)
	p, err := s.AddProduct(models.Product{Name: "Gomlek", Stock: 10, SalePrice: 80})
	require.NoError(t, err)

	sale, err := s.RecordSale(p.ID, 3, 80, "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 1, sale.ID)
	assert.Equal(t, 240.0, sale.Total())

	got, err := s.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	sales, err := s.Sales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale, sales[0])
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	s := newTestStore(t)
	p, err := s.AddProduct(models.Product{Name: "Gomlek", Stock: 2})
	require.NoError(t, err)

	_, err = s.RecordSale(p.ID, 5, 80, "2024-06-15")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = s.RecordSale(999, 1, 80, "2024-06-15")
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Neither failure wrote anything.
	sales, err := s.Sales()
	require.NoError(t, err)
	assert.Empty(t, sales)
	got, _ := s.Product(p.ID)
	assert.Equal(t, 2, got.Stock)
}

func TestProductColumnBackfill(t *testing.T) {
	dir := t.TempDir()
	// An older file that predates the category and minimum_stock columns.
	legacy := "id,name,stock,purchase_price,sale_price\n1,Gomlek,10,50,80\n2,Pantolon,4,100,160\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(legacy), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	products, err := s.Products()
	require.NoError(t, err)

	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Tekstil", p.Category)
		assert.Equal(t, 5, p.MinimumStock)
	}

	// The backfill is persisted, so the rewritten file carries the columns.
	data, err := os.ReadFile(filepath.Join(dir, "products.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "category")
	assert.Contains(t, string(data), "minimum_stock")
}

func TestSupplierAndOrderLifecycle(t *testing.T) {
	s := newTestStore(t)

	sup, err := s.AddSupplier(models.Supplier{Name: "Tekstil AS", Categories: "Tekstil", LeadTimeDays: 3, PerformanceScore: 4.5, Active: true})
	require.NoError(t, err)
	assert.Equal(t, 1, sup.ID)

	order, err := s.AddOrder(models.Order{SupplierID: sup.ID, ProductName: "Gomlek", Quantity: 12, UnitPrice: 50, OrderDate: "2024-06-15", DeliveryDate: "2024-06-18", Status: models.OrderPending})
	require.NoError(t, err)
	assert.Equal(t, 600.0, order.TotalPrice)

	updated, err := s.UpdateOrderStatus(order.ID, models.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, updated.Status)

	_, err = s.UpdateOrderStatus(99, models.OrderCancelled)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	require.NoError(t, s.DeleteOrder(order.ID))
	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCustomerLifecycle(t *testing.T) {
	s := newTestStore(t)

	c, err := s.AddCustomer(models.Customer{Name: "Ayse", Age: 34, Region: "Marmara", LastPurchase: "2024-06-13", PurchaseCount: 5, TotalSpend: 1200})
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	c.TotalSpend = 1500
	require.NoError(t, s.UpdateCustomer(c))

	customers, err := s.Customers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 1500.0, customers[0].TotalSpend)

	require.NoError(t, s.DeleteCustomer(c.ID))
	assert.ErrorIs(t, s.DeleteCustomer(c.ID), ErrCustomerNotFound)
}

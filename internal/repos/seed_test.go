package repos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})
	return log
}

func seedStore(t *testing.T, tx *gorm.DB, name string) *domain.Store {
	t.Helper()
	admin := &domain.AdminUser{
		Email:     uuid.NewString() + "@example.com",
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "Admin",
	}
	if err := tx.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	store := &domain.Store{AdminUserID: admin.ID, Name: name}
	if err := tx.Create(store).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func seedCustomer(t *testing.T, tx *gorm.DB, storeID uuid.UUID, name string, createdAt time.Time) *domain.Customer {
	t.Helper()
	c := &domain.Customer{
		StoreID:   storeID,
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: createdAt,
	}
	if err := tx.Create(c).Error; err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return c
}

func seedProduct(t *testing.T, tx *gorm.DB, storeID uuid.UUID, name string, priceCents int64) *domain.Product {
	t.Helper()
	p := &domain.Product{StoreID: storeID, Name: name, PriceCents: priceCents}
	if err := tx.Create(p).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return p
}

func seedOrder(t *testing.T, tx *gorm.DB, customerID uuid.UUID, createdAt time.Time, items ...domain.OrderItem) *domain.Order {
	t.Helper()
	o := &domain.Order{
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	if err := tx.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func seedReview(t *testing.T, tx *gorm.DB, storeID, productID uuid.UUID, rating int) *domain.Review {
	t.Helper()
	rv := &domain.Review{StoreID: storeID, ProductID: productID, Rating: rating}
	if err := tx.Create(rv).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return rv
}

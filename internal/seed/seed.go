package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

type seeder struct {
	log          *logger.Logger
	adminRepo    repos.AdminUserRepo
	storeRepo    repos.StoreRepo
	categoryRepo repos.CategoryRepo
	productRepo  repos.ProductRepo
	customerRepo repos.CustomerRepo
	reviewRepo   repos.ReviewRepo
	orderRepo    repos.OrderRepo
}

// Apply writes the fixture into the database inside a single transaction.
// The admin is reused when its email already exists, and stores whose name
// already belongs to that admin are skipped entirely, so re-running the
// seeder does not duplicate the catalog.
func Apply(ctx context.Context, db *gorm.DB, baseLog *logger.Logger, fixture *Fixture) error {
	s := &seeder{
		log:          baseLog.With("component", "seed"),
		adminRepo:    repos.NewAdminUserRepo(db, baseLog),
		storeRepo:    repos.NewStoreRepo(db, baseLog),
		categoryRepo: repos.NewCategoryRepo(db, baseLog),
		productRepo:  repos.NewProductRepo(db, baseLog),
		customerRepo: repos.NewCustomerRepo(db, baseLog),
		reviewRepo:   repos.NewReviewRepo(db, baseLog),
		orderRepo:    repos.NewOrderRepo(db, baseLog),
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.apply(ctx, tx, fixture)
	})
}

func (s *seeder) apply(ctx context.Context, tx *gorm.DB, fixture *Fixture) error {
	admin, err := s.ensureAdmin(ctx, tx, fixture.Admin)
	if err != nil {
		return err
	}
	s.log.Info("Seed admin ready", "email", admin.Email)

	existing, err := s.storeRepo.GetByAdminUserIDs(ctx, tx, []uuid.UUID{admin.ID})
	if err != nil {
		return fmt.Errorf("list existing stores: %w", err)
	}
	seeded := make(map[string]bool, len(existing))
	for _, st := range existing {
		seeded[st.Name] = true
	}

	for _, storeFx := range fixture.Stores {
		if seeded[storeFx.Name] {
			s.log.Info("Store already seeded, skipping", "store", storeFx.Name)
			continue
		}
		created, err := s.storeRepo.Create(ctx, tx, []*domain.Store{{
			AdminUserID: admin.ID,
			Name:        storeFx.Name,
		}})
		if err != nil {
			return fmt.Errorf("create store %q: %w", storeFx.Name, err)
		}
		if err := s.applyStore(ctx, tx, created[0], storeFx); err != nil {
			return fmt.Errorf("store %q: %w", storeFx.Name, err)
		}
		s.log.Info("Store seeded",
			"store", storeFx.Name,
			"categories", len(storeFx.Categories),
			"products", len(storeFx.Products),
			"customers", len(storeFx.Customers))
	}
	return nil
}

func (s *seeder) ensureAdmin(ctx context.Context, tx *gorm.DB, fx AdminFixture) (*domain.AdminUser, error) {
	email := strings.ToLower(strings.TrimSpace(fx.Email))
	existing, err := s.adminRepo.GetByEmails(ctx, tx, []string{email})
	if err != nil {
		return nil, fmt.Errorf("look up admin: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(fx.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	created, err := s.adminRepo.Create(ctx, tx, []*domain.AdminUser{{
		Email:     email,
		Password:  string(hashed),
		FirstName: fx.FirstName,
		LastName:  fx.LastName,
	}})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return created[0], nil
}

func (s *seeder) applyStore(ctx context.Context, tx *gorm.DB, store *domain.Store, fx StoreFixture) error {
	catBySlug := make(map[string]uuid.UUID, len(fx.Categories))
	for _, catFx := range fx.Categories {
		created, err := s.categoryRepo.Create(ctx, tx, []*domain.Category{{
			StoreID: store.ID,
			Name:    catFx.Name,
			Slug:    catFx.Slug,
		}})
		if err != nil {
			return fmt.Errorf("create category %q: %w", catFx.Slug, err)
		}
		catBySlug[catFx.Slug] = created[0].ID
	}

	productByName := make(map[string]*domain.Product, len(fx.Products))
	for _, pFx := range fx.Products {
		product := &domain.Product{
			StoreID:    store.ID,
			Name:       pFx.Name,
			PriceCents: pFx.PriceCents,
		}
		if pFx.Category != "" {
			catID := catBySlug[pFx.Category]
			product.CategoryID = &catID
		}
		if pFx.Image != "" {
			raw, err := json.Marshal([]domain.ProductImage{{URL: pFx.Image, Alt: pFx.Name}})
			if err != nil {
				return fmt.Errorf("encode images for %q: %w", pFx.Name, err)
			}
			product.Images = datatypes.JSON(raw)
		}
		created, err := s.productRepo.Create(ctx, tx, []*domain.Product{product})
		if err != nil {
			return fmt.Errorf("create product %q: %w", pFx.Name, err)
		}
		productByName[pFx.Name] = created[0]
	}

	customers, err := s.applyCustomers(ctx, tx, store, fx, productByName)
	if err != nil {
		return err
	}
	return s.applyReviews(ctx, tx, store, fx, productByName, customers)
}

// applyCustomers spaces registration times an hour apart so customers later
// in the fixture read as more recently registered.
func (s *seeder) applyCustomers(ctx context.Context, tx *gorm.DB, store *domain.Store, fx StoreFixture, productByName map[string]*domain.Product) ([]*domain.Customer, error) {
	now := time.Now().UTC()
	customers := make([]*domain.Customer, 0, len(fx.Customers))
	for i, custFx := range fx.Customers {
		created, err := s.customerRepo.Create(ctx, tx, []*domain.Customer{{
			StoreID:   store.ID,
			Name:      custFx.Name,
			Email:     custFx.Email,
			Picture:   custFx.Picture,
			CreatedAt: now.Add(-time.Duration(len(fx.Customers)-i) * time.Hour),
		}})
		if err != nil {
			return nil, fmt.Errorf("create customer %q: %w", custFx.Email, err)
		}
		customer := created[0]
		customers = append(customers, customer)

		for _, orderFx := range custFx.Orders {
			items := make([]domain.OrderItem, 0, len(orderFx.Items))
			for _, itemFx := range orderFx.Items {
				product := productByName[itemFx.Product]
				items = append(items, domain.OrderItem{
					ProductID:      product.ID,
					StoreID:        store.ID,
					UnitPriceCents: product.PriceCents,
					Quantity:       itemFx.Quantity,
				})
			}
			_, err := s.orderRepo.Create(ctx, tx, []*domain.Order{{
				CustomerID: customer.ID,
				Items:      items,
				CreatedAt:  now.AddDate(0, 0, -orderFx.DaysAgo),
			}})
			if err != nil {
				return nil, fmt.Errorf("create order for %q: %w", custFx.Email, err)
			}
		}
	}
	return customers, nil
}

// applyReviews rotates review authorship through the store's customers and
// leaves the author empty when the store has none.
func (s *seeder) applyReviews(ctx context.Context, tx *gorm.DB, store *domain.Store, fx StoreFixture, productByName map[string]*domain.Product, customers []*domain.Customer) error {
	next := 0
	for _, pFx := range fx.Products {
		product := productByName[pFx.Name]
		for _, rating := range pFx.Ratings {
			review := &domain.Review{
				StoreID:   store.ID,
				ProductID: product.ID,
				Rating:    rating,
			}
			if len(customers) > 0 {
				review.CustomerID = &customers[next%len(customers)].ID
				next++
			}
			if _, err := s.reviewRepo.Create(ctx, tx, []*domain.Review{review}); err != nil {
				return fmt.Errorf("create review for %q: %w", pFx.Name, err)
			}
		}
	}
	return nil
}

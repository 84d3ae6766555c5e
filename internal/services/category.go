package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/cache"
	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CategoryService interface {
	ListByStore(ctx context.Context, adminID, storeID uuid.UUID) ([]*domain.Category, error)
	GetByID(ctx context.Context, adminID, categoryID uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, adminID, storeID uuid.UUID, name, slug string) (*domain.Category, error)
	// Update overwrites name and slug wholesale once the category is
	// known to exist. There are no partial updates.
	Update(ctx context.Context, adminID, categoryID uuid.UUID, name, slug string) (*domain.Category, error)
	Delete(ctx context.Context, adminID, categoryID uuid.UUID) error
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	productRepo  repos.ProductRepo
	storeService StoreService
	summaryCache *cache.SummaryCache
}

func NewCategoryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	categoryRepo repos.CategoryRepo,
	productRepo repos.ProductRepo,
	storeService StoreService,
	summaryCache *cache.SummaryCache,
) CategoryService {
	return &categoryService{
		db:           db,
		log:          baseLog.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		storeService: storeService,
		summaryCache: summaryCache,
	}
}

func (s *categoryService) ListByStore(ctx context.Context, adminID, storeID uuid.UUID) ([]*domain.Category, error) {
	if _, err := s.storeService.GetOwned(ctx, adminID, storeID); err != nil {
		return nil, err
	}
	cats, err := s.categoryRepo.GetByStoreIDs(ctx, nil, []uuid.UUID{storeID})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []*domain.Category{}
	}
	return cats, nil
}

func (s *categoryService) GetByID(ctx context.Context, adminID, categoryID uuid.UUID) (*domain.Category, error) {
	return s.getOwned(ctx, adminID, categoryID)
}

func (s *categoryService) Create(ctx context.Context, adminID, storeID uuid.UUID, name, slug string) (*domain.Category, error) {
	name, slug, err := normalizeCategoryInput(name, slug)
	if err != nil {
		return nil, err
	}
	if _, err := s.storeService.GetOwned(ctx, adminID, storeID); err != nil {
		return nil, err
	}
	created, err := s.categoryRepo.Create(ctx, nil, []*domain.Category{{
		StoreID: storeID,
		Name:    name,
		Slug:    slug,
	}})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	cat := created[0]
	s.summaryCache.Invalidate(ctx, storeID)
	s.log.Info("category created", "category_id", cat.ID, "store_id", storeID, "slug", cat.Slug)
	return cat, nil
}

func (s *categoryService) Update(ctx context.Context, adminID, categoryID uuid.UUID, name, slug string) (*domain.Category, error) {
	name, slug, err := normalizeCategoryInput(name, slug)
	if err != nil {
		return nil, err
	}
	cat, err := s.getOwned(ctx, adminID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.UpdateFields(ctx, nil, cat.ID, name, slug); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	cat.Name = name
	cat.Slug = slug
	s.summaryCache.Invalidate(ctx, cat.StoreID)
	return cat, nil
}

func (s *categoryService) Delete(ctx context.Context, adminID, categoryID uuid.UUID) error {
	cat, err := s.getOwned(ctx, adminID, categoryID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.ClearCategory(ctx, tx, cat.ID); err != nil {
			return fmt.Errorf("detach products: %w", err)
		}
		if err := s.categoryRepo.Delete(ctx, tx, cat.ID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	s.summaryCache.Invalidate(ctx, cat.StoreID)
	s.log.Info("category deleted", "category_id", cat.ID, "store_id", cat.StoreID)
	return nil
}

func (s *categoryService) getOwned(ctx context.Context, adminID, categoryID uuid.UUID) (*domain.Category, error) {
	cats, err := s.categoryRepo.GetByIDs(ctx, nil, []uuid.UUID{categoryID})
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	if len(cats) == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	cat := cats[0]
	// Someone else's category reads as not found, same as the store check.
	if _, err := s.storeService.GetOwned(ctx, adminID, cat.StoreID); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

func normalizeCategoryInput(name, slug string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", domain.ErrCategoryNameRequired
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
		if slug == "" {
			return "", "", domain.ErrCategorySlugRequired
		}
	} else if !slugPattern.MatchString(slug) {
		return "", "", domain.ErrCategorySlugInvalid
	}
	return name, slug, nil
}

// Slugify derives a url-safe slug from a display name: "Running Shoes"
// becomes "running-shoes". Characters outside [a-z0-9] split words.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

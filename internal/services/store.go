package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

type StoreService interface {
	Create(ctx context.Context, adminID uuid.UUID, name string) (*domain.Store, error)
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Store, error)
	// GetOwned resolves a store and verifies the admin owns it. A store
	// that exists but belongs to someone else reads as not found.
	GetOwned(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Store, error)
	Rename(ctx context.Context, adminID, storeID uuid.UUID, name string) (*domain.Store, error)
}

type storeService struct {
	log       *logger.Logger
	storeRepo repos.StoreRepo
}

func NewStoreService(baseLog *logger.Logger, storeRepo repos.StoreRepo) StoreService {
	return &storeService{
		log:       baseLog.With("service", "StoreService"),
		storeRepo: storeRepo,
	}
}

func (s *storeService) Create(ctx context.Context, adminID uuid.UUID, name string) (*domain.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrStoreNameRequired
	}
	created, err := s.storeRepo.Create(ctx, nil, []*domain.Store{{AdminUserID: adminID, Name: name}})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	store := created[0]
	s.log.Info("store created", "store_id", store.ID, "admin_id", adminID)
	return store, nil
}

func (s *storeService) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Store, error) {
	stores, err := s.storeRepo.GetByAdminUserIDs(ctx, nil, []uuid.UUID{adminID})
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	if stores == nil {
		stores = []*domain.Store{}
	}
	return stores, nil
}

func (s *storeService) GetOwned(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Store, error) {
	stores, err := s.storeRepo.GetByIDs(ctx, nil, []uuid.UUID{storeID})
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	if len(stores) == 0 || stores[0].AdminUserID != adminID {
		return nil, domain.ErrStoreNotFound
	}
	return stores[0], nil
}

func (s *storeService) Rename(ctx context.Context, adminID, storeID uuid.UUID, name string) (*domain.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrStoreNameRequired
	}
	store, err := s.GetOwned(ctx, adminID, storeID)
	if err != nil {
		return nil, err
	}
	if err := s.storeRepo.UpdateName(ctx, nil, store.ID, name); err != nil {
		return nil, fmt.Errorf("rename store: %w", err)
	}
	store.Name = name
	return store, nil
}

package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/services"
)

type fakeStoreService struct {
	stores []*domain.Store
	store  *domain.Store
	err    error

	lastAdminID uuid.UUID
	lastStoreID uuid.UUID
	lastName    string
}

func (f *fakeStoreService) Create(ctx context.Context, adminID uuid.UUID, name string) (*domain.Store, error) {
	f.lastAdminID, f.lastName = adminID, name
	if f.err != nil {
		return nil, f.err
	}
	return f.store, nil
}

func (f *fakeStoreService) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]*domain.Store, error) {
	f.lastAdminID = adminID
	if f.err != nil {
		return nil, f.err
	}
	return f.stores, nil
}

func (f *fakeStoreService) GetOwned(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Store, error) {
	f.lastAdminID, f.lastStoreID = adminID, storeID
	if f.err != nil {
		return nil, f.err
	}
	return f.store, nil
}

func (f *fakeStoreService) Rename(ctx context.Context, adminID, storeID uuid.UUID, name string) (*domain.Store, error) {
	f.lastAdminID, f.lastStoreID, f.lastName = adminID, storeID, name
	if f.err != nil {
		return nil, f.err
	}
	return f.store, nil
}

func storeRouter(adminID uuid.UUID, svc services.StoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asAdmin(adminID))
	sh := NewStoreHandler(svc)
	r.GET("/api/stores", sh.ListStores)
	r.POST("/api/stores", sh.CreateStore)
	r.GET("/api/stores/:storeId", sh.GetStore)
	r.PUT("/api/stores/:storeId", sh.UpdateStore)
	return r
}

func TestListStoresRespondsWithAdminStores(t *testing.T) {
	adminID := uuid.New()
	svc := &fakeStoreService{stores: []*domain.Store{
		{ID: uuid.New(), AdminUserID: adminID, Name: "Main"},
		{ID: uuid.New(), AdminUserID: adminID, Name: "Outlet"},
	}}
	r := storeRouter(adminID, svc)

	rec := performJSON(t, r, http.MethodGet, "/api/stores", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Stores []struct {
			Name string `json:"name"`
		} `json:"stores"`
	}
	decodeBody(t, rec, &body)
	if len(body.Stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(body.Stores))
	}
	if svc.lastAdminID != adminID {
		t.Fatalf("admin id not forwarded: got=%s", svc.lastAdminID)
	}
}

func TestCreateStoreRespondsCreated(t *testing.T) {
	adminID := uuid.New()
	created := &domain.Store{ID: uuid.New(), AdminUserID: adminID, Name: "Main"}
	svc := &fakeStoreService{store: created}
	r := storeRouter(adminID, svc)

	rec := performJSON(t, r, http.MethodPost, "/api/stores", `{"name":"Main"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastName != "Main" {
		t.Fatalf("store name not forwarded: got=%q", svc.lastName)
	}
}

func TestUpdateStoreForwardsRename(t *testing.T) {
	adminID := uuid.New()
	storeID := uuid.New()
	renamed := &domain.Store{ID: storeID, AdminUserID: adminID, Name: "Flagship"}
	svc := &fakeStoreService{store: renamed}
	r := storeRouter(adminID, svc)

	rec := performJSON(t, r, http.MethodPut, "/api/stores/"+storeID.String(), `{"name":"Flagship"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastStoreID != storeID || svc.lastName != "Flagship" {
		t.Fatalf("rename not forwarded: store=%s name=%q", svc.lastStoreID, svc.lastName)
	}
	var body struct {
		Store struct {
			Name string `json:"name"`
		} `json:"store"`
	}
	decodeBody(t, rec, &body)
	if body.Store.Name != "Flagship" {
		t.Fatalf("renamed store not echoed: %q", body.Store.Name)
	}
}

func TestUpdateStoreRejectsEmptyName(t *testing.T) {
	adminID := uuid.New()
	svc := &fakeStoreService{err: domain.ErrStoreNameRequired}
	r := storeRouter(adminID, svc)

	rec := performJSON(t, r, http.MethodPut, "/api/stores/"+uuid.NewString(), `{"name":""}`)

	assertErrorCode(t, rec, http.StatusBadRequest, "invalid_request")
}

func TestGetStoreMapsNotFound(t *testing.T) {
	adminID := uuid.New()
	svc := &fakeStoreService{err: domain.ErrStoreNotFound}
	r := storeRouter(adminID, svc)

	rec := performJSON(t, r, http.MethodGet, "/api/stores/"+uuid.NewString(), "")

	assertErrorCode(t, rec, http.StatusNotFound, "not_found")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/http/response"
	"github.com/shoply/admin-backend/internal/services"
)

type StoreHandler struct {
	storeService services.StoreService
}

func NewStoreHandler(storeService services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func (sh *StoreHandler) ListStores(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	stores, err := sh.storeService.ListByAdmin(c.Request.Context(), adminID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"stores": stores})
}

func (sh *StoreHandler) CreateStore(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	store, err := sh.storeService.Create(c.Request.Context(), adminID, req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"store": store})
}

func (sh *StoreHandler) UpdateStore(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	store, err := sh.storeService.Rename(c.Request.Context(), adminID, storeID, req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"store": store})
}

func (sh *StoreHandler) GetStore(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	store, err := sh.storeService.GetOwned(c.Request.Context(), adminID, storeID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"store": store})
}

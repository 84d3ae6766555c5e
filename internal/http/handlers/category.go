package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/http/response"
	"github.com/shoply/admin-backend/internal/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (ch *CategoryHandler) ListStoreCategories(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	categories, err := ch.categoryService.ListByStore(c.Request.Context(), adminID, storeID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": categories})
}

func (ch *CategoryHandler) CreateCategory(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	category, err := ch.categoryService.Create(c.Request.Context(), adminID, storeID, req.Name, req.Slug)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"category": category})
}

func (ch *CategoryHandler) GetCategory(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := ch.categoryService.GetByID(c.Request.Context(), adminID, categoryID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": category})
}

func (ch *CategoryHandler) UpdateCategory(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	category, err := ch.categoryService.Update(c.Request.Context(), adminID, categoryID, req.Name, req.Slug)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": category})
}

func (ch *CategoryHandler) DeleteCategory(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ch.categoryService.Delete(c.Request.Context(), adminID, categoryID); err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/http/response"
	"github.com/shoply/admin-backend/internal/pkg/ctxutil"
)

// respondDomainError maps service errors onto the response envelope. Anything
// not recognized as a domain sentinel reads as an internal error.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, domain.ErrSlugTaken):
		response.RespondError(c, http.StatusConflict, "slug_taken", err)
	case errors.Is(err, domain.ErrEmailTaken):
		response.RespondError(c, http.StatusConflict, "email_taken", err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		response.RespondError(c, http.StatusUnauthorized, "invalid_refresh_token", err)
	case errors.Is(err, domain.ErrCategoryNameRequired),
		errors.Is(err, domain.ErrCategorySlugRequired),
		errors.Is(err, domain.ErrCategorySlugInvalid),
		errors.Is(err, domain.ErrStoreNameRequired),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrNameRequired):
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

// requestAdmin returns the authenticated admin id, or responds 401 and
// reports false when the request somehow bypassed RequireAuth.
func requestAdmin(c *gin.Context) (uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.AdminID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing admin identity"))
		return uuid.Nil, false
	}
	return rd.AdminID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", errors.New(name+" must be a uuid"))
		return uuid.Nil, false
	}
	return id, true
}

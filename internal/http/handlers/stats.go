package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/http/response"
	"github.com/shoply/admin-backend/internal/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSummary serves the four headline metrics of a store dashboard. The
// metrics array keeps its fixed order so the frontend can render it as-is.
func (sh *StatsHandler) GetSummary(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	summary, err := sh.statsService.GetSummary(c.Request.Context(), adminID, storeID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"metrics": summary.Metrics()})
}

func (sh *StatsHandler) GetTrends(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	trends, err := sh.statsService.GetTrends(c.Request.Context(), adminID, storeID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, trends)
}

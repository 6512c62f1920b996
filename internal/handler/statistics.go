package handler

import (
	"net/http"
	"time"

	"github.com/befit/api/internal/middleware"
	"github.com/befit/api/internal/stats"
	"github.com/befit/api/internal/store"
	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	executions *store.ExecutionStore
}

func NewStatisticsHandler(executions *store.ExecutionStore) *StatisticsHandler {
	return &StatisticsHandler{executions: executions}
}

// Get aggregates the caller's executions from sessions started within
// the trailing 28-day window. Always computed from the current store
// state, never cached.
func (h *StatisticsHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	since := stats.WindowStart(time.Now())
	executions, err := h.executions.ListSince(c.Request.Context(), userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}

	middleware.RecordStatisticsQuery()
	c.JSON(http.StatusOK, stats.Aggregate(executions))
}

package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/befit/api/internal/cache"
	"github.com/befit/api/internal/model"
	"github.com/befit/api/internal/store"
	"github.com/gin-gonic/gin"
)

type ExerciseTypeHandler struct {
	types *store.ExerciseTypeStore
	cache *cache.RedisCache
}

func NewExerciseTypeHandler(types *store.ExerciseTypeStore, redisCache *cache.RedisCache) *ExerciseTypeHandler {
	return &ExerciseTypeHandler{types: types, cache: redisCache}
}

// List returns the exercise catalogue for form dropdowns. The catalogue
// is immutable after seeding, so a Redis hit is served as-is; cache
// failures fall through to the store.
func (h *ExerciseTypeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if data, err := h.cache.GetExerciseTypes(ctx); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	types, err := h.types.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exercise types"})
		return
	}
	if types == nil {
		types = []model.ExerciseType{}
	}

	if h.cache != nil {
		if data, err := json.Marshal(types); err == nil {
			if err := h.cache.SetExerciseTypes(ctx, data); err != nil {
				log.Printf("Failed to cache exercise types: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, types)
}

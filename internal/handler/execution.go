package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/befit/api/internal/middleware"
	"github.com/befit/api/internal/model"
	"github.com/befit/api/internal/store"
	"github.com/befit/api/internal/validate"
	"github.com/gin-gonic/gin"
)

type ExecutionHandler struct {
	executions *store.ExecutionStore
	types      *store.ExerciseTypeStore
	loc        *time.Location
}

func NewExecutionHandler(executions *store.ExecutionStore, types *store.ExerciseTypeStore, loc *time.Location) *ExecutionHandler {
	return &ExecutionHandler{executions: executions, types: types, loc: loc}
}

type ExecutionRequest struct {
	TrainingSessionID int64   `json:"trainingSessionId"`
	ExerciseTypeID    int64   `json:"exerciseTypeId"`
	Weight            float64 `json:"weight"`
	Sets              int     `json:"sets"`
	Reps              int     `json:"reps"`
	Notes             *string `json:"notes"`
}

func (h *ExecutionHandler) validateRequest(c *gin.Context, req *ExecutionRequest) validate.FieldErrors {
	errs := validate.Execution(req.Weight, req.Sets, req.Reps, req.Notes)

	if req.TrainingSessionID <= 0 {
		errs.Add("trainingSessionId", "invalid training session")
	}
	exists, err := h.types.Exists(c.Request.Context(), req.ExerciseTypeID)
	if err == nil && !exists {
		errs.Add("exerciseTypeId", "unknown exercise type")
	}

	return errs
}

func (h *ExecutionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	executions, err := h.executions.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list executions"})
		return
	}

	if executions == nil {
		executions = []model.ExerciseExecution{}
	}
	for i := range executions {
		displayExecution(&executions[i], h.loc)
	}

	c.JSON(http.StatusOK, executions)
}

func (h *ExecutionHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid execution ID"})
		return
	}

	execution, err := h.executions.Get(c.Request.Context(), userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load execution"})
		return
	}

	displayExecution(execution, h.loc)
	c.JSON(http.StatusOK, execution)
}

func (h *ExecutionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validateRequest(c, &req); !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	execution := model.ExerciseExecution{
		TrainingSessionID: req.TrainingSessionID,
		ExerciseTypeID:    req.ExerciseTypeID,
		Weight:            req.Weight,
		Sets:              req.Sets,
		Reps:              req.Reps,
		Notes:             req.Notes,
	}

	err := h.executions.Create(c.Request.Context(), userID, &execution)
	if err == store.ErrSessionNotOwned {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.FieldErrors{
			"trainingSessionId": "invalid training session",
		}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create execution"})
		return
	}

	middleware.RecordMutation("execution", "create")

	// Reload with the exercise type resolved
	created, err := h.executions.Get(c.Request.Context(), userID, execution.ID)
	if err != nil {
		c.JSON(http.StatusCreated, execution)
		return
	}
	displayExecution(created, h.loc)
	c.JSON(http.StatusCreated, created)
}

func (h *ExecutionHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid execution ID"})
		return
	}

	execution, err := h.executions.Get(c.Request.Context(), userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load execution"})
		return
	}

	var req ExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validateRequest(c, &req); !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	execution.TrainingSessionID = req.TrainingSessionID
	execution.ExerciseTypeID = req.ExerciseTypeID
	execution.Weight = req.Weight
	execution.Sets = req.Sets
	execution.Reps = req.Reps
	execution.Notes = req.Notes

	err = h.executions.Update(c.Request.Context(), userID, execution)
	if err == store.ErrSessionNotOwned {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.FieldErrors{
			"trainingSessionId": "invalid training session",
		}})
		return
	}
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		return
	}
	if err == store.ErrConflict {
		log.Printf("Conflicting update on execution %d for user %s", id, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update execution"})
		return
	}

	middleware.RecordMutation("execution", "update")

	updated, err := h.executions.Get(c.Request.Context(), userID, execution.ID)
	if err != nil {
		c.JSON(http.StatusOK, execution)
		return
	}
	displayExecution(updated, h.loc)
	c.JSON(http.StatusOK, updated)
}

func (h *ExecutionHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid execution ID"})
		return
	}

	if err := h.executions.Delete(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete execution"})
		return
	}

	middleware.RecordMutation("execution", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Execution deleted"})
}

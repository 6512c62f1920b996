package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/befit/api/internal/localtime"
	"github.com/befit/api/internal/middleware"
	"github.com/befit/api/internal/model"
	"github.com/befit/api/internal/store"
	"github.com/befit/api/internal/validate"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions *store.SessionStore
	loc      *time.Location
}

func NewSessionHandler(sessions *store.SessionStore, loc *time.Location) *SessionHandler {
	return &SessionHandler{sessions: sessions, loc: loc}
}

// SessionRequest carries the form fields. StartTime and EndTime arrive
// as datetime-local strings without timezone tagging.
type SessionRequest struct {
	Name      string  `json:"name"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Notes     *string `json:"notes"`
}

// parse validates the request and returns the parsed local times. The
// end-after-start check runs on the local values, before UTC conversion.
func (r *SessionRequest) parse(loc *time.Location) (start, end time.Time, errs validate.FieldErrors) {
	errs = validate.FieldErrors{}

	var err error
	if start, err = localtime.ParseInput(r.StartTime, loc); err != nil {
		errs.Add("startTime", "invalid date/time, expected YYYY-MM-DDTHH:MM")
	}
	if end, err = localtime.ParseInput(r.EndTime, loc); err != nil {
		errs.Add("endTime", "invalid date/time, expected YYYY-MM-DDTHH:MM")
	}

	for field, msg := range validate.Session(r.Name, start, end, r.Notes) {
		errs.Add(field, msg)
	}
	return start, end, errs
}

func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sessions, err := h.sessions.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	if sessions == nil {
		sessions = []model.TrainingSession{}
	}
	for i := range sessions {
		displaySession(&sessions[i], h.loc)
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	displaySession(session, h.loc)
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, end, errs := req.parse(h.loc)
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Owner comes from the token, never from the payload
	session := model.TrainingSession{
		Name:      req.Name,
		StartTime: localtime.ToStore(start),
		EndTime:   localtime.ToStore(end),
		Notes:     req.Notes,
		UserID:    userID,
	}

	if err := h.sessions.Create(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	middleware.RecordMutation("session", "create")
	displaySession(&session, h.loc)
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, end, errs := req.parse(h.loc)
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	session.Name = req.Name
	session.StartTime = localtime.ToStore(start)
	session.EndTime = localtime.ToStore(end)
	session.Notes = req.Notes

	err = h.sessions.Update(c.Request.Context(), userID, session)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err == store.ErrConflict {
		log.Printf("Conflicting update on session %d for user %s", id, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		return
	}

	middleware.RecordMutation("session", "update")
	session.Executions = nil
	displaySession(session, h.loc)
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}

	middleware.RecordMutation("session", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

package handler

import (
	"time"

	"github.com/befit/api/internal/localtime"
	"github.com/befit/api/internal/model"
	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated identity the auth middleware
// put on the context.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// displaySession converts every timestamp on the session (and its
// preloaded executions) from storage UTC to display time.
func displaySession(s *model.TrainingSession, loc *time.Location) {
	s.StartTime = localtime.ToDisplay(s.StartTime, loc)
	s.EndTime = localtime.ToDisplay(s.EndTime, loc)
	s.CreatedAt = localtime.ToDisplay(s.CreatedAt, loc)
	s.UpdatedAt = localtime.ToDisplay(s.UpdatedAt, loc)
	for i := range s.Executions {
		displayExecution(&s.Executions[i], loc)
	}
}

func displayExecution(e *model.ExerciseExecution, loc *time.Location) {
	e.CreatedAt = localtime.ToDisplay(e.CreatedAt, loc)
	e.UpdatedAt = localtime.ToDisplay(e.UpdatedAt, loc)
	if e.TrainingSession != nil {
		displaySession(e.TrainingSession, loc)
	}
}

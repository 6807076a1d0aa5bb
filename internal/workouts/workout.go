package workouts

import (
	"time"

	"github.com/google/uuid"
)

// Session is one logged workout session. A session is created the first
// time the user confirms an exercise card in a chat turn.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	StartedAt time.Time `json:"startedAt"`
	Notes     string    `json:"notes,omitempty"`
}

// ExerciseRecord is one confirmed exercise within a session.
type ExerciseRecord struct {
	ID          int       `json:"id"`
	SessionID   uuid.UUID `json:"sessionId"`
	Name        string    `json:"name"`
	Sets        int       `json:"sets"`
	MetricType  string    `json:"metricType"`
	MetricValue float64   `json:"metricValue"`
	Weight      *float64  `json:"weight,omitempty"`
	WeightUnit  *string   `json:"weightUnit,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

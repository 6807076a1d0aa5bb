package chat

import (
	"time"

	"github.com/google/uuid"
)

type MetricType string

const (
	MetricTypeReps     MetricType = "reps"
	MetricTypeDuration MetricType = "duration"
	MetricTypeDistance MetricType = "distance"
)

func (mt MetricType) IsValid() bool {
	switch mt {
	case MetricTypeReps, MetricTypeDuration, MetricTypeDistance:
		return true
	}
	return false
}

type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

func (wu WeightUnit) IsValid() bool {
	switch wu {
	case WeightUnitKg, WeightUnitLbs:
		return true
	}
	return false
}

// Exercise is one validated exercise extracted from a user message.
// MetricValue is interpreted through MetricType: reps as a count,
// duration in seconds, distance in kilometers.
type Exercise struct {
	Name        string      `json:"exerciseName"`
	Sets        int         `json:"sets"`
	MetricType  MetricType  `json:"metricType"`
	MetricValue float64     `json:"metricValue"`
	Weight      *float64    `json:"weight,omitempty"`
	WeightUnit  *WeightUnit `json:"weightUnit,omitempty"`
}

type CardState string

const (
	CardStatePending   CardState = "pending"
	CardStateConfirmed CardState = "confirmed"
	CardStateDiscarded CardState = "discarded"
)

// Card is one extracted exercise awaiting user confirmation. Cards are
// never deleted, only state-transitioned, so discarded ones stay in history.
type Card struct {
	Exercise
	ID    int64     `json:"id"`
	State CardState `json:"state"`
}

type TurnState string

const (
	TurnStatePending   TurnState = "pending"
	TurnStateConfirmed TurnState = "confirmed"
)

// Turn is one user-message/assistant-reply pair plus any derived cards.
type Turn struct {
	ID               int        `json:"id"`
	ConversationID   int        `json:"conversationId"`
	UserText         string     `json:"userText"`
	EcoText          string     `json:"ecoText"`
	Cards            []Card     `json:"cards,omitempty"`
	State            TurnState  `json:"state"`
	WorkoutSessionID *uuid.UUID `json:"workoutSessionId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Summary is compressed text standing in for a block of older turns.
type Summary struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversationId"`
	Content        string    `json:"content"`
	MessageCount   int       `json:"messageCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Conversation groups turns of one user for one day.
type Conversation struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeriveTurnState computes the turn state from its cards: confirmed once
// no card remains pending. A turn with zero cards is confirmed.
func DeriveTurnState(cards []Card) TurnState {
	for _, card := range cards {
		if card.State == CardStatePending {
			return TurnStatePending
		}
	}
	return TurnStateConfirmed
}

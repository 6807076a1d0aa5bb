package chat

import (
	"encoding/json"
	"regexp"
	"strings"
)

type AIAction string

const (
	ActionLogWorkouts  AIAction = "log_workouts"
	ActionChatResponse AIAction = "chat_response"
)

// AIResponse is the structured reply extracted from raw model output.
type AIResponse struct {
	Action  AIAction
	Message string
	Data    []RawExercise
}

// RawExercise is an exercise as the model produced it, before validation.
// Field types are loose on purpose, models get them wrong often enough.
type RawExercise struct {
	Name        string `json:"exerciseName"`
	Sets        any    `json:"sets"`
	MetricType  string `json:"metricType"`
	MetricValue any    `json:"metricValue"`
	Weight      any    `json:"weight"`
	WeightUnit  string `json:"weightUnit"`
}

var codeFenceRegex = regexp.MustCompile("```(?:json)?\n?")

type wireResponse struct {
	Action  string          `json:"action"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ParseResponse extracts a structured response from raw model text. It
// strips markdown code fences and surrounding whitespace before decoding.
// It never fails: any output that cannot be decoded degrades to a plain
// chat response carrying the original raw text as the message.
func ParseResponse(raw string) AIResponse {
	fallback := AIResponse{
		Action:  ActionChatResponse,
		Message: raw,
		Data:    nil,
	}

	cleaned := strings.TrimSpace(codeFenceRegex.ReplaceAllString(raw, ""))

	var wire wireResponse
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return fallback
	}

	action := AIAction(wire.Action)
	if action != ActionLogWorkouts && action != ActionChatResponse {
		return fallback
	}

	return AIResponse{
		Action:  action,
		Message: wire.Message,
		Data:    decodeExercises(wire.Data),
	}
}

// decodeExercises accepts an array, a single object, or null/absent data.
func decodeExercises(data json.RawMessage) []RawExercise {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var exercises []RawExercise
	if err := json.Unmarshal(data, &exercises); err == nil {
		return exercises
	}

	var single RawExercise
	if err := json.Unmarshal(data, &single); err == nil {
		return []RawExercise{single}
	}

	return nil
}

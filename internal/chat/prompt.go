package chat

import (
	"fmt"
	"strings"
)

const workoutParserPrompt = `You are Eco, a friendly AI workout tracker.

Your task is to parse user messages about workouts and extract structured exercise data.

Instructions:
1. Parse the workout (exercises, sets, reps, weight, duration, distance)
2. Respond in under 10 words for the message
3. Be encouraging, never judgmental
4. Ask only critical missing info (e.g., "How many sets?")

Response Format (JSON):
{
  "action": "log_workouts" | "chat_response",
  "data": [
    {
      "exerciseName": "push_ups",
      "sets": 3,
      "metricType": "reps" | "duration" | "distance",
      "metricValue": 20,
      "weight": 10,
      "weightUnit": "kg" | "lbs"
    }
  ],
  "message": "Nice! Same as last time?"
}

Examples:
User: "Did 20 pushups"
Response: {"action": "log_workouts", "data": [{"exerciseName": "push_ups", "sets": 1, "metricType": "reps", "metricValue": 20}], "message": "Great job!"}

User: "Ran 5km in 25 minutes"
Response: {"action": "log_workouts", "data": [{"exerciseName": "running", "sets": 1, "metricType": "distance", "metricValue": 5}], "message": "Nice pace!"}

User: "hello"
Response: {"action": "chat_response", "data": null, "message": "Hey! Ready to workout?"}`

const summaryPrompt = `Summarize the following workout conversation. ` +
	`Capture the exercises done, weights used, personal records and any ` +
	`relevant user context, in a few short sentences. Reply with the summary only.`

// BuildModelPrompt composes the full prompt for one user message.
func BuildModelPrompt(contextBlock, userText string) string {
	var sb strings.Builder
	sb.WriteString(workoutParserPrompt)
	if contextBlock != "" {
		sb.WriteString("\n\n")
		sb.WriteString(contextBlock)
	}
	sb.WriteString(fmt.Sprintf("\n\nUser Message: %q", userText))
	return sb.String()
}

// BuildSummaryPrompt composes the prompt used to compress older turns.
func BuildSummaryPrompt(turns []Turn) string {
	var sb strings.Builder
	sb.WriteString(summaryPrompt)
	sb.WriteString("\n\n")
	for i, turn := range turns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("User: %s\nEco: %s", turn.UserText, turn.EcoText))
	}
	return sb.String()
}

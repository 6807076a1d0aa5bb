package chat

import (
	"fmt"
	"strings"
)

// number of raw turns sent to the model with every message
const contextRecentTurns = 5

// BuildContext assembles the conversation context sent to the model:
// all summaries (oldest first) followed by the last few raw turns. This
// keeps the prompt size stable no matter how long the conversation gets.
func BuildContext(summaries []Summary, turns []Turn) string {
	var sb strings.Builder

	if len(summaries) > 0 {
		sb.WriteString("Session summaries (oldest first):\n")
		for i, summary := range summaries {
			if i > 0 {
				sb.WriteString("\n---\n")
			}
			sb.WriteString(summary.Content)
		}
		sb.WriteString("\n\n")
	}

	recent := turns
	if len(recent) > contextRecentTurns {
		recent = recent[len(recent)-contextRecentTurns:]
	}
	if len(recent) > 0 {
		sb.WriteString("Recent conversation:\n")
		for i, turn := range recent {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(fmt.Sprintf("User: %s\nEco: %s", turn.UserText, turn.EcoText))
		}
	}

	return sb.String()
}

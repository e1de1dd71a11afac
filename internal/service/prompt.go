package service

import (
	_ "embed"
	"strings"
)

// PromptVersion identifies the planner instruction sent with every utterance.
// Bump it whenever prompts/whatsapp_planner.txt changes.
const PromptVersion = "whatsapp-planner/2"

//go:embed prompts/whatsapp_planner.txt
var plannerPrompt string

// PlannerPrompt returns the system instruction for the planner
func PlannerPrompt() string {
	return strings.TrimSpace(plannerPrompt)
}

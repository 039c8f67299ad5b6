package prompts

import (
	"fmt"
	"strings"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// DefaultTinyPrompt is shown when the user has no active habit recipe
const DefaultTinyPrompt = "After you pour your morning coffee, do one tiny version of your habit and celebrate."

// TinyPrompt renders the dashboard prompt for an anchor in its assigned variant.
// Variant A states the recipe as an implementation intention; variant B phrases it
// as an invitation.
func TinyPrompt(anchor *models.HabitAnchor) string {
	if anchor == nil {
		return DefaultTinyPrompt
	}

	action := trimSentence(anchor.AnchorAction)
	behavior := trimSentence(anchor.TinyBehavior)
	celebration := trimSentence(anchor.Celebration)

	if anchor.PromptVariant == models.PromptVariantB {
		prompt := fmt.Sprintf("When you %s, try this: %s.", action, behavior)
		if celebration != "" {
			prompt += fmt.Sprintf(" Then %s!", celebration)
		}
		return prompt
	}

	prompt := fmt.Sprintf("After I %s, I will %s.", action, behavior)
	if celebration != "" {
		prompt += fmt.Sprintf(" Celebrate: %s.", celebration)
	}
	return prompt
}

func trimSentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!")
}

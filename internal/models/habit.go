package models

import "time"

// PromptVariant identifies which wording of the tiny-habit prompt a recipe is shown with
type PromptVariant string

const (
	PromptVariantA PromptVariant = "A"
	PromptVariantB PromptVariant = "B"
)

// HabitAnchor is a "Tiny Habits" recipe: after <anchor>, I will <tiny behavior>, then <celebration>.
type HabitAnchor struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	AnchorAction  string        `json:"anchor_action"`
	TinyBehavior  string        `json:"tiny_behavior"`
	Celebration   string        `json:"celebration"`
	IsActive      bool          `json:"is_active"`
	PromptVariant PromptVariant `json:"prompt_variant"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CreateHabitAnchorRequest represents the request to create a recipe
type CreateHabitAnchorRequest struct {
	AnchorAction string `json:"anchor_action" binding:"required,max=200"`
	TinyBehavior string `json:"tiny_behavior" binding:"required,max=200"`
	Celebration  string `json:"celebration" binding:"max=200"`
}

// UpdateHabitAnchorRequest represents the request to update a recipe
type UpdateHabitAnchorRequest struct {
	AnchorAction *string `json:"anchor_action" binding:"omitnil,min=1,max=200"`
	TinyBehavior *string `json:"tiny_behavior" binding:"omitnil,min=1,max=200"`
	Celebration  *string `json:"celebration" binding:"omitnil,max=200"`
	IsActive     *bool   `json:"is_active"`
}

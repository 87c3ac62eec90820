package domain

import "context"

// IntentParser converts raw user input into structured intents.
// Implementations can be keyword-based, regex, or LLM-powered.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, a terminal UI, or anything else that can show text.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// CalorieListener is called when an ingredient addition leaves a recipe
// above CalorieThreshold.
type CalorieListener func(r *Recipe)

// Subscription identifies a registered CalorieListener.
type Subscription struct {
	ID string
}

// RecipeCatalog owns an ordered collection of recipes and the operations
// that mutate them. Implementations trust their numeric inputs.
type RecipeCatalog interface {
	CreateRecipe(name string) *Recipe
	FindRecipe(name string) (*Recipe, bool)
	AddIngredient(recipeName string, ing Ingredient) error
	AddStep(recipeName, step string) error
	SaveOriginalQuantities()
	Scale(factor float64)
	ResetQuantities()
	Clear()
	ListRecipeNames() []string
	Recipes() []Recipe
	Summaries() []RecipeSummary
	OnCalorieThresholdExceeded(fn CalorieListener) Subscription
	Unsubscribe(sub Subscription) bool
}

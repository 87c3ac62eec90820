// Package engine is the command layer between the interactive shell and
// the recipe catalog. It validates raw user input, composes catalog
// operations the way the shell needs them, and forwards calorie alerts
// to a notifier.
package engine

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithNotifier sets where calorie alerts are delivered.
func WithNotifier(n domain.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithThresholdAlerts enables or disables calorie alerts. Enabled by default.
func WithThresholdAlerts(enabled bool) Option {
	return func(e *Engine) {
		e.alerts = enabled
	}
}

// Engine runs shell commands against a recipe catalog.
type Engine struct {
	catalog  domain.RecipeCatalog
	notifier domain.Notifier
	log      *logger.Logger
	alerts   bool

	sub     domain.Subscription
	mu      sync.Mutex
	pending []string // alerts raised during the current AddIngredient call
}

// New creates an engine over catalog. When alerts are enabled and a
// notifier is set, the engine subscribes to the catalog's calorie
// notifications until Close is called.
func New(catalog domain.RecipeCatalog, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		log:     log,
		alerts:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.alerts && e.notifier != nil {
		e.sub = catalog.OnCalorieThresholdExceeded(e.onThresholdExceeded)
	}
	return e
}

// Close detaches the engine from the catalog's notifications.
func (e *Engine) Close() {
	if e.sub.ID != "" {
		e.catalog.Unsubscribe(e.sub)
		e.sub = domain.Subscription{}
	}
}

func (e *Engine) onThresholdExceeded(r *domain.Recipe) {
	total := math.Round(r.TotalCalories()*100) / 100
	msg := fmt.Sprintf("%s now has %s calories (over %.0f)",
		r.Name, strconv.FormatFloat(total, 'f', -1, 64), domain.CalorieThreshold)

	e.mu.Lock()
	e.pending = append(e.pending, msg)
	e.mu.Unlock()
}

func (e *Engine) drainAlerts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.pending
	e.pending = nil
	return out
}

// AddRecipe creates a new, empty recipe.
func (e *Engine) AddRecipe(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	e.catalog.CreateRecipe(name)
	return nil
}

// HasRecipe reports whether a recipe with exactly this name exists.
func (e *Engine) HasRecipe(ctx context.Context, name string) bool {
	_, ok := e.catalog.FindRecipe(name)
	return ok
}

// Recipe returns a copy of the first recipe with the given name.
func (e *Engine) Recipe(ctx context.Context, name string) (domain.Recipe, error) {
	r, ok := e.catalog.FindRecipe(name)
	if !ok {
		return domain.Recipe{}, fmt.Errorf("looking up %q: %w", name, domain.ErrRecipeNotFound)
	}
	return r.Clone(), nil
}

// ValidateIngredient converts raw input into an ingredient, rejecting
// blank names and negative or non-numeric quantities and calories.
func ValidateIngredient(in IngredientInput) (domain.Ingredient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Ingredient{}, ErrEmptyName
	}
	qty, err := ParseQuantity(in.Quantity)
	if err != nil {
		return domain.Ingredient{}, err
	}
	cal, err := ParseCalories(in.Calories)
	if err != nil {
		return domain.Ingredient{}, err
	}
	return domain.Ingredient{
		Name:        in.Name,
		Quantity:    qty,
		Measurement: in.Measurement,
		Calories:    cal,
		FoodGroup:   in.FoodGroup,
	}, nil
}

// AddIngredient validates in, adds it to the named recipe and saves the
// catalog's current quantities as the new scaling baseline. Calorie
// alerts raised by the addition are delivered before it returns.
func (e *Engine) AddIngredient(ctx context.Context, recipeName string, in IngredientInput) error {
	ing, err := ValidateIngredient(in)
	if err != nil {
		return err
	}

	e.drainAlerts()
	if err := e.catalog.AddIngredient(recipeName, ing); err != nil {
		return err
	}
	e.catalog.SaveOriginalQuantities()

	for _, msg := range e.drainAlerts() {
		if err := e.notifier.NotifyUrgent(ctx, msg); err != nil {
			e.log.Warn("delivering calorie alert: %v", err)
		}
	}
	return nil
}

// AddStep appends a step to the named recipe.
func (e *Engine) AddStep(ctx context.Context, recipeName, step string) error {
	if strings.TrimSpace(step) == "" {
		return fmt.Errorf("step: %w", ErrEmptyName)
	}
	return e.catalog.AddStep(recipeName, step)
}

// Scale parses factorText and scales every recipe by it.
func (e *Engine) Scale(ctx context.Context, factorText string) (float64, error) {
	factor, err := ParseFactor(factorText)
	if err != nil {
		return 0, err
	}
	if factor <= 0 {
		e.log.Warn("scaling by non-positive factor %g", factor)
	}
	e.catalog.Scale(factor)
	return factor, nil
}

// Reset restores every ingredient to its saved quantity.
func (e *Engine) Reset(ctx context.Context) {
	e.catalog.ResetQuantities()
}

// Clear drops the whole catalog.
func (e *Engine) Clear(ctx context.Context) {
	e.catalog.Clear()
}

// RecipeNames returns recipe names in ascending order.
func (e *Engine) RecipeNames(ctx context.Context) []string {
	return e.catalog.ListRecipeNames()
}

// Catalog returns copies of every recipe in creation order.
func (e *Engine) Catalog(ctx context.Context) []domain.Recipe {
	return e.catalog.Recipes()
}

// Summaries returns a per-recipe calorie overview in creation order.
func (e *Engine) Summaries(ctx context.Context) []domain.RecipeSummary {
	return e.catalog.Summaries()
}

// Package recipe provides the in-memory recipe catalog.
package recipe

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeCatalog = (*Manager)(nil)

type listenerEntry struct {
	id string
	fn domain.CalorieListener
}

// Manager owns an ordered collection of recipes. Recipes are kept in
// creation order; lookups are by exact name and the first match wins.
//
// Calls are expected to come from a single caller. The mutex only keeps
// status readers (Summaries) consistent with a concurrent writer.
type Manager struct {
	mu        sync.RWMutex
	recipes   []*domain.Recipe
	listeners []listenerEntry
	log       *logger.Logger
}

// NewManager creates an empty catalog.
func NewManager(log *logger.Logger) *Manager {
	return &Manager{log: log}
}

// OnCalorieThresholdExceeded registers fn. Listeners run synchronously
// inside AddIngredient, in registration order.
func (m *Manager) OnCalorieThresholdExceeded(fn domain.CalorieListener) domain.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})
	m.log.Debug("registered calorie listener %s (total=%d)", id, len(m.listeners))
	return domain.Subscription{ID: id}
}

// Unsubscribe removes a listener. Returns false if it was not registered.
func (m *Manager) Unsubscribe(sub domain.Subscription) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, l := range m.listeners {
		if l.id == sub.ID {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			m.log.Debug("removed calorie listener %s", sub.ID)
			return true
		}
	}
	return false
}

// CreateRecipe appends an empty recipe. Names are not checked for
// uniqueness; a duplicate is shadowed by the earlier recipe in lookups.
func (m *Manager) CreateRecipe(name string) *domain.Recipe {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := &domain.Recipe{
		Name:        name,
		Ingredients: []domain.Ingredient{},
		Steps:       []string{},
	}
	m.recipes = append(m.recipes, r)
	m.log.Info("recipe created: %q (count=%d)", name, len(m.recipes))
	return r
}

// FindRecipe returns the first recipe named exactly name.
func (m *Manager) FindRecipe(name string) (*domain.Recipe, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r := m.find(name)
	return r, r != nil
}

// find must be called with the lock held.
func (m *Manager) find(name string) *domain.Recipe {
	for _, r := range m.recipes {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// AddIngredient appends ing to the named recipe. OriginalQuantity is reset
// to zero; SaveOriginalQuantities establishes the baseline. If the recipe
// total is above domain.CalorieThreshold afterwards, every listener is
// notified before AddIngredient returns. Inputs are not validated.
func (m *Manager) AddIngredient(recipeName string, ing domain.Ingredient) error {
	m.mu.Lock()
	r := m.find(recipeName)
	if r == nil {
		m.mu.Unlock()
		m.log.Debug("add ingredient: recipe not found: %q", recipeName)
		return fmt.Errorf("adding ingredient %q to %q: %w", ing.Name, recipeName, domain.ErrRecipeNotFound)
	}

	ing.OriginalQuantity = 0
	r.Ingredients = append(r.Ingredients, ing)
	total := r.TotalCalories()
	m.log.Debug("ingredient %q added to %q, total=%.2f", ing.Name, recipeName, total)

	var notify []domain.CalorieListener
	if total > domain.CalorieThreshold {
		notify = make([]domain.CalorieListener, len(m.listeners))
		for i, l := range m.listeners {
			notify[i] = l.fn
		}
	}
	m.mu.Unlock()

	if total > domain.CalorieThreshold {
		m.log.Info("recipe %q over calorie threshold: %.2f > %.0f (listeners=%d)",
			recipeName, total, domain.CalorieThreshold, len(notify))
	}
	// Listeners run unlocked so they may call back into the manager.
	for _, fn := range notify {
		fn(r)
	}
	return nil
}

// AddStep appends a preparation step to the named recipe.
func (m *Manager) AddStep(recipeName, step string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.find(recipeName)
	if r == nil {
		m.log.Debug("add step: recipe not found: %q", recipeName)
		return fmt.Errorf("adding step to %q: %w", recipeName, domain.ErrRecipeNotFound)
	}
	r.Steps = append(r.Steps, step)
	m.log.Debug("step %d added to %q", len(r.Steps), recipeName)
	return nil
}

// SaveOriginalQuantities makes every ingredient's current quantity its
// scaling baseline.
func (m *Manager) SaveOriginalQuantities() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.each(func(ing *domain.Ingredient) {
		ing.OriginalQuantity = ing.Quantity
	})
	m.log.Debug("original quantities saved")
}

// Scale sets every ingredient's quantity to OriginalQuantity × factor.
// Scaling is relative to the baseline, not cumulative. Any factor is
// applied as given, including zero and negative values.
func (m *Manager) Scale(factor float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.each(func(ing *domain.Ingredient) {
		ing.Quantity = ing.OriginalQuantity * factor
	})
	m.log.Info("scaled all recipes by %g", factor)
}

// ResetQuantities restores every ingredient to its baseline. Same as Scale(1).
func (m *Manager) ResetQuantities() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.each(func(ing *domain.Ingredient) {
		ing.Quantity = ing.OriginalQuantity
	})
	m.log.Info("quantities reset")
}

// each must be called with the write lock held.
func (m *Manager) each(fn func(ing *domain.Ingredient)) {
	for _, r := range m.recipes {
		for i := range r.Ingredients {
			fn(&r.Ingredients[i])
		}
	}
}

// Clear removes every recipe.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.recipes)
	m.recipes = nil
	m.log.Info("catalog cleared (%d recipes dropped)", n)
}

// ListRecipeNames returns all recipe names in ascending order.
// Duplicates appear once per recipe.
func (m *Manager) ListRecipeNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.recipes))
	for _, r := range m.recipes {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// Recipes returns deep copies of all recipes in creation order.
func (m *Manager) Recipes() []domain.Recipe {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Recipe, len(m.recipes))
	for i, r := range m.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Summaries returns a lightweight view of every recipe in creation order.
func (m *Manager) Summaries() []domain.RecipeSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.RecipeSummary, len(m.recipes))
	for i, r := range m.recipes {
		out[i] = domain.RecipeSummary{
			Name:            r.Name,
			TotalCalories:   r.TotalCalories(),
			IngredientCount: len(r.Ingredients),
			StepCount:       len(r.Steps),
		}
	}
	return out
}

// Len returns the number of recipes.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recipes)
}

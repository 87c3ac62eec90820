// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing.
package domain

// CalorieThreshold is the recipe total above which an ingredient addition
// raises a calorie notification.
const CalorieThreshold = 300.0

// Recipe is a named collection of ingredients and preparation steps.
// Name is the lookup key inside a catalog; duplicates are allowed.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
	Steps       []string
}

// TotalCalories returns the sum of Calories × Quantity over all ingredients.
// It is recomputed on every call so it always reflects current quantities.
func (r *Recipe) TotalCalories() float64 {
	total := 0.0
	for _, ing := range r.Ingredients {
		total += ing.CalorieTotal()
	}
	return total
}

// ExceedsCalorieThreshold reports whether the recipe's current total is
// above CalorieThreshold.
func (r *Recipe) ExceedsCalorieThreshold() bool {
	return r.TotalCalories() > CalorieThreshold
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() Recipe {
	out := Recipe{Name: r.Name}
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	if r.Steps != nil {
		out.Steps = make([]string, len(r.Steps))
		copy(out.Steps, r.Steps)
	}
	return out
}

// RecipeSummary is a lightweight view of a recipe for status displays.
type RecipeSummary struct {
	Name            string
	TotalCalories   float64
	IngredientCount int
	StepCount       int
}

// OverThreshold reports whether the summarised recipe is above CalorieThreshold.
func (s RecipeSummary) OverThreshold() bool {
	return s.TotalCalories > CalorieThreshold
}

// Ingredient is a named quantity of a food item.
type Ingredient struct {
	Name        string
	Quantity    float64 // current amount, used for calorie totals
	Measurement string  // "cups", "grams", "pieces", ...
	Calories    float64 // per unit of Quantity
	FoodGroup   string

	// OriginalQuantity is the scaling baseline. Only a save changes it.
	OriginalQuantity float64
}

// CalorieTotal returns this ingredient's contribution to a recipe total.
func (i Ingredient) CalorieTotal() float64 {
	return i.Calories * i.Quantity
}

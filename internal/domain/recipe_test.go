package domain

import (
	"errors"
	"testing"
)

func TestRecipeTotalCalories(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []Ingredient
		want        float64
	}{
		{"no ingredients", nil, 0},
		{"single", []Ingredient{{Name: "flour", Quantity: 2, Calories: 100}}, 200},
		{"zero calories", []Ingredient{
			{Name: "flour", Quantity: 2, Calories: 100},
			{Name: "water", Quantity: 5, Calories: 0},
		}, 200},
		{"fractional", []Ingredient{
			{Name: "butter", Quantity: 0.5, Calories: 102},
			{Name: "sugar", Quantity: 1.5, Calories: 16},
		}, 75},
		{"zero quantity", []Ingredient{{Name: "salt", Quantity: 0, Calories: 999}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recipe{Name: "test", Ingredients: tt.ingredients}
			if got := r.TotalCalories(); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecipeTotalCaloriesTracksQuantity(t *testing.T) {
	r := &Recipe{Name: "pancakes", Ingredients: []Ingredient{{Name: "milk", Quantity: 1, Calories: 150}}}
	if r.ExceedsCalorieThreshold() {
		t.Fatal("150 calories should not exceed threshold")
	}

	r.Ingredients[0].Quantity = 3
	if got := r.TotalCalories(); got != 450 {
		t.Fatalf("expected 450 after quantity change, got %v", got)
	}
	if !r.ExceedsCalorieThreshold() {
		t.Fatal("450 calories should exceed threshold")
	}
}

func TestIngredientCalorieTotalSumsToRecipe(t *testing.T) {
	r := Recipe{Ingredients: []Ingredient{
		{Name: "rice", Quantity: 2, Calories: 130},
		{Name: "oil", Quantity: 0.5, Calories: 120},
	}}

	sum := 0.0
	for _, ing := range r.Ingredients {
		sum += ing.CalorieTotal()
	}
	if got := r.Ingredients[0].CalorieTotal(); got != 260 {
		t.Fatalf("expected 260, got %v", got)
	}
	if got := r.TotalCalories(); got != sum {
		t.Fatalf("recipe total %v does not match ingredient totals %v", got, sum)
	}
}

func TestRecipeThresholdIsStrict(t *testing.T) {
	r := &Recipe{Ingredients: []Ingredient{{Quantity: 1, Calories: CalorieThreshold}}}
	if r.ExceedsCalorieThreshold() {
		t.Fatal("a total equal to the threshold must not exceed it")
	}
}

func TestRecipeClone(t *testing.T) {
	r := &Recipe{
		Name:        "soup",
		Ingredients: []Ingredient{{Name: "carrot", Quantity: 2}},
		Steps:       []string{"chop", "boil"},
	}
	c := r.Clone()
	c.Ingredients[0].Quantity = 10
	c.Steps[0] = "dice"

	if r.Ingredients[0].Quantity != 2 {
		t.Fatalf("clone shares ingredients: %v", r.Ingredients[0].Quantity)
	}
	if r.Steps[0] != "chop" {
		t.Fatalf("clone shares steps: %q", r.Steps[0])
	}
}

func TestErrRecipeNotFoundWrapsNotFound(t *testing.T) {
	if !errors.Is(ErrRecipeNotFound, ErrNotFound) {
		t.Fatal("ErrRecipeNotFound should match ErrNotFound")
	}
}

func TestIntentTypeString(t *testing.T) {
	tests := []struct {
		in   IntentType
		want string
	}{
		{IntentAddRecipe, "add_recipe"},
		{IntentScale, "scale"},
		{IntentQuit, "quit"},
		{IntentUnknown, "unknown"},
		{IntentType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

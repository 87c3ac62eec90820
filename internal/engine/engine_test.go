package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
)

type recordingNotifier struct {
	normal []string
	urgent []string
	err    error
}

func (n *recordingNotifier) Notify(ctx context.Context, message string) error {
	n.normal = append(n.normal, message)
	return n.err
}

func (n *recordingNotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.urgent = append(n.urgent, message)
	return n.err
}

func setupEngine(t *testing.T, opts ...Option) (*Engine, *recipe.Manager, *recordingNotifier, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	catalog := recipe.NewManager(log)
	notifier := &recordingNotifier{}
	opts = append([]Option{WithNotifier(notifier)}, opts...)
	eng := New(catalog, log, opts...)
	t.Cleanup(eng.Close)
	return eng, catalog, notifier, context.Background()
}

func ingredient(name, qty, cal string) IngredientInput {
	return IngredientInput{Name: name, Quantity: qty, Measurement: "cups", Calories: cal, FoodGroup: "Misc"}
}

func TestAddRecipe(t *testing.T) {
	eng, catalog, _, ctx := setupEngine(t)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain", "Pancakes", nil},
		{"with spaces", "Banana Bread", nil},
		{"empty", "", ErrEmptyName},
		{"blank", "   ", ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eng.AddRecipe(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && !eng.HasRecipe(ctx, tt.input) {
				t.Fatalf("recipe %q not created", tt.input)
			}
		})
	}

	if got := len(catalog.ListRecipeNames()); got != 2 {
		t.Fatalf("expected 2 recipes, got %d", got)
	}
}

func TestAddIngredientSavesBaseline(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)

	if err := eng.AddRecipe(ctx, "Muffins"); err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	if err := eng.AddIngredient(ctx, "Muffins", ingredient("flour", "2", "100")); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	r, err := eng.Recipe(ctx, "Muffins")
	if err != nil {
		t.Fatalf("recipe: %v", err)
	}
	ing := r.Ingredients[0]
	if ing.Quantity != 2 || ing.OriginalQuantity != 2 {
		t.Fatalf("expected quantity and baseline 2, got %v / %v", ing.Quantity, ing.OriginalQuantity)
	}
	if ing.Measurement != "cups" || ing.FoodGroup != "Misc" {
		t.Fatalf("text fields not carried over: %+v", ing)
	}
}

func TestAddIngredientValidation(t *testing.T) {
	eng, catalog, _, ctx := setupEngine(t)
	catalog.CreateRecipe("Stew")

	tests := []struct {
		name    string
		recipe  string
		input   IngredientInput
		wantErr error
	}{
		{"negative quantity", "Stew", ingredient("beef", "-1", "250"), ErrInvalidQuantity},
		{"text quantity", "Stew", ingredient("beef", "lots", "250"), ErrInvalidQuantity},
		{"infinite quantity", "Stew", ingredient("beef", "Inf", "250"), ErrInvalidQuantity},
		{"negative calories", "Stew", ingredient("beef", "1", "-5"), ErrInvalidCalories},
		{"empty calories", "Stew", ingredient("beef", "1", ""), ErrInvalidCalories},
		{"blank name", "Stew", ingredient(" ", "1", "5"), ErrEmptyName},
		{"unknown recipe", "Curry", ingredient("rice", "1", "200"), domain.ErrRecipeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eng.AddIngredient(ctx, tt.recipe, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	r, _ := catalog.FindRecipe("Stew")
	if len(r.Ingredients) != 0 {
		t.Fatalf("rejected input mutated the recipe: %+v", r.Ingredients)
	}
}

func TestAddIngredientAcceptsZero(t *testing.T) {
	eng, catalog, _, ctx := setupEngine(t)
	catalog.CreateRecipe("Water")

	if err := eng.AddIngredient(ctx, "Water", ingredient("water", "0", "0")); err != nil {
		t.Fatalf("zero quantity and calories should be accepted: %v", err)
	}
}

func TestCalorieAlerts(t *testing.T) {
	eng, _, notifier, ctx := setupEngine(t)
	if err := eng.AddRecipe(ctx, "Lasagne"); err != nil {
		t.Fatalf("add recipe: %v", err)
	}

	steps := []struct {
		input      IngredientInput
		wantAlerts int
	}{
		{ingredient("pasta", "1", "100"), 0},
		{ingredient("cheese", "1", "250"), 1},
		{ingredient("basil", "1", "0"), 2},
	}
	for i, s := range steps {
		if err := eng.AddIngredient(ctx, "Lasagne", s.input); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if len(notifier.urgent) != s.wantAlerts {
			t.Fatalf("step %d: expected %d alerts, got %d (%v)", i, s.wantAlerts, len(notifier.urgent), notifier.urgent)
		}
	}

	want := "Lasagne now has 350 calories (over 300)"
	if notifier.urgent[0] != want {
		t.Fatalf("expected %q, got %q", want, notifier.urgent[0])
	}
	if len(notifier.normal) != 0 {
		t.Fatalf("alerts must be urgent, got normal %v", notifier.normal)
	}
}

func TestCalorieAlertsDisabled(t *testing.T) {
	eng, _, notifier, ctx := setupEngine(t, WithThresholdAlerts(false))
	_ = eng.AddRecipe(ctx, "Fudge")

	if err := eng.AddIngredient(ctx, "Fudge", ingredient("chocolate", "2", "500")); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if len(notifier.urgent) != 0 {
		t.Fatalf("expected no alerts, got %v", notifier.urgent)
	}
}

func TestCalorieAlertDeliveryErrorIsNotFatal(t *testing.T) {
	eng, _, notifier, ctx := setupEngine(t)
	notifier.err = errors.New("terminal closed")
	_ = eng.AddRecipe(ctx, "Cake")

	if err := eng.AddIngredient(ctx, "Cake", ingredient("sugar", "1", "400")); err != nil {
		t.Fatalf("notifier failure should not fail the addition: %v", err)
	}
}

func TestCloseStopsAlerts(t *testing.T) {
	eng, _, notifier, ctx := setupEngine(t)
	_ = eng.AddRecipe(ctx, "Pie")
	eng.Close()

	if err := eng.AddIngredient(ctx, "Pie", ingredient("lard", "1", "900")); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if len(notifier.urgent) != 0 {
		t.Fatalf("expected no alerts after Close, got %v", notifier.urgent)
	}
}

func TestAddStep(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)
	_ = eng.AddRecipe(ctx, "Toast")

	if err := eng.AddStep(ctx, "Toast", "slice bread"); err != nil {
		t.Fatalf("add step: %v", err)
	}
	if err := eng.AddStep(ctx, "Toast", ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName for blank step, got %v", err)
	}
	if err := eng.AddStep(ctx, "Bagel", "slice"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}

	r, _ := eng.Recipe(ctx, "Toast")
	if !reflect.DeepEqual(r.Steps, []string{"slice bread"}) {
		t.Fatalf("unexpected steps: %v", r.Steps)
	}
}

func TestScaleAndReset(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)
	_ = eng.AddRecipe(ctx, "Rice")
	if err := eng.AddIngredient(ctx, "Rice", ingredient("rice", "2", "200")); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}

	tests := []struct {
		text    string
		want    float64
		wantQty float64
		wantErr error
	}{
		{"3", 3, 6, nil},
		{" 0.5 ", 0.5, 1, nil},
		{"0", 0, 0, nil},
		{"-2", -2, -4, nil},
		{"double", 0, -4, ErrInvalidFactor},
		{"NaN", 0, -4, ErrInvalidFactor},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := eng.Scale(ctx, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected factor %v, got %v", tt.want, got)
			}
			r, _ := eng.Recipe(ctx, "Rice")
			if q := r.Ingredients[0].Quantity; q != tt.wantQty {
				t.Fatalf("expected quantity %v, got %v", tt.wantQty, q)
			}
		})
	}

	eng.Reset(ctx)
	r, _ := eng.Recipe(ctx, "Rice")
	if q := r.Ingredients[0].Quantity; q != 2 {
		t.Fatalf("expected reset quantity 2, got %v", q)
	}
}

func TestClearAndNames(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)
	for _, n := range []string{"Banana Bread", "Apple Pie"} {
		_ = eng.AddRecipe(ctx, n)
	}

	if got := eng.RecipeNames(ctx); !reflect.DeepEqual(got, []string{"Apple Pie", "Banana Bread"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if got := eng.Catalog(ctx); len(got) != 2 || got[0].Name != "Banana Bread" {
		t.Fatalf("catalog should keep creation order: %+v", got)
	}

	eng.Clear(ctx)
	if got := eng.RecipeNames(ctx); len(got) != 0 {
		t.Fatalf("expected empty names after clear, got %v", got)
	}
	if got := eng.Summaries(ctx); len(got) != 0 {
		t.Fatalf("expected no summaries after clear, got %v", got)
	}
}

func TestRecipeNotFound(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)
	if _, err := eng.Recipe(ctx, "Ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package recipe

import (
	"fmt"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

type demoRecipe struct {
	name        string
	ingredients []domain.Ingredient
	steps       []string
}

// SeedDemo adds built-in sample recipes through the regular catalog
// operations and saves their quantities as the scaling baseline.
func SeedDemo(m *Manager) error {
	demos := []demoRecipe{vegetableStirFry(), chickenAlfredo()}
	for _, d := range demos {
		m.CreateRecipe(d.name)
		for _, ing := range d.ingredients {
			if err := m.AddIngredient(d.name, ing); err != nil {
				return fmt.Errorf("seeding %q: %w", d.name, err)
			}
		}
		for _, step := range d.steps {
			if err := m.AddStep(d.name, step); err != nil {
				return fmt.Errorf("seeding %q: %w", d.name, err)
			}
		}
	}
	m.SaveOriginalQuantities()
	m.log.Debug("seeded %d demo recipes", len(demos))
	return nil
}

func chickenAlfredo() demoRecipe {
	return demoRecipe{
		name: "Chicken Alfredo",
		ingredients: []domain.Ingredient{
			{Name: "spaghetti", Quantity: 250, Measurement: "grams", Calories: 3.7, FoodGroup: "Grains"},
			{Name: "chicken breast", Quantity: 2, Measurement: "pieces", Calories: 280, FoodGroup: "Protein"},
			{Name: "creme fraiche", Quantity: 1, Measurement: "cup", Calories: 400, FoodGroup: "Dairy"},
			{Name: "gruyere cheese", Quantity: 1, Measurement: "cup", Calories: 440, FoodGroup: "Dairy"},
			{Name: "garlic", Quantity: 4, Measurement: "cloves", Calories: 4, FoodGroup: "Vegetables"},
			{Name: "olive oil", Quantity: 1, Measurement: "tablespoon", Calories: 119, FoodGroup: "Fats and oils"},
		},
		steps: []string{
			"Bring a large pot of salted water to a boil for the pasta.",
			"Season the chicken and sear it in olive oil for about 6 minutes per side. Set aside to rest.",
			"Cook the spaghetti until al dente. Reserve a cup of pasta water before draining.",
			"Soften the garlic in the same skillet, stir in the creme fraiche and let it reduce for 3 minutes.",
			"Off the heat, stir in the gruyere until smooth, loosening with pasta water if needed.",
			"Toss the pasta in the sauce, slice the chicken on top and serve immediately.",
		},
	}
}

func vegetableStirFry() demoRecipe {
	return demoRecipe{
		name: "Vegetable Stir Fry",
		ingredients: []domain.Ingredient{
			{Name: "bell pepper", Quantity: 1, Measurement: "pieces", Calories: 30, FoodGroup: "Vegetables"},
			{Name: "broccoli florets", Quantity: 2, Measurement: "cups", Calories: 31, FoodGroup: "Vegetables"},
			{Name: "carrot", Quantity: 1, Measurement: "pieces", Calories: 25, FoodGroup: "Vegetables"},
			{Name: "soy sauce", Quantity: 2, Measurement: "tablespoons", Calories: 9, FoodGroup: "Condiments"},
			{Name: "vegetable oil", Quantity: 2, Measurement: "tablespoons", Calories: 120, FoodGroup: "Fats and oils"},
		},
		steps: []string{
			"Prep all vegetables before the pan goes on.",
			"Heat the oil in a wok on high heat until it shimmers.",
			"Stir-fry broccoli and carrot for 2 minutes, then the bell pepper for 2 more.",
			"Pour in the soy sauce, toss to coat and serve right away.",
		},
	}
}

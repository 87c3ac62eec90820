package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// console is the part of the terminal UI the command loop talks to.
type console interface {
	InputChan() <-chan string
	SetPlaceholder(text string)
	PrintChat(text string)
	PrintHint(text string)
	PrintLine(text string)
	PrintUrgent(text string)
	PrintCatalog(recipes []domain.Recipe)
}

var _ console = (*display.UI)(nil)

type cliApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       console
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintHint("Pick a command by number or name. 'help' lists them.")

	for {
		input, ok := a.next(ctx)
		if !ok {
			return
		}
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// next waits for the next trimmed input line. ok is false once ctx is done.
func (a *cliApp) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-a.ui.InputChan():
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

// ask prints a question and waits for the answer.
func (a *cliApp) ask(ctx context.Context, question string) (string, bool) {
	a.ui.PrintChat(question)
	a.ui.SetPlaceholder(question)
	defer a.ui.SetPlaceholder("")
	return a.next(ctx)
}

// askUnlessGiven returns the intent payload, or asks for it.
func (a *cliApp) askUnlessGiven(ctx context.Context, payload, question string) (string, bool) {
	if payload != "" {
		return payload, true
	}
	return a.ask(ctx, question)
}

func (a *cliApp) notify(ctx context.Context, format string, args ...any) {
	if err := a.notifier.Notify(ctx, fmt.Sprintf(format, args...)); err != nil {
		a.log.Warn("notify: %v", err)
	}
}

// handleIntent runs one command. It returns false when the loop should stop.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentAddRecipe:
		a.addRecipe(ctx, intent.Payload)
	case domain.IntentAddIngredient:
		a.addIngredient(ctx, intent.Payload)
	case domain.IntentAddStep:
		a.addStep(ctx, intent.Payload)
	case domain.IntentDisplay:
		a.display(ctx)
	case domain.IntentScale:
		a.scale(ctx, intent.Payload)
	case domain.IntentReset:
		a.engine.Reset(ctx)
		a.notify(ctx, "Quantities reset to their original values.")
	case domain.IntentClear:
		a.clear(ctx)
	case domain.IntentListNames:
		a.listNames(ctx)
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentQuit:
		a.ui.PrintChat("Goodbye.")
		return false
	default:
		a.ui.PrintUrgent("Invalid command.")
		a.ui.PrintHint("Type 'help' for commands.")
	}
	return true
}

// ── Command handlers ─────────────────────────────────────────────

func (a *cliApp) addRecipe(ctx context.Context, payload string) {
	name, ok := a.askUnlessGiven(ctx, payload, "Enter recipe name:")
	if !ok {
		return
	}
	err := a.engine.AddRecipe(ctx, name)
	switch {
	case errors.Is(err, engine.ErrEmptyName):
		a.ui.PrintUrgent("Recipe name cannot be empty.")
		return
	case err != nil:
		a.log.Error("adding recipe: %v", err)
		a.ui.PrintUrgent("Could not add the recipe.")
		return
	}
	a.notify(ctx, "Recipe %q added.", name)
}

// requireRecipe asks for a recipe name and checks that it exists.
func (a *cliApp) requireRecipe(ctx context.Context, payload string) (string, bool) {
	name, ok := a.askUnlessGiven(ctx, payload, "Enter recipe name:")
	if !ok {
		return "", false
	}
	if !a.engine.HasRecipe(ctx, name) {
		a.ui.PrintUrgent("Recipe name not found. Please try another one.")
		return "", false
	}
	return name, true
}

func (a *cliApp) addIngredient(ctx context.Context, payload string) {
	recipeName, ok := a.requireRecipe(ctx, payload)
	if !ok {
		return
	}

	var in engine.IngredientInput
	if in.Name, ok = a.ask(ctx, "Enter ingredient name:"); !ok {
		return
	}
	if in.Quantity, ok = a.ask(ctx, "Enter quantity:"); !ok {
		return
	}
	if _, err := engine.ParseQuantity(in.Quantity); err != nil {
		a.log.Debug("rejected quantity: %v", err)
		a.ui.PrintUrgent("Invalid quantity. Please try again.")
		return
	}
	if in.Measurement, ok = a.ask(ctx, "Enter measurement:"); !ok {
		return
	}
	if in.Calories, ok = a.ask(ctx, "Enter calories:"); !ok {
		return
	}
	if _, err := engine.ParseCalories(in.Calories); err != nil {
		a.log.Debug("rejected calories: %v", err)
		a.ui.PrintUrgent("Invalid calories. Please try again.")
		return
	}
	if in.FoodGroup, ok = a.ask(ctx, "Enter food group:"); !ok {
		return
	}

	err := a.engine.AddIngredient(ctx, recipeName, in)
	switch {
	case err == nil:
		a.notify(ctx, "Added %s to %s.", in.Name, recipeName)
	case errors.Is(err, engine.ErrEmptyName):
		a.ui.PrintUrgent("Ingredient name cannot be empty.")
	case errors.Is(err, domain.ErrRecipeNotFound):
		a.ui.PrintUrgent("Recipe name not found. Please try another one.")
	default:
		a.log.Error("adding ingredient: %v", err)
		a.ui.PrintUrgent("Could not add the ingredient.")
	}
}

func (a *cliApp) addStep(ctx context.Context, payload string) {
	recipeName, ok := a.requireRecipe(ctx, payload)
	if !ok {
		return
	}
	step, ok := a.ask(ctx, "Enter step description:")
	if !ok {
		return
	}

	err := a.engine.AddStep(ctx, recipeName, step)
	switch {
	case err == nil:
		a.stepAdded(ctx, recipeName)
	case errors.Is(err, engine.ErrEmptyName):
		a.ui.PrintUrgent("Step cannot be empty.")
	case errors.Is(err, domain.ErrRecipeNotFound):
		a.ui.PrintUrgent("Recipe name not found. Please try another one.")
	default:
		a.log.Error("adding step: %v", err)
		a.ui.PrintUrgent("Could not add the step.")
	}
}

// stepAdded confirms a new step with its position in the recipe.
func (a *cliApp) stepAdded(ctx context.Context, recipeName string) {
	r, err := a.engine.Recipe(ctx, recipeName)
	if err != nil {
		a.log.Warn("reading back %q: %v", recipeName, err)
		a.notify(ctx, "Step added to %s.", recipeName)
		return
	}
	a.notify(ctx, "Step %d added to %s.", len(r.Steps), recipeName)
}

func (a *cliApp) display(ctx context.Context) {
	recipes := a.engine.Catalog(ctx)
	if len(recipes) == 0 {
		a.ui.PrintHint("No recipes yet. Use 1 to add one.")
		return
	}
	a.ui.PrintCatalog(recipes)
}

func (a *cliApp) scale(ctx context.Context, payload string) {
	text, ok := a.askUnlessGiven(ctx, payload, "Enter scaling factor (0.5, 2, or 3):")
	if !ok {
		return
	}
	factor, err := a.engine.Scale(ctx, text)
	if err != nil {
		a.log.Debug("rejected factor: %v", err)
		a.ui.PrintUrgent("Invalid scaling factor. Please try again.")
		return
	}
	a.notify(ctx, "Scaled all recipes by %s.", display.FormatNumber(factor))
}

func (a *cliApp) clear(ctx context.Context) {
	n := len(a.engine.Summaries(ctx))
	if n == 0 {
		a.ui.PrintHint("Nothing to clear.")
		return
	}

	answer, ok := a.ask(ctx, fmt.Sprintf("Clear all %d recipe(s)? (y/n)", n))
	if !ok {
		return
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		a.engine.Clear(ctx)
		a.notify(ctx, "All recipes cleared.")
	default:
		a.ui.PrintHint("Kept your recipes.")
	}
}

func (a *cliApp) listNames(ctx context.Context) {
	names := a.engine.RecipeNames(ctx)
	if len(names) == 0 {
		a.ui.PrintHint("No recipes yet.")
		return
	}
	for _, name := range names {
		a.ui.PrintLine("- " + name)
	}
}

func (a *cliApp) showHelp() {
	for _, l := range display.HelpLines() {
		a.ui.PrintHint(l)
	}
}

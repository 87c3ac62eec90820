package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validation errors returned before any catalog call is made.
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidCalories = errors.New("invalid calories")
	ErrInvalidFactor   = errors.New("invalid scaling factor")
)

// IngredientInput holds the raw text a user typed for a new ingredient.
type IngredientInput struct {
	Name        string
	Quantity    string
	Measurement string
	Calories    string
	FoodGroup   string
}

// ParseQuantity parses a non-negative ingredient quantity.
func ParseQuantity(s string) (float64, error) {
	return parseNonNegative(s, ErrInvalidQuantity)
}

// ParseCalories parses a non-negative calories-per-unit value.
func ParseCalories(s string) (float64, error) {
	return parseNonNegative(s, ErrInvalidCalories)
}

// ParseFactor parses a scaling factor. Any finite number is accepted,
// including zero and negative values.
func ParseFactor(s string) (float64, error) {
	return parseFinite(s, ErrInvalidFactor)
}

func parseNonNegative(s string, sentinel error) (float64, error) {
	v, err := parseFinite(s, sentinel)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", sentinel, s)
	}
	return v, nil
}

func parseFinite(s string, sentinel error) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", sentinel, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", sentinel, s)
	}
	return v, nil
}

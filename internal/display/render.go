package display

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// LineKind selects the style a rendered line is printed with.
type LineKind int

const (
	LineText LineKind = iota
	LineHeading
	LineSection
	LineBlank
)

// Line is one row of rendered output.
type Line struct {
	Kind LineKind
	Text string
}

// CatalogLines lays out every recipe in the order given:
//
//	Recipe List:
//	------------
//	<name>
//	Total Calories: <total>
//	Ingredients:
//	- <name>: <qty> <unit>, <calories> Calories, <food group>
//	Steps:
//	- <step>
func CatalogLines(recipes []domain.Recipe) []Line {
	lines := []Line{
		{Kind: LineHeading, Text: "Recipe List:"},
		{Kind: LineSection, Text: "------------"},
	}
	for i := range recipes {
		r := &recipes[i]
		lines = append(lines,
			Line{Kind: LineHeading, Text: r.Name},
			Line{Kind: LineText, Text: "Total Calories: " + FormatNumber(r.TotalCalories())},
			Line{Kind: LineSection, Text: "Ingredients:"},
		)
		for _, ing := range r.Ingredients {
			lines = append(lines, Line{Kind: LineText, Text: IngredientLine(ing)})
		}
		lines = append(lines, Line{Kind: LineSection, Text: "Steps:"})
		for _, step := range r.Steps {
			lines = append(lines, Line{Kind: LineText, Text: "- " + step})
		}
		lines = append(lines, Line{Kind: LineBlank})
	}
	return lines
}

// IngredientLine formats a single ingredient row.
func IngredientLine(ing domain.Ingredient) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(ing.Name)
	b.WriteString(": ")
	b.WriteString(FormatNumber(ing.Quantity))
	b.WriteByte(' ')
	b.WriteString(ing.Measurement)
	b.WriteString(", ")
	b.WriteString(FormatNumber(ing.Calories))
	b.WriteString(" Calories, ")
	b.WriteString(ing.FoodGroup)
	return b.String()
}

// FormatNumber prints v with at most six decimals and no trailing zeros,
// so 2 prints as "2" and 0.1+0.2 as "0.3".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// HelpLines lists the shell commands.
func HelpLines() []string {
	return []string{
		"Commands:",
		"1 | add [name]          Add recipe",
		"2 | ingredient          Add ingredient",
		"3 | step                Add step",
		"4 | display             Display recipes",
		"5 | scale [factor]      Scale recipes",
		"6 | reset               Reset quantities",
		"7 | clear               Clear recipes",
		"list                    Recipe names (sorted)",
		"help                    This list",
		"0 | quit                Exit",
	}
}

package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentAddRecipe
	IntentAddIngredient
	IntentAddStep
	IntentDisplay
	IntentScale
	IntentReset
	IntentClear
	IntentListNames
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentAddRecipe:
		return "add_recipe"
	case IntentAddIngredient:
		return "add_ingredient"
	case IntentAddStep:
		return "add_step"
	case IntentDisplay:
		return "display"
	case IntentScale:
		return "scale"
	case IntentReset:
		return "reset"
	case IntentClear:
		return "clear"
	case IntentListNames:
		return "list_names"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional argument, e.g. the factor in "scale 2"
}

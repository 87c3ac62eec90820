// Package conversation provides command parsing and user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using menu numbers,
// keywords and simple patterns. The first word selects the command; the
// rest of the line, if any, becomes the payload.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(1|add|new|recipe|add recipe)$`), domain.IntentAddRecipe},
		{regexp.MustCompile(`(?i)^(2|ingredient|ing|add ingredient)$`), domain.IntentAddIngredient},
		{regexp.MustCompile(`(?i)^(3|step|add step)$`), domain.IntentAddStep},
		{regexp.MustCompile(`(?i)^(4|display|show|catalog)$`), domain.IntentDisplay},
		{regexp.MustCompile(`(?i)^(5|scale)$`), domain.IntentScale},
		{regexp.MustCompile(`(?i)^(6|reset)$`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(7|clear)$`), domain.IntentClear},
		{regexp.MustCompile(`(?i)^(list|names|ls)$`), domain.IntentListNames},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(0|quit|exit|q)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// Whole-line match first so two-word commands like "add step" win
	// over "add" with a payload.
	if t, ok := p.match(trimmed); ok {
		return &domain.Intent{Type: t}, nil
	}

	head, rest, found := strings.Cut(trimmed, " ")
	if found {
		rest = strings.TrimLeft(rest, " ")

		// Longest head first: "add step Soup" is a step for Soup, not
		// a recipe called "step Soup".
		second, tail, _ := strings.Cut(rest, " ")
		if t, ok := p.match(head + " " + second); ok {
			return p.withPayload(t, tail), nil
		}
		if t, ok := p.match(head); ok {
			return p.withPayload(t, rest), nil
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func (p *KeywordParser) withPayload(t domain.IntentType, payload string) *domain.Intent {
	payload = strings.TrimSpace(payload)
	p.log.Debug("matched intent %s with payload %q", t, payload)
	return &domain.Intent{Type: t, Payload: payload}
}

func (p *KeywordParser) match(s string) (domain.IntentType, bool) {
	for _, rule := range p.patterns {
		if rule.regex.MatchString(s) {
			return rule.intent, true
		}
	}
	return domain.IntentUnknown, false
}

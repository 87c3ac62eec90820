package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// ANSI escape codes for the fallback printers.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// Markers prefixed to notification lines.
const (
	infoMarker   = "* "
	urgentMarker = "! "
)

// LineFunc prints a single line of output. display.UI's PrintChat and
// PrintUrgent both match it.
type LineFunc func(text string)

// CLINotifier writes notifications through line printers.
type CLINotifier struct {
	log    *logger.Logger
	info   LineFunc
	urgent LineFunc
}

// NewCLINotifier creates a notifier. A nil printer falls back to stdout
// with ANSI colors: cyan for normal messages, bold red for urgent ones.
func NewCLINotifier(log *logger.Logger, info, urgent LineFunc) *CLINotifier {
	if info == nil {
		info = func(text string) { fmt.Println(cyan + text + reset) }
	}
	if urgent == nil {
		urgent = func(text string) { fmt.Println(red + bold + text + reset) }
	}
	return &CLINotifier{log: log, info: info, urgent: urgent}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.info(infoMarker + message)
	return nil
}

// NotifyUrgent prints an urgent notification.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.urgent(urgentMarker + message)
	return nil
}

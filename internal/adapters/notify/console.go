package notify

import (
	"context"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/jsamuelsen/quotegen/internal/ports"
)

// Console writes each notification as one colored line.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[ports.Level]*color.Color
}

// NewConsole writes to w. Color is disabled automatically when w is not a
// terminal (see color.NoColor).
func NewConsole(w io.Writer) *Console {
	return &Console{
		w: w,
		styles: map[ports.Level]*color.Color{
			ports.LevelInfo:    color.New(color.FgCyan),
			ports.LevelSuccess: color.New(color.FgGreen),
			ports.LevelWarning: color.New(color.FgYellow),
			ports.LevelError:   color.New(color.FgRed, color.Bold),
		},
	}
}

// Notify implements ports.Notifier.
func (c *Console) Notify(_ context.Context, n ports.Notification) {
	style, ok := c.styles[n.Level]
	if !ok {
		style = c.styles[ports.LevelInfo]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = style.Fprintln(c.w, n.Message)
}

// Multi fans a notification out to every non-nil notifier in order.
type Multi []ports.Notifier

// Notify implements ports.Notifier.
func (m Multi) Notify(ctx context.Context, n ports.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}

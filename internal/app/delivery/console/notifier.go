package console

import (
	"fmt"
	"io"
	"pilates-vision-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

type palette struct {
	success string
	failure string
	reset   string
}

var palettes = map[string]palette{
	constvars.ThemeLight: {success: "\x1b[32m", failure: "\x1b[31m", reset: "\x1b[0m"},
	constvars.ThemeDark:  {success: "\x1b[92m", failure: "\x1b[91m", reset: "\x1b[0m"},
}

// ToastNotifier prints toasts in the theme's colors and records them in the
// console log.
type ToastNotifier struct {
	Log   *logrus.Logger
	Out   io.Writer
	Theme string
}

func NewToastNotifier(out io.Writer, theme string, logger *logrus.Logger) *ToastNotifier {
	return &ToastNotifier{Log: logger, Out: out, Theme: theme}
}

func (n *ToastNotifier) Success(message string) {
	colors := n.palette()
	fmt.Fprintf(n.Out, "%s✔ %s%s\n", colors.success, message, colors.reset)
	n.Log.WithField(constvars.LoggingToastKey, message).Debug("toast success")
}

func (n *ToastNotifier) Error(message string) {
	colors := n.palette()
	fmt.Fprintf(n.Out, "%s✖ %s%s\n", colors.failure, message, colors.reset)
	n.Log.WithField(constvars.LoggingToastKey, message).Debug("toast error")
}

func (n *ToastNotifier) palette() palette {
	if colors, ok := palettes[n.Theme]; ok {
		return colors
	}
	return palettes[constvars.ThemeLight]
}

package app

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the component-tagged logger every subsystem receives.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger writes structured lines through charmbracelet/log.
type CharmLogger struct{ l *log.Logger }

// NewCharmLogger logs to w; debug enables Debugf output such as the
// framebuffer redraw and re-blit messages.
func NewCharmLogger(w io.Writer, debug bool) CharmLogger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pascalviz",
		Level:           log.InfoLevel,
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return CharmLogger{l: l}
}

func (c CharmLogger) Debugf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Debugf(format, args...)
}

func (c CharmLogger) Infof(component string, format string, args ...interface{}) {
	c.l.With("component", component).Infof(format, args...)
}

func (c CharmLogger) Errorf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Errorf(format, args...)
}

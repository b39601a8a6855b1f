//go:build !linux

package system

import "context"

// WatchExitKeys is unavailable outside Linux; the display ends with the
// context (Ctrl-C).
func WatchExitKeys(ctx context.Context, l logger, onExit func()) {
	l.Infof("input", "exit keys unsupported on this platform")
}

//go:build !linux

package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// AcquireConsole is a no-op outside Linux.
func AcquireConsole(l logger) (restore func()) {
	return func() {}
}

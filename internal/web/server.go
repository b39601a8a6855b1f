package web

import "context"

// Server is the API surface the app runs next to a display sink. Start
// must not block; Stop is safe to call more than once.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

var (
	_ Server = (*HTTPServer)(nil)
	_ Server = (*NoopServer)(nil)
)

// NoopServer stands in when a command shows the triangle without serving it.
type NoopServer struct{}

func (*NoopServer) Start(context.Context) error { return nil }
func (*NoopServer) Stop() error                 { return nil }

//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// WatchExitKeys watches evdev devices under /dev/input/event* and calls
// onExit once when F4, Escape or Q is pressed. It is best-effort: without
// readable input devices it logs and returns.
func WatchExitKeys(ctx context.Context, l logger, onExit func()) {
	if onExit == nil {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		l.Infof("input", "no evdev devices found, exit keys disabled")
		return
	}

	var once sync.Once
	for _, path := range paths {
		go func() {
			fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
			if err != nil {
				return
			}
			f := os.NewFile(uintptr(fd), path)
			defer f.Close()

			buf := make([]byte, 64*eventSize)
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
				if _, err := unix.Poll(pollFds, 250); err != nil {
					if err == unix.EINTR {
						continue
					}
					return
				}
				if pollFds[0].Revents&unix.POLLIN == 0 {
					continue
				}

				n, err := unix.Read(fd, buf)
				if err != nil {
					if err == unix.EAGAIN || err == unix.EINTR {
						continue
					}
					return
				}
				if name, ok := findExitKey(buf[:n], tvSize, eventSize); ok {
					once.Do(func() {
						l.Infof("input", "%s pressed: exiting", name)
						onExit()
					})
					return
				}
			}
		}()
	}
}

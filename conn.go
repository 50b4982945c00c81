package journal

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// The daemon's well-known endpoint. A variable rather than a constant only
// so the package tests can point the sender at a throwaway socket.
var socketPath = "/run/systemd/journal/socket"

// Conn is the datagram transport to the journal daemon. One Conn is shared
// by the whole process: every goroutine, and any child that inherits the
// process image. The descriptor is close-on-exec and is never closed by
// this package; process teardown reclaims it.
type Conn struct {
	fd   int
	addr *unix.SockaddrUnix
}

var shared atomic.Pointer[Conn]

// acquire returns the process-wide Conn, creating it on first use. Creation
// is racy on purpose: no lock is held across the socket syscall, so
// concurrent first callers may each create a descriptor, but only one is
// ever published; losers close theirs and loop back to the fast path to
// pick up the winner's.
func acquire() (*Conn, error) {
	for {
		if c := shared.Load(); c != nil {
			return c, nil
		}

		c, err := dial()
		if err != nil {
			return nil, err
		}

		if shared.CompareAndSwap(nil, c) {
			return c, nil
		}

		// lost the publish race
		unix.Close(c.fd)
	}
}

func dial() (*Conn, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, &osError{kind: ErrTransportUnavailable, op: "socket", err: err}
	}
	return &Conn{fd: fd, addr: &unix.SockaddrUnix{Name: socketPath}}, nil
}

// sendRecord transmits the segment list as one datagram in a single
// gather-write syscall. MSG_NOSIGNAL keeps a vanished receiver from raising
// SIGPIPE; the failure comes back as an error instead.
func (c *Conn) sendRecord(segs [][]byte) error {
	if _, err := unix.SendmsgBuffers(c.fd, segs, nil, c.addr, unix.MSG_NOSIGNAL); err != nil {
		return &osError{kind: ErrSendFailed, op: "sendmsg", err: err}
	}
	return nil
}

// Enabled reports whether the journal daemon's socket exists, so programs
// can decide up front to log somewhere else. A true result is not a
// delivery guarantee; datagrams remain fire-and-forget.
func Enabled() bool {
	var st unix.Stat_t
	if err := unix.Stat(socketPath, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFSOCK
}

package journal

import "github.com/pkg/errors"

// Error kinds returned by this package. Callers can test for them with
// errors.Is; the underlying OS error, when there is one, stays reachable
// through errors.Unwrap and errors.As.
var (
	// ErrInvalidArgument indicates a malformed record: an empty field
	// sequence, a field with no '=' separator, or a newline inside a
	// field name.
	ErrInvalidArgument = errors.New("journal: invalid argument")

	// ErrTransportUnavailable indicates the datagram socket could not be
	// created.
	ErrTransportUnavailable = errors.New("journal: transport unavailable")

	// ErrSendFailed indicates the OS rejected the datagram. Acceptance by
	// the OS is not a receipt from the daemon, and rejections are never
	// retried.
	ErrSendFailed = errors.New("journal: send failed")
)

// osError couples one of the error kinds above with the OS error that
// produced it.
type osError struct {
	kind error
	op   string
	err  error
}

func (e *osError) Error() string {
	return e.kind.Error() + ": " + e.op + ": " + e.err.Error()
}

func (e *osError) Is(target error) bool { return target == e.kind }

func (e *osError) Unwrap() error { return e.err }

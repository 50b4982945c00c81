/*
Package journal sends structured log records to the local systemd journal
daemon over its native protocol, including:

  - `journal.Send` / `journal.Print` - validate, frame, and transmit one
    record as a single datagram
  - `journal.Field` - one name=value unit of a record, with binary-safe
    values
  - `journal.Handler` - renders structured Go logs into journal fields
    (implements `slog.Handler`)

One datagram carries one record, so a record is delivered whole or not at
all. The socket descriptor behind the package is created once per process
and shared by every goroutine and every forked child; first-use races are
resolved by a single atomic publish, never a lock.

Values are opaque bytes. A value with no embedded newline is framed as
"name=value\n"; a value containing newlines is framed with an explicit
64-bit little-endian length so the daemon can re-parse it unambiguously.

Delivery is fire-and-forget: a nil error means the OS accepted the
datagram, not that the daemon received or stored it, and nothing is ever
retried.

	if err := journal.Print("checkpoint %d reached", n); err != nil {
		// the record was not sent
	}
*/
package journal

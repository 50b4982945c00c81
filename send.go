package journal

// Send transmits one record, an ordered sequence of fields, to the journal
// daemon as a single datagram. Field order is preserved and duplicate names
// pass through untouched. The record is delivered whole or not at all: any
// invalid field fails the whole call before anything is written.
//
// A nil return means the OS accepted the datagram for delivery, nothing
// more. There are no retries.
func Send(fields ...Field) error {
	segs, err := encodeRecord(fields)
	if err != nil {
		return err
	}

	c, err := acquire()
	if err != nil {
		return err
	}

	return c.sendRecord(segs)
}

// Print formats a message and sends it as a record holding a single MESSAGE
// field.
func Print(format string, args ...any) error {
	return Send(Fieldf("MESSAGE", format, args...))
}

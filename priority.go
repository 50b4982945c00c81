package journal

import "strconv"

// Priority is a syslog-compatible severity, carried in a record's PRIORITY
// field. The journal daemon uses it for filtering and display.
type Priority int

const (
	PriEmerg Priority = iota
	PriAlert
	PriCrit
	PriErr
	PriWarning
	PriNotice
	PriInfo
	PriDebug
)

// Field returns the PRIORITY field for p.
func (p Priority) Field() Field {
	return NewField("PRIORITY", []byte(strconv.Itoa(int(p))))
}

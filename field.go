package journal

import (
	"bytes"
	"fmt"
)

// Field is one name=value unit of a journal record. The bytes before the
// first '=' are the field name; everything after it is the value. The value
// is an opaque byte sequence and may contain newlines; the name must not.
// An empty name ("=value") is accepted: what names mean is the daemon's
// business, not this library's.
type Field []byte

// NewField builds a Field from a name and a raw value.
func NewField(name string, value []byte) Field {
	f := make(Field, 0, len(name)+1+len(value))
	f = append(f, name...)
	f = append(f, '=')
	return append(f, value...)
}

// Fieldf builds a Field whose value is the formatted text.
func Fieldf(name, format string, args ...any) Field {
	f := make(Field, 0, len(name)+1+len(format))
	f = append(f, name...)
	f = append(f, '=')
	return fmt.Appendf(f, format, args...)
}

// Name returns the bytes before the first '=', or the whole buffer when the
// separator is missing.
func (f Field) Name() string {
	if eq := bytes.IndexByte(f, '='); eq >= 0 {
		return string(f[:eq])
	}
	return string(f)
}

// Value returns the bytes after the first '=', or nil when the separator is
// missing.
func (f Field) Value() []byte {
	if eq := bytes.IndexByte(f, '='); eq >= 0 {
		return f[eq+1:]
	}
	return nil
}

package journal

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// The daemon reconstructs field boundaries by scanning for newlines: a
// simple field arrives as "name=value\n", and a field whose value itself
// contains newlines arrives as the name, a newline, the value length as a
// 64-bit little-endian integer, the raw value bytes, and a closing newline.
//
//	ref: https://systemd.io/JOURNAL_NATIVE_PROTOCOL/

var newline = []byte{'\n'}

// encodeRecord validates fields and lays out the datagram payload as an
// ordered list of byte-range segments. Field bytes are referenced, never
// copied; the only bytes materialized here are the 8-byte length words, one
// per binary-valued field.
func encodeRecord(fields []Field) ([][]byte, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty record")
	}

	// worst case is 5 segments per field
	segs := make([][]byte, 0, len(fields)*5)
	sizes := make([][8]byte, len(fields))

	for i, f := range fields {
		eq := bytes.IndexByte(f, '=')
		if eq < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "field %d has no '=' separator", i)
		}

		switch nl := bytes.IndexByte(f, '\n'); {
		case nl < 0:
			// no newline anywhere, so ship the buffer verbatim
			segs = append(segs, f)
		case nl < eq:
			return nil, errors.Wrapf(ErrInvalidArgument, "field %d has a newline in its name", i)
		default:
			// the value embeds a newline; switch to the
			// length-prefixed frame
			value := f[eq+1:]
			binary.LittleEndian.PutUint64(sizes[i][:], uint64(len(value)))
			segs = append(segs, f[:eq], newline, sizes[i][:], value)
		}
		segs = append(segs, newline)
	}

	return segs, nil
}

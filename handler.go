package journal

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// Handler is an adapter that renders Go structured logs into journal
// Fields, without building intermediate maps, and hands each record to a
// Sink, by default the process-wide journal socket.
//
//	// Example of basic usage
//	logger := slog.New(journal.NewHandler(nil))
//	slog.SetDefault(logger)
//
//	slog.Info("unrecognized user", "user_id", userID)
//
// The record timestamp is not sent; the daemon stamps records on receipt.
type Handler struct {
	*HandlerOptions
	sink   Sink
	prefix string  // joined group keys, e.g. "REQ_"
	fields []Field // fields pre-rendered by WithAttrs
}

// Sink interface defines where rendered records go. It decouples the
// Handler from the transport, so alternate destinations (or test captures)
// can stand in for the journal daemon.
type Sink interface {
	Send(fields ...Field) error
}

// journalSink delivers records to the shared journal socket.
type journalSink struct{}

func (journalSink) Send(fields ...Field) error { return Send(fields...) }

// NewHandler returns a Handler that sends records to the journal daemon.
func NewHandler(opts *HandlerOptions) *Handler {
	return NewHandlerCustom(journalSink{}, opts)
}

// NewHandlerCustom creates a Handler with a caller-supplied Sink.
func NewHandlerCustom(sink Sink, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = DefaultHandlerOptions()
	} else {
		opts.resolve()
	}

	return &Handler{
		HandlerOptions: opts,
		sink:           sink,
	}
}

// Enabled reports whether the handler handles records at the given level.
// The handler ignores records whose level is lower. It is called early,
// before any arguments are processed, to save effort if the log event
// should be discarded.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level.Level()
}

// priority maps slog levels onto syslog severities; levels between the
// named ones take the severity of the floor they clear.
func priority(level slog.Level) Priority {
	switch {
	case level >= slog.LevelError:
		return PriErr
	case level >= slog.LevelWarn:
		return PriWarning
	case level >= slog.LevelInfo:
		return PriInfo
	default:
		return PriDebug
	}
}

// Handle renders the Record into journal Fields and sends it. It will only
// be called when Enabled returns true.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]Field, 0, len(h.fields)+r.NumAttrs()+5)

	fields = append(fields, NewField("MESSAGE", []byte(r.Message)))
	fields = append(fields, priority(r.Level).Field())

	// rule: ignore source if there is no program counter
	if h.AddSource && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		fields = append(fields,
			Fieldf("CODE_FILE", "%s", f.File),
			Fieldf("CODE_LINE", "%d", f.Line),
			Fieldf("CODE_FUNC", "%s", f.Function),
		)
	}

	// attrs accumulated by WithAttrs were rendered once, up front
	fields = append(fields, h.fields...)

	r.Attrs(func(attr slog.Attr) bool {
		fields = h.appendAttr(fields, h.prefix, attr)
		return true // continue iterating
	})

	h.debug("sending record with %d fields", len(fields))

	return h.sink.Send(fields...)
}

func (h *Handler) appendAttr(fields []Field, prefix string, attr slog.Attr) []Field {
	// rule: resolve first, then ignore if empty
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()

		// rule: ignore empty groups entirely
		if len(group) == 0 {
			return fields
		}

		// rule: inline the attrs of a group with an empty key
		p := prefix
		if len(attr.Key) > 0 {
			p = prefix + sanitizeKey(attr.Key) + "_"
		}
		for _, a := range group {
			fields = h.appendAttr(fields, p, a)
		}
		return fields
	}

	// rule: ignore non-group attrs with empty keys
	if len(attr.Key) == 0 {
		return fields
	}

	name := prefix + sanitizeKey(attr.Key)

	switch v := attr.Value; v.Kind() {
	case slog.KindString:
		return append(fields, NewField(name, []byte(v.String())))
	case slog.KindTime:
		return append(fields, NewField(name, []byte(v.Time().Format(h.TimeFormat))))
	case slog.KindAny:
		// raw bytes ride the length-prefixed frame untouched
		if b, ok := v.Any().([]byte); ok {
			return append(fields, NewField(name, b))
		}
		return append(fields, Fieldf(name, "%+v", v.Any()))
	default:
		return append(fields, NewField(name, []byte(v.String())))
	}
}

// WithAttrs returns a new Handler whose records carry both the receiver's
// attributes and the arguments. The attrs are rendered into Fields exactly
// once, here, no matter how many records reuse them.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// rule: skip if no attrs
	if len(attrs) == 0 {
		return h
	}

	h2 := h.clone()
	for _, a := range attrs {
		h2.fields = h.appendAttr(h2.fields, h2.prefix, a)
	}

	// if every attr was skipped, don't create a new handler
	if len(h2.fields) == len(h.fields) {
		return h
	}

	return h2
}

// WithGroup returns a new Handler that qualifies the names of all later
// attrs with the group key. The journal's field namespace is flat, so
// nesting becomes a name prefix:
//
//	logger.WithGroup("req").Info("handled", "method", "GET")
//
// produces the field REQ_METHOD=GET. If the name is empty, WithGroup
// returns the receiver.
func (h *Handler) WithGroup(name string) slog.Handler {
	// rule: ignore if name is empty (true for any attr)
	if len(name) == 0 {
		return h
	}

	h2 := h.clone()
	h2.prefix = h.prefix + sanitizeKey(name) + "_"
	return h2
}

// clone creates a copy of the Handler that can be independently modified
// without affecting the parent it derives from; the pre-rendered fields are
// the only shared mutable state, so they get their own copy.
func (h *Handler) clone() *Handler {
	h2 := *h
	h2.fields = append(h.fields[:0:0], h.fields...)
	return &h2
}

// sanitizeKey rewrites an attr key into the journal field-name alphabet:
// uppercase letters, digits, and underscores. Anything else becomes an
// underscore, which also keeps keys from smuggling newlines into a field
// name. Name semantics stay the daemon's business; this only keeps the
// framing parseable.
func sanitizeKey(k string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, k)
}

func (h *Handler) debug(format string, args ...any) {
	if !h.Verbose {
		return
	}
	InternalLogger().Printf(format, args...)
}

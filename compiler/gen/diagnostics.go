package gen

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Warner receives non-fatal generation warnings. The args follow the
// key/value convention of log/slog, so a *slog.Logger is a Warner.
type Warner interface {
	Warn(msg string, args ...any)
}

// WarnerFunc adapts a function to the Warner interface.
type WarnerFunc func(msg string, args ...any)

// Warn calls f(msg, args...).
func (f WarnerFunc) Warn(msg string, args ...any) { f(msg, args...) }

// Discard is a Warner that drops every warning.
var Discard Warner = WarnerFunc(func(string, ...any) {})

var _ Warner = (*slog.Logger)(nil)

// Warning is a single recorded warning.
type Warning struct {
	Message string
	Args    []any
}

// Attr returns the value recorded for key, or nil.
func (w Warning) Attr(key string) any {
	for i := 0; i+1 < len(w.Args); i += 2 {
		if k, ok := w.Args[i].(string); ok && k == key {
			return w.Args[i+1]
		}
	}
	return nil
}

// String formats the warning as "message key=value ...".
func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Message)
	for i := 0; i < len(w.Args); i += 2 {
		b.WriteByte(' ')
		if i+1 == len(w.Args) {
			fmt.Fprintf(&b, "!BADKEY=%v", w.Args[i])
			break
		}
		fmt.Fprintf(&b, "%v=%v", w.Args[i], w.Args[i+1])
	}
	return b.String()
}

// Diagnostics collects warnings and optionally forwards them to another
// Warner. It is safe for concurrent use.
type Diagnostics struct {
	mu       sync.Mutex
	warnings []Warning
	next     Warner
}

// NewDiagnostics returns a collector forwarding to next. next may be nil.
func NewDiagnostics(next Warner) *Diagnostics {
	return &Diagnostics{next: next}
}

// Warn implements Warner.
func (d *Diagnostics) Warn(msg string, args ...any) {
	d.mu.Lock()
	d.warnings = append(d.warnings, Warning{Message: msg, Args: append([]any(nil), args...)})
	d.mu.Unlock()
	if d.next != nil {
		d.next.Warn(msg, args...)
	}
}

// Warnings returns a copy of the recorded warnings in report order.
func (d *Diagnostics) Warnings() []Warning {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Warning(nil), d.warnings...)
}

// Len returns the number of recorded warnings.
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.warnings)
}

// Reset drops the recorded warnings.
func (d *Diagnostics) Reset() {
	d.mu.Lock()
	d.warnings = nil
	d.mu.Unlock()
}

// Err returns a ValidationError summarizing the warnings, or nil if there
// are none.
func (d *Diagnostics) Err() error {
	ws := d.Warnings()
	if len(ws) == 0 {
		return nil
	}
	msgs := make([]string, len(ws))
	for i, w := range ws {
		msgs[i] = w.String()
	}
	return &ValidationError{
		Value:   len(ws),
		Message: fmt.Sprintf("%d warning(s): %s", len(ws), strings.Join(msgs, "; ")),
	}
}

package tabtalk

import (
	"fmt"
	"io"
)

// Notifier delivers short announcements to the operator. Notify is
// best-effort by contract: implementations must not surface delivery
// failures, and a failed delivery must never change program behavior.
type Notifier interface {
	Notify(text string)
}

// Ensure notifiers implement Notifier at compile time.
var (
	_ Notifier = (*WriterNotifier)(nil)
	_ Notifier = (MultiNotifier)(nil)
)

// WriterNotifier prints announcements to an io.Writer, one per line.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes text followed by a newline. Write errors are discarded.
func (n *WriterNotifier) Notify(text string) {
	_, _ = fmt.Fprintln(n.w, text)
}

// MultiNotifier fans an announcement out to several notifiers in order.
type MultiNotifier []Notifier

// Notify delivers text to every notifier.
func (m MultiNotifier) Notify(text string) {
	for _, n := range m {
		n.Notify(text)
	}
}

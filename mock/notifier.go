package mock

import "github.com/pkoscik/tabtalk"

var _ tabtalk.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of tabtalk.Notifier.
// If NotifyFn is nil, announcements are recorded in Notified instead.
type Notifier struct {
	NotifyFn func(text string)
	Notified []string
}

func (n *Notifier) Notify(text string) {
	if n.NotifyFn != nil {
		n.NotifyFn(text)
		return
	}
	n.Notified = append(n.Notified, text)
}

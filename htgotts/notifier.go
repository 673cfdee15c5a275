// Package htgotts provides a speech-synthesis implementation of
// tabtalk.Notifier backed by htgo-tts.
package htgotts

import (
	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"
	"github.com/hegedustibor/htgo-tts/voices"

	"github.com/pkoscik/tabtalk"
)

// Ensure Notifier implements tabtalk.Notifier at compile time.
var _ tabtalk.Notifier = (*Notifier)(nil)

// Notifier speaks announcements aloud. Delivery is best-effort per the
// Notifier contract: a headless machine, a missing audio player, or an
// unreachable synthesis backend must never disturb the session, so every
// failure in the speech pathway is swallowed.
type Notifier struct {
	speech *htgotts.Speech
}

// NewNotifier creates a Notifier that caches synthesized audio in cacheDir.
func NewNotifier(cacheDir string) *Notifier {
	return &Notifier{
		speech: &htgotts.Speech{
			Folder:   cacheDir,
			Language: voices.English,
			Handler:  &handlers.Native{},
		},
	}
}

// Notify speaks text aloud, blocking until playback finishes.
// Errors and panics from the speech engine are discarded.
func (n *Notifier) Notify(text string) {
	defer func() {
		_ = recover()
	}()
	_ = n.speech.Speak(text)
}

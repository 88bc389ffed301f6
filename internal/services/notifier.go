package services

import (
	"sync"
	"time"
)

// DefaultToastTTL matches the fixed display duration of the UI toast.
const DefaultToastTTL = 3 * time.Second

// Notifier holds the single current toast message with an auto-dismiss
// timer. Showing a new message cancels the pending dismissal of the
// previous one, so a stale timer can never clear a newer message.
type Notifier struct {
	mu    sync.Mutex
	msg   string
	gen   uint64
	timer *time.Timer
	ttl   time.Duration
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Notifier{ttl: ttl}
}

// Show replaces the current message and re-arms the dismissal timer.
// Each Show advances the generation; a dismissal only applies to its own
// generation, because Stop cannot help once a callback has fired and is
// waiting on the mutex.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	n.msg = msg
	gen := n.gen
	n.timer = time.AfterFunc(n.ttl, func() { n.dismiss(gen) })
}

func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return
	}
	n.msg = ""
	n.timer = nil
}

// Current returns the active message, or "" after dismissal.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg
}

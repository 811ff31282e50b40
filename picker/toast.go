package picker

import "time"

// DefaultToastDuration is how long a notification stays on screen.
const DefaultToastDuration = 2 * time.Second

const defaultMaxToasts = 4

// Toast is a short-lived notification.
type Toast struct {
	Title       string
	Description string
	Expires     time.Time
}

// Toasts is a bounded, oldest-first queue of notifications.
type Toasts struct {
	max   int
	items []Toast
}

func NewToasts(max int) *Toasts {
	if max < 1 {
		max = 1
	}
	return &Toasts{max: max}
}

// Push appends t, evicting the oldest toast when the queue is full.
func (q *Toasts) Push(t Toast) {
	if len(q.items) == q.max {
		q.items = q.items[1:]
	}
	q.items = append(q.items, t)
}

// Active returns the toasts that have not expired at now.
func (q *Toasts) Active(now time.Time) []Toast {
	var out []Toast
	for _, t := range q.items {
		if now.Before(t.Expires) {
			out = append(out, t)
		}
	}
	return out
}

// Prune drops expired toasts and returns how many remain.
func (q *Toasts) Prune(now time.Time) int {
	kept := q.items[:0]
	for _, t := range q.items {
		if now.Before(t.Expires) {
			kept = append(kept, t)
		}
	}
	q.items = kept
	return len(kept)
}

func (q *Toasts) Len() int { return len(q.items) }

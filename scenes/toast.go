package scenes

import cfg "github.com/automoto/airfighter/config"

// toasts is a short FIFO of banner messages. The head counts down in real
// time; when it expires the next one shows.
type toasts struct {
	queue []string
	left  float64
}

func (t *toasts) push(msg string) {
	if len(t.queue) == 0 {
		t.left = cfg.Toast.Duration
	}
	t.queue = append(t.queue, msg)
	if n := len(t.queue); n > cfg.Toast.MaxQueued {
		// Drop the oldest waiting message, never the one on screen.
		t.queue = append(t.queue[:1], t.queue[n-cfg.Toast.MaxQueued+1:]...)
	}
}

func (t *toasts) update(dt float64) {
	if len(t.queue) == 0 {
		return
	}
	t.left -= dt
	if t.left > 0 {
		return
	}
	t.queue = t.queue[1:]
	t.left = cfg.Toast.Duration
}

func (t *toasts) current() (string, bool) {
	if len(t.queue) == 0 {
		return "", false
	}
	return t.queue[0], true
}

func (t *toasts) clear() {
	t.queue = t.queue[:0]
}

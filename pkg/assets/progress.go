package assets

import (
	"github.com/sasha-s/go-deadlock"
)

// Progress counts loaded items
type Progress struct {
	Loaded int
	Total  int
}

// Percent returns the completion percentage in [0, 100]
func (p Progress) Percent() float32 {
	if p.Total <= 0 {
		return 0
	}
	pct := float32(p.Loaded) / float32(p.Total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Tracker is the load state shared between the loader goroutine and the
// render thread
type Tracker struct {
	mu       deadlock.Mutex
	progress Progress
	done     bool
	err      error
}

func (t *Tracker) setTotal(total int) {
	t.mu.Lock()
	t.progress = Progress{Total: total}
	t.done = false
	t.err = nil
	t.mu.Unlock()
}

func (t *Tracker) advance() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.progress.Loaded++
	return t.progress
}

func (t *Tracker) finish(err error) {
	t.mu.Lock()
	t.done = true
	t.err = err
	t.mu.Unlock()
}

// Progress returns the current progress
func (t *Tracker) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Done reports whether loading finished, and the error if it failed
func (t *Tracker) Done() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done, t.err
}

package pointer

import "sync"

// Latest is a last-writer-wins sample holder. A tracker goroutine calls
// Publish as observations arrive; the tick loop calls Poll once per frame
// and always sees the most recent value. Intermediate samples are
// intentionally dropped - the simulation only cares about "now".
type Latest struct {
	mu       sync.Mutex
	sample   Sample
	detected bool
}

// NewLatest creates an empty holder with no target detected.
func NewLatest() *Latest {
	return &Latest{}
}

// Publish stores a new observation.
func (l *Latest) Publish(s Sample) {
	l.mu.Lock()
	l.sample = s
	l.detected = true
	l.mu.Unlock()
}

// Lost marks the target as lost. Subsequent polls report no detection
// until the next Publish.
func (l *Latest) Lost() {
	l.mu.Lock()
	l.detected = false
	l.mu.Unlock()
}

// Poll implements Source.
func (l *Latest) Poll() (Sample, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sample, l.detected
}

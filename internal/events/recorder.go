package events

import (
	"sync"

	"storeadmin/internal/models"
)

// Recorder keeps the most recent activities in memory for the dashboard
// feed, newest first.
type Recorder struct {
	mu       sync.Mutex
	capacity int
	entries  []models.Activity
}

// NewRecorder creates a Recorder holding at most capacity entries.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 20
	}
	return &Recorder{capacity: capacity}
}

func (r *Recorder) Record(activity models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]models.Activity{activity}, r.entries...)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
}

// Recent returns a copy of the recorded activities, newest first.
func (r *Recorder) Recent() []models.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Activity, len(r.entries))
	copy(out, r.entries)
	return out
}

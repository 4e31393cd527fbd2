package events

import "storeadmin/internal/models"

// Sink receives activity events emitted by successful store actions.
// Implementations must be safe for concurrent use.
type Sink interface {
	Record(activity models.Activity)
}

// Fanout forwards each activity to every sink in order.
type Fanout []Sink

func (f Fanout) Record(activity models.Activity) {
	for _, s := range f {
		s.Record(activity)
	}
}

// Discard drops all activities. Used where no feed is wired.
type Discard struct{}

func (Discard) Record(models.Activity) {}

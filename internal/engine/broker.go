package engine

import (
	"sync"

	"squidstatControl/models"
)

// StreamPoint is one live item published to measurement subscribers.
// Exactly one of AC, DC, Element is set, or Done is true to mark the end of
// the experiment's stream.
type StreamPoint struct {
	ExperimentID int64
	AC           *models.ACDataPoint
	DC           *models.DCDataPoint
	Element      *models.ElementEvent
	Done         bool
}

// Broker fans live measurement data out to stream subscribers, keyed by
// experiment ID. Subscribers that fall behind lose points rather than
// stalling the acquisition path; the persisted record stays complete.
type Broker struct {
	mu   sync.Mutex
	subs map[int64]map[int]chan StreamPoint
	next int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int64]map[int]chan StreamPoint)}
}

// Subscribe registers for live points of one experiment. The returned cancel
// func must be called when done; it closes the channel.
func (b *Broker) Subscribe(experimentID int64, buffer int) (<-chan StreamPoint, func()) {
	if buffer <= 0 {
		buffer = 256
	}
	ch := make(chan StreamPoint, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	if b.subs[experimentID] == nil {
		b.subs[experimentID] = make(map[int]chan StreamPoint)
	}
	b.subs[experimentID][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if m, ok := b.subs[experimentID]; ok {
			if c, ok := m[id]; ok {
				delete(m, id)
				close(c)
			}
			if len(m) == 0 {
				delete(b.subs, experimentID)
			}
		}
	}
	return ch, cancel
}

// Publish delivers a point to all subscribers of its experiment.
func (b *Broker) Publish(p StreamPoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[p.ExperimentID] {
		select {
		case ch <- p:
		default:
			// Slow subscriber: drop the point for this listener only.
		}
	}
}

// Finish publishes the Done marker and drops all subscriptions for the
// experiment. Subscriber channels are closed.
func (b *Broker) Finish(experimentID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[experimentID] {
		select {
		case ch <- StreamPoint{ExperimentID: experimentID, Done: true}:
		default:
		}
		close(ch)
	}
	delete(b.subs, experimentID)
}

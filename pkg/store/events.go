package store

import "context"

// EventType describes a change in the store.
type EventType int

const (
	// EventStateChanged is sent when the store starts or finishes loading
	// or searching.
	EventStateChanged EventType = iota

	// EventLoaded is sent when the list has been replaced by a load or a
	// search.
	EventLoaded

	// EventFailed is sent when a load or search fails.
	EventFailed
)

func (t EventType) String() string {
	switch t {
	case EventStateChanged:
		return "state-changed"
	case EventLoaded:
		return "loaded"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers.
type Event struct {
	Type  EventType
	State State
	Count int
	Query string
	Err   error
}

const subscriberBuffer = 64

// Subscribe streams store events until ctx is cancelled, then closes the
// channel. A subscriber that falls behind misses events rather than stalling
// the store; read Snapshot for the current state.
func (s *Store) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()
	return ch
}

func (s *Store) emit(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

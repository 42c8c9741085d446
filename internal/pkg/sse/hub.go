package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	WorkerID string
	Event    string
	Data     interface{}
}

// Hub manages SSE subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for a worker and returns the event
// channel and cleanup function
func (h *Hub) Subscribe(workerID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[workerID] == nil {
		h.subscribers[workerID] = make(map[chan Event]struct{})
	}
	h.subscribers[workerID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[workerID], ch)
		close(ch)
		if len(h.subscribers[workerID]) == 0 {
			delete(h.subscribers, workerID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a specific worker
func (h *Hub) Publish(workerID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[workerID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a worker
func (h *Hub) SubscriberCount(workerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[workerID]; ok {
		return len(subs)
	}
	return 0
}

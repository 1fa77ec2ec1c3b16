package events

import (
	"sync"

	"github.com/ethereumspace/ic-eth-recover/core/types"
)

// Recovered is published after a signature was successfully recovered.
type Recovered struct {
	Address types.Address
	Digest  types.Hash
	V       uint64
}

type EventBus struct {
	mu   sync.RWMutex
	subs []chan Recovered
}

func NewEventBus() *EventBus {
	return &EventBus{
		subs: make([]chan Recovered, 0),
	}
}

// SubscribeRecovered returns a channel receiving every Recovered event
// published after the call. Slow subscribers miss events.
func (b *EventBus) SubscribeRecovered() <-chan Recovered {
	ch := make(chan Recovered, 64)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	return ch
}

func (b *EventBus) PublishRecovered(ev Recovered) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		// non-blocking send
		select {
		case ch <- ev:
		default:
		}
	}
}

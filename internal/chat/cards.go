package chat

import (
	"sync/atomic"
	"time"
)

// CardIDGenerator hands out card IDs unique within this service instance.
// Seeded from the wall clock so IDs stay unique across restarts too, but
// strictly monotonic afterwards, so rapid batches cannot collide.
type CardIDGenerator struct {
	lastID atomic.Int64
}

func NewCardIDGenerator() *CardIDGenerator {
	gen := &CardIDGenerator{}
	gen.lastID.Store(time.Now().UnixMilli())
	return gen
}

func (g *CardIDGenerator) Next() int64 {
	return g.lastID.Add(1)
}

// NewCards wraps validated exercises into pending cards.
func NewCards(gen *CardIDGenerator, exercises []Exercise) []Card {
	cards := make([]Card, 0, len(exercises))
	for _, exercise := range exercises {
		cards = append(cards, Card{
			Exercise: exercise,
			ID:       gen.Next(),
			State:    CardStatePending,
		})
	}
	return cards
}

package game

import "fmt"

// ResourcePool tracks the shared resource supply. The total is fixed for the
// whole run; the remaining amount is reset by Replenish at the start of every
// round and drawn down by Allocate.
type ResourcePool struct {
	total     float64
	remaining float64
}

// NewResourcePool creates a pool with a fixed positive total.
func NewResourcePool(total float64) (*ResourcePool, error) {
	if total <= 0 {
		return nil, fmt.Errorf("pool total %v must be positive", total)
	}
	return &ResourcePool{total: total, remaining: total}, nil
}

// Total returns the fixed per-round supply.
func (p *ResourcePool) Total() float64 { return p.total }

// Remaining returns the resources still available this round.
func (p *ResourcePool) Remaining() float64 { return p.remaining }

// Replenish resets the remaining supply to the full total. Idempotent.
func (p *ResourcePool) Replenish() {
	p.remaining = p.total
}

// Allocate grants resources against the given bid map. When total bids fit
// within the remaining supply every agent receives exactly its bid; otherwise
// bids are rationed proportionally so the grants sum to the remaining supply.
// An all-zero bid map yields an all-zero allocation. The remaining supply is
// decremented by the sum actually granted.
func (p *ResourcePool) Allocate(bids map[string]float64) map[string]float64 {
	totalBids := 0.0
	for _, bid := range bids {
		totalBids += bid
	}

	allocation := make(map[string]float64, len(bids))
	switch {
	case totalBids == 0:
		// Nothing demanded: grant nothing rather than divide by zero.
		for name := range bids {
			allocation[name] = 0
		}
	case totalBids <= p.remaining:
		for name, bid := range bids {
			allocation[name] = bid
		}
	default:
		for name, bid := range bids {
			allocation[name] = bid / totalBids * p.remaining
		}
	}

	granted := 0.0
	for _, amount := range allocation {
		granted += amount
	}
	p.remaining -= granted

	return allocation
}

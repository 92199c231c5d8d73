package mutation

import "sync"

// poolPruneAt bounds the pool: once reached, idle gateways are dropped
// before a new one is added.
const poolPruneAt = 1024

// Pool hands out one Gateway per form key, typically the authenticated
// user id. The single-slot pending rejection then applies to the client
// that double-submitted, not to every client of the process.
type Pool[T any] struct {
	cfg GatewayConfig[T]

	mu       sync.Mutex
	gateways map[string]*Gateway[T]
}

// NewPool creates an empty gateway pool.
func NewPool[T any](cfg GatewayConfig[T]) *Pool[T] {
	return &Pool[T]{
		cfg:      cfg,
		gateways: make(map[string]*Gateway[T]),
	}
}

// Get returns the gateway for key, creating it on first use. The same key
// always observes the same pending slot.
func (p *Pool[T]) Get(key string) *Gateway[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	if g, ok := p.gateways[key]; ok {
		return g
	}
	if len(p.gateways) >= poolPruneAt {
		for k, g := range p.gateways {
			if !g.IsPending() {
				delete(p.gateways, k)
			}
		}
	}
	g := NewGateway(p.cfg)
	p.gateways[key] = g
	return g
}

package core

// SpawnPhase tells a spawn function why a slot is being (re)drawn.
type SpawnPhase uint8

const (
	// SpawnInitial fills a slot while the pool is being populated.
	SpawnInitial SpawnPhase = iota
	// SpawnRecycle redraws a slot whose particle just expired.
	SpawnRecycle
)

// Behavior describes how one kind of particle is simulated.
type Behavior[T any] struct {
	// Spawn redraws every randomized attribute of p.
	Spawn func(p *T, r Random, phase SpawnPhase)
	// Advance integrates kinematics and aging by dt seconds.
	Advance func(p *T, dt float32)
	// Expired reports whether p must be recycled.
	Expired func(p *T) bool
	// OnExpire, if set, observes the expired particle before it is reset.
	OnExpire func(p *T)
}

// Pool keeps a fixed number of particles alive, recycling expired ones in
// place. The slice length never changes after construction.
type Pool[T any] struct {
	behavior Behavior[T]
	rng      Random
	items    []T
	recycled int
}

// NewPool allocates a pool of n particles. Call Initialize before stepping.
func NewPool[T any](n int, rng Random, b Behavior[T]) *Pool[T] {
	if n < 0 {
		n = 0
	}
	return &Pool[T]{behavior: b, rng: rng, items: make([]T, n)}
}

// Initialize populates every slot with a freshly sampled particle.
func (p *Pool[T]) Initialize() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
		p.behavior.Spawn(&p.items[i], p.rng, SpawnInitial)
	}
	p.recycled = 0
}

// Step advances every particle by dt seconds and recycles the expired ones.
// It returns the number of slots recycled during this step.
func (p *Pool[T]) Step(dt float64) int {
	fdt := float32(dt)
	recycled := 0
	for i := range p.items {
		it := &p.items[i]
		if p.behavior.Advance != nil {
			p.behavior.Advance(it, fdt)
		}
		if p.behavior.Expired == nil || !p.behavior.Expired(it) {
			continue
		}
		if p.behavior.OnExpire != nil {
			p.behavior.OnExpire(it)
		}
		var zero T
		*it = zero
		p.behavior.Spawn(it, p.rng, SpawnRecycle)
		recycled++
	}
	p.recycled = recycled
	return recycled
}

// Particles exposes the backing slice. It reflects the state after the most
// recent Step; callers must not retain it across frames.
func (p *Pool[T]) Particles() []T { return p.items }

// Len returns the fixed pool size.
func (p *Pool[T]) Len() int { return len(p.items) }

// Recycled returns how many slots the most recent Step recycled.
func (p *Pool[T]) Recycled() int { return p.recycled }

package core

import "sort"

// Kind identifies one of the background animations.
type Kind string

const (
	// KindFlow is the starfield flowing toward the viewer.
	KindFlow Kind = "flow"
	// KindRain is falling rain with ground ripples and lightning.
	KindRain Kind = "rain"
	// KindFlowers is falling flower petals pushed by wind.
	KindFlowers Kind = "flowers"
	// KindWaves is ocean waves breaking into foam.
	KindWaves Kind = "waves"
)

// menuOrder is the order kinds are offered to the user.
var menuOrder = []Kind{KindFlow, KindRain, KindFlowers, KindWaves}

// Animation defines the minimal contract a background animation must implement.
type Animation interface {
	Name() string
	Kind() Kind
	// Initialize (re)populates every pool. It must be callable repeatedly.
	Initialize()
	// Step advances the simulation by dt seconds. dt is never negative.
	Step(dt float64)
}

// Factory constructs an Animation using an optional configuration map and the
// random source the animation must draw from.
type Factory func(cfg map[string]string, rng Random) Animation

var animations = map[Kind]Factory{}

// Register adds an animation factory under the provided kind.
func Register(kind Kind, f Factory) {
	if kind == "" || f == nil {
		return
	}
	animations[kind] = f
}

// Kinds lists the registered kinds in menu order. Kinds registered outside the
// built-in set follow in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(animations))
	seen := make(map[Kind]bool, len(menuOrder))
	for _, k := range menuOrder {
		seen[k] = true
		if _, ok := animations[k]; ok {
			kinds = append(kinds, k)
		}
	}
	var extra []Kind
	for k := range animations {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(kinds, extra...)
}

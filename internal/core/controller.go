package core

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when selecting a kind with no registered factory.
var ErrUnknownKind = errors.New("unknown animation kind")

// Controller owns the single active animation. Kind switches requested through
// Select, Next or Restart take effect at the start of the following Step, so a
// switch never lands in the middle of a frame.
type Controller struct {
	configs map[Kind]map[string]string
	rng     *RNG

	kind    Kind
	anim    Animation
	pending Kind
}

// NewController builds and initializes the animation registered under initial.
// configs supplies the optional per-kind configuration maps.
func NewController(initial Kind, configs map[Kind]map[string]string, seed int64) (*Controller, error) {
	c := &Controller{configs: configs, rng: NewRNG(seed)}
	if err := c.Select(initial); err != nil {
		return nil, err
	}
	c.apply()
	return c, nil
}

// Select queues kind to become active at the next Step.
func (c *Controller) Select(kind Kind) error {
	if _, ok := animations[kind]; !ok {
		return fmt.Errorf("select %q: %w", kind, ErrUnknownKind)
	}
	c.pending = kind
	return nil
}

// Next queues the kind following the active one in menu order.
func (c *Controller) Next() {
	kinds := Kinds()
	if len(kinds) == 0 {
		return
	}
	idx := 0
	for i, k := range kinds {
		if k == c.kind {
			idx = (i + 1) % len(kinds)
			break
		}
	}
	c.pending = kinds[idx]
}

// Restart queues a fresh build of the active kind.
func (c *Controller) Restart() {
	c.pending = c.kind
}

// Step applies any queued switch, then advances the active animation.
func (c *Controller) Step(dt float64) {
	c.apply()
	if c.anim != nil {
		c.anim.Step(dt)
	}
}

// Active returns the animation the renderer should read.
func (c *Controller) Active() Animation { return c.anim }

// Kind returns the active kind.
func (c *Controller) Kind() Kind { return c.kind }

// Pending reports whether a switch is queued for the next Step.
func (c *Controller) Pending() bool { return c.pending != "" }

func (c *Controller) apply() {
	if c.pending == "" {
		return
	}
	kind := c.pending
	c.pending = ""
	anim := animations[kind](c.configs[kind], NewRNG(c.rng.Int64()))
	anim.Initialize()
	c.kind = kind
	c.anim = anim
}

package rain

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"backdrop/internal/core"
)

// Phase is the lightning state machine phase.
type Phase uint8

const (
	// PhaseWaiting has no burst in progress.
	PhaseWaiting Phase = iota
	// PhaseBursting fires flashes until the burst count is spent.
	PhaseBursting
	// PhaseEmbers fades the last flash of a burst out slowly.
	PhaseEmbers
)

func (p Phase) String() string {
	switch p {
	case PhaseBursting:
		return "bursting"
	case PhaseEmbers:
		return "embers"
	default:
		return "waiting"
	}
}

// Lightning is a probabilistic burst-and-decay timer driving the flash
// intensity blended into the sky.
type Lightning struct {
	cfg LightningConfig
	rng core.Random

	now       float64
	next      float64
	burst     int
	remaining int
	alpha     float32
	phase     Phase
	flashes   int
	embers    *gween.Tween
}

// NewLightning constructs a timer. Call Reset before stepping.
func NewLightning(cfg LightningConfig, rng core.Random) *Lightning {
	return &Lightning{cfg: cfg, rng: rng}
}

// Reset restarts the clock and schedules the first pulse.
func (l *Lightning) Reset() {
	l.now = 0
	l.next = core.RandomRange(l.rng, l.cfg.MinInterval, l.cfg.MaxInterval)
	l.burst = 0
	l.remaining = 0
	l.alpha = 0
	l.phase = PhaseWaiting
	l.flashes = 0
	l.embers = nil
}

// Step advances the timer by dt seconds.
func (l *Lightning) Step(dt float64) {
	l.now += dt
	if l.now >= l.next {
		l.next = l.now + core.RandomRange(l.rng, l.cfg.MinInterval, l.cfg.MaxInterval)
		l.burst = int(math.Floor(core.RandomRange(l.rng, 1, l.cfg.MaxBurst)))
		if l.burst < 1 {
			l.burst = 1
		}
		l.remaining = l.burst
		l.phase = PhaseBursting
		l.embers = nil
	}

	switch l.phase {
	case PhaseBursting:
		l.alpha *= float32(math.Exp(-l.cfg.FastDecay * dt))
		if float64(l.alpha) < l.cfg.FlashThreshold && l.rng.Float64() < l.cfg.PeakProbability {
			l.alpha = float32(core.RandomRange(l.rng, l.cfg.MinFlashAlpha, 1))
			l.remaining--
			l.flashes++
			if l.remaining == 0 {
				l.phase = PhaseEmbers
				l.embers = gween.New(l.alpha, 0, float32(l.cfg.EmberDuration), ease.OutCubic)
			}
		}
	case PhaseEmbers:
		v, done := l.embers.Update(float32(dt))
		l.alpha = min(max(v, 0), 1)
		if done {
			l.alpha = 0
			l.phase = PhaseWaiting
			l.embers = nil
		}
	}
}

// Alpha returns the current flash intensity in [0, 1].
func (l *Lightning) Alpha() float32 { return l.alpha }

// Remaining returns the flashes left in the current burst.
func (l *Lightning) Remaining() int { return l.remaining }

// Burst returns the size of the current or last burst.
func (l *Lightning) Burst() int { return l.burst }

// Phase returns the state machine phase.
func (l *Lightning) Phase() Phase { return l.phase }

// Flashes counts the flashes fired since Reset.
func (l *Lightning) Flashes() int { return l.flashes }

// NextPulse returns the absolute clock time of the next scheduled pulse.
func (l *Lightning) NextPulse() float64 { return l.next }

package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"backdrop/internal/core"
)

// ErrInvalidTuning marks a tuning file whose structure cannot be used.
var ErrInvalidTuning = errors.New("invalid tuning")

// Config represents the command-line parameters for the application.
type Config struct {
	Anim   string
	Scale  int
	TPS    int
	Seed   int64
	Tuning string
	Width  int
	Height int
	// Set holds kind.key=value overrides applied over the tuning file.
	Set kvList
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Anim: string(core.KindFlow), Scale: 2, TPS: 60, Seed: 42, Width: 480, Height: 270}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Anim, "anim", c.Anim, "animation to start with (flow, rain, flowers, waves)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for animation builds")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "optional YAML file with per-animation settings")
	fs.IntVar(&c.Width, "width", c.Width, "render width in pixels before scaling")
	fs.IntVar(&c.Height, "height", c.Height, "render height in pixels before scaling")
	fs.Var(&c.Set, "set", "override in kind.key=value form (repeatable)")
}

// Normalize replaces non-positive sizes and rates with the defaults.
func (c *Config) Normalize() {
	d := NewConfig()
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
}

// Tuning maps each animation kind to the settings passed to its factory.
type Tuning map[core.Kind]map[string]string

// LoadTuning reads a YAML tuning file. An empty path yields no tuning.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes YAML of the form
//
//	rain:
//	  count: 1500
//	  drop_speed: 55
//
// Every top-level key must name a registered kind and every value must be a
// scalar.
func ParseTuning(data []byte) (Tuning, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	known := map[core.Kind]bool{}
	for _, k := range core.Kinds() {
		known[k] = true
	}

	out := make(Tuning, len(raw))
	for name, settings := range raw {
		kind := core.Kind(name)
		if !known[kind] {
			return nil, fmt.Errorf("kind %q: %w", name, core.ErrUnknownKind)
		}
		m := make(map[string]string, len(settings))
		for key, v := range settings {
			switch v.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%s.%s: value must be a scalar: %w", name, key, ErrInvalidTuning)
			case nil:
				continue
			}
			m[key] = fmt.Sprint(v)
		}
		out[kind] = m
	}
	return out, nil
}

// Apply merges kind.key=value overrides into t, allocating it when nil.
func (t Tuning) Apply(overrides []string) (Tuning, error) {
	if t == nil {
		t = Tuning{}
	}
	known := map[core.Kind]bool{}
	for _, k := range core.Kinds() {
		known[k] = true
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("override %q: want kind.key=value: %w", kv, ErrInvalidTuning)
		}
		name, key, ok := strings.Cut(strings.TrimSpace(parts[0]), ".")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: want kind.key=value: %w", kv, ErrInvalidTuning)
		}
		kind := core.Kind(name)
		if !known[kind] {
			return nil, fmt.Errorf("override %q: %w", kv, core.ErrUnknownKind)
		}
		if t[kind] == nil {
			t[kind] = map[string]string{}
		}
		t[kind][key] = strings.TrimSpace(parts[1])
	}
	return t, nil
}

// Keys returns the tuned kinds in sorted order.
func (t Tuning) Keys() []core.Kind {
	keys := make([]core.Kind, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Package signal generates deterministic forcing inputs for oscillator
// simulations: steps, impulses, ramps, sinusoidal sweeps of the
// support, and seeded noise.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-oscillator/dsp/core"
)

// Generator creates deterministic forcing signals from a shared
// simulation configuration.
type Generator struct {
	cfg  core.SimConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.SimOption) *Generator {
	return &Generator{
		cfg:  core.ApplySimOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with signal-specific
// options on top of the simulation config.
func NewGeneratorWithOptions(coreOpts []core.SimOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator's simulation configuration.
func (g *Generator) Config() core.SimConfig {
	return g.cfg
}

// Step generates a constant forcing of the given amplitude.
func (g *Generator) Step(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude
	}

	return out, nil
}

// Impulse generates a single-sample forcing of the given amplitude
// followed by zeros.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	out[0] = amplitude

	return out, nil
}

// Ramp generates a linearly increasing forcing with the given slope in
// units per second.
func (g *Generator) Ramp(slope float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}

	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("ramp sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	dt := 1 / g.cfg.SampleRate
	out := make([]float64, samples)
	for i := range out {
		out[i] = slope * dt * float64(i)
	}

	return out, nil
}

// Sine generates a sinusoidal support motion.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in
// [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

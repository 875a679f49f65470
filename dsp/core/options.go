package core

// SimConfig defines common simulation settings shared by signal
// generation and drivers.
type SimConfig struct {
	SampleRate float64 // samples per second
	Duration   float64 // simulated time span in seconds
}

// SimOption mutates a SimConfig.
type SimOption func(*SimConfig)

// DefaultSimConfig returns frame-rate defaults suitable for animation
// drivers: 60 Hz over 10 seconds.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		SampleRate: 60,
		Duration:   10,
	}
}

// WithSampleRate sets the simulation sample rate.
func WithSampleRate(sampleRate float64) SimOption {
	return func(cfg *SimConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the simulated time span in seconds.
func WithDuration(duration float64) SimOption {
	return func(cfg *SimConfig) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// ApplySimOptions applies zero or more options to the default config.
func ApplySimOptions(opts ...SimOption) SimConfig {
	cfg := DefaultSimConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// SamplePeriod returns 1/SampleRate, or 0 for a non-positive rate.
func (c SimConfig) SamplePeriod() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return 1 / c.SampleRate
}

// Samples returns the number of samples covering Duration at
// SampleRate, rounded down, never negative.
func (c SimConfig) Samples() int {
	n := int(c.SampleRate * c.Duration)
	if n < 0 {
		return 0
	}

	return n
}

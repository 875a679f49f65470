package oscillator

import "math"

// State contains the filter's output/input history for save/restore
// workflows.
type State struct {
	PrevOutput1 float64 // y[n−1]
	PrevOutput2 float64 // y[n−2]
	PrevInput   float64 // x[n−1]
}

// Filter is a second-order recursive oscillator simulator.
//
// The zero value is an uninitialized filter: ProcessSample fails with
// ErrNotInitialized until the first successful UpdateParameters call.
type Filter struct {
	mass         float64
	damping      float64
	stiffness    float64
	samplePeriod float64

	modal modal
	ready bool

	state State
}

// New returns an uninitialized Filter. Call UpdateParameters before
// processing samples.
func New() *Filter {
	return &Filter{}
}

// NewWithParameters returns a Filter that is immediately ready.
func NewWithParameters(damping, mass, stiffness, samplePeriod float64) (*Filter, error) {
	f := New()
	if err := f.UpdateParameters(damping, mass, stiffness, samplePeriod); err != nil {
		return nil, err
	}

	return f, nil
}

// UpdateParameters derives the modal parameters and recursion gains
// from the physical ones and stores the sample period.
//
// mass must be nonzero and samplePeriod positive; damping and
// stiffness may be any finite value (negative values yield a
// mathematically valid but growing response). On error the previous
// derived state is left untouched.
//
// The output/input history is deliberately preserved so parameters can
// change mid-stream without a displacement discontinuity; use Reset
// for a cold start.
func (f *Filter) UpdateParameters(damping, mass, stiffness, samplePeriod float64) error {
	if err := validateParameters(damping, mass, stiffness, samplePeriod); err != nil {
		return err
	}

	f.damping = damping
	f.mass = mass
	f.stiffness = stiffness
	f.samplePeriod = samplePeriod
	f.modal = deriveModal(damping, mass, stiffness, samplePeriod)
	f.ready = true

	return nil
}

// ProcessSample advances the simulation by one sample period with
// forcing input x and returns the mass displacement y.
//
// The decay and oscillation terms are recomputed from the current
// modal parameters on every call, so UpdateParameters may be
// interleaved freely between samples.
func (f *Filter) ProcessSample(x float64) (float64, error) {
	if !f.ready {
		return 0, ErrNotInitialized
	}

	t := f.samplePeriod
	decay := math.Exp(-f.modal.alpha * t)
	cosTerm := math.Cos(f.modal.omega * t)
	decay2 := math.Exp(-2 * f.modal.alpha * t)

	y := 2*decay*cosTerm*f.state.PrevOutput1 -
		decay2*f.state.PrevOutput2 +
		t*f.modal.g0*x +
		t*(f.modal.g1-2*decay*f.modal.g0*cosTerm)*f.state.PrevInput

	f.state.PrevOutput2 = f.state.PrevOutput1
	f.state.PrevOutput1 = y
	f.state.PrevInput = x

	return y, nil
}

// ProcessTo processes src into dst. Both slices must have the same
// length.
func (f *Filter) ProcessTo(dst, src []float64) error {
	if !f.ready {
		return ErrNotInitialized
	}

	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	for i, x := range src {
		y, err := f.ProcessSample(x)
		if err != nil {
			return err
		}

		dst[i] = y
	}

	return nil
}

// ProcessInPlace processes a forcing buffer in place.
func (f *Filter) ProcessInPlace(buf []float64) error {
	return f.ProcessTo(buf, buf)
}

// Reset clears the output/input history to zero. Derived parameters
// and readiness are unaffected.
func (f *Filter) Reset() {
	f.state = State{}
}

// State returns a copy of the current history.
func (f *Filter) State() State {
	return f.state
}

// SetState restores an externally saved history.
func (f *Filter) SetState(state State) error {
	if !isFinite(state.PrevOutput1) || !isFinite(state.PrevOutput2) || !isFinite(state.PrevInput) {
		return ErrNonFiniteState
	}

	f.state = state

	return nil
}

// Ready reports whether UpdateParameters has succeeded at least once.
func (f *Filter) Ready() bool { return f.ready }

// Mass returns the mass in kg.
func (f *Filter) Mass() float64 { return f.mass }

// Damping returns the damping coefficient in N·s/m.
func (f *Filter) Damping() float64 { return f.damping }

// Stiffness returns the spring constant in N/m.
func (f *Filter) Stiffness() float64 { return f.stiffness }

// SamplePeriod returns the sample period in seconds.
func (f *Filter) SamplePeriod() float64 { return f.samplePeriod }

// SampleRate returns 1/samplePeriod in Hz, or 0 when uninitialized.
func (f *Filter) SampleRate() float64 {
	if f.samplePeriod == 0 {
		return 0
	}

	return 1 / f.samplePeriod
}

// DecayRate returns α = b/(2m) in 1/s.
func (f *Filter) DecayRate() float64 { return f.modal.alpha }

// NaturalFrequency returns the damped natural frequency
// ω = sqrt(k/m − α²) in rad/s, clamped at zero for critically damped
// and overdamped parameter sets.
func (f *Filter) NaturalFrequency() float64 { return f.modal.omega }

// Coefficients returns the current recursion as a normalized two-pole
// section. The zero value is returned while uninitialized.
func (f *Filter) Coefficients() Coefficients {
	if !f.ready {
		return Coefficients{}
	}

	return f.modal.coefficients(f.samplePeriod)
}

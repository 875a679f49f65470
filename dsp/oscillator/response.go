package oscillator

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the recursion denominator:
//
//	1 + A1·z^-1 + A2·z^-2 = 0
//
// For an underdamped system these form the complex-conjugate pair
// e^{(−α±iω)·T}; for critically damped and overdamped parameter sets
// both poles collapse onto the real axis at e^{−αT}.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Stable reports whether both poles lie strictly inside the unit
// circle, i.e. whether the free response decays.
func (c Coefficients) Stable() bool {
	poles := c.Poles()

	return cmplx.Abs(poles[0]) < 1 && cmplx.Abs(poles[1]) < 1
}

// Response computes the complex frequency response H(e^jw) of the
// recursion at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w

	return num / den
}

// MagnitudeDB returns 20·log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Poles returns the z-plane poles of the filter's current recursion.
func (f *Filter) Poles() [2]complex128 {
	return f.Coefficients().Poles()
}

// Stable reports whether the filter's current free response decays.
// An uninitialized filter reports false.
func (f *Filter) Stable() bool {
	if !f.ready {
		return false
	}

	return f.Coefficients().Stable()
}

// Response computes the filter's complex frequency response at freqHz
// using its own sample rate.
func (f *Filter) Response(freqHz float64) complex128 {
	return f.Coefficients().Response(freqHz, f.SampleRate())
}

// MagnitudeDB returns the filter's magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return f.Coefficients().MagnitudeDB(freqHz, f.SampleRate())
}

// ImpulseResponse renders n samples of the displacement response to a
// unit impulse forcing. The live history is saved and restored, so the
// call does not disturb an ongoing simulation.
//
// By construction of the impulse-invariant transform the result equals
// T·h(nT), where h is the continuous system's impulse response.
func (f *Filter) ImpulseResponse(n int) ([]float64, error) {
	return f.render(n, func(i int) float64 {
		if i == 0 {
			return 1
		}
		return 0
	})
}

// StepResponse renders n samples of the displacement response to a
// unit step forcing, without disturbing the live history.
func (f *Filter) StepResponse(n int) ([]float64, error) {
	return f.render(n, func(int) float64 { return 1 })
}

func (f *Filter) render(n int, forcing func(int) float64) ([]float64, error) {
	if !f.ready {
		return nil, ErrNotInitialized
	}

	if n <= 0 {
		return nil, ErrInvalidLength
	}

	saved := f.state
	f.Reset()

	out := make([]float64, n)
	for i := range out {
		y, err := f.ProcessSample(forcing(i))
		if err != nil {
			f.state = saved
			return nil, err
		}

		out[i] = y
	}

	f.state = saved

	return out, nil
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}

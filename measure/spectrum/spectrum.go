// Package spectrum renders the frequency-domain magnitude of an
// oscillator by FFT of its impulse response, for cross-checking the
// closed-form response and locating the resonance peak.
package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-oscillator/dsp/oscillator"
)

// Errors returned by spectrum computation.
var (
	ErrEmptySignal       = errors.New("spectrum: signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// Spectrum holds a single-sided magnitude spectrum.
type Spectrum struct {
	Mags       []float64 // fftSize/2 + 1 bins, DC first
	SampleRate float64
	FFTSize    int
}

// Compute returns the single-sided magnitude spectrum of signal,
// zero-padded to the next power of two of at least minSize.
func Compute(signal []float64, sampleRate float64, minSize int) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, ErrEmptySignal
	}

	if sampleRate <= 0 {
		return Spectrum{}, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(max(len(signal), minSize))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return Spectrum{
		Mags:       mags,
		SampleRate: sampleRate,
		FFTSize:    fftSize,
	}, nil
}

// FromFilter renders n samples of the filter's impulse response and
// returns its magnitude spectrum at the filter's own sample rate.
//
// n should cover the decay of the response; for a decay rate α a span
// of several multiples of 1/α keeps truncation error negligible.
func FromFilter(f *oscillator.Filter, n int) (Spectrum, error) {
	ir, err := f.ImpulseResponse(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}

	return Compute(ir, f.SampleRate(), n)
}

// BinFrequency returns the center frequency of bin i in Hz.
func (s Spectrum) BinFrequency(i int) float64 {
	if s.FFTSize == 0 {
		return 0
	}

	return float64(i) * s.SampleRate / float64(s.FFTSize)
}

// Peak returns the frequency and magnitude of the largest bin.
func (s Spectrum) Peak() (freqHz, magnitude float64) {
	if len(s.Mags) == 0 {
		return 0, 0
	}

	bestIdx := 0
	for i := range s.Mags {
		if s.Mags[i] > s.Mags[bestIdx] {
			bestIdx = i
		}
	}

	return s.BinFrequency(bestIdx), s.Mags[bestIdx]
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Package step analyzes step-response recordings of an oscillator
// simulation: final value, overshoot, rise time, and settling time.
package step

import (
	"errors"
	"math"
)

// Errors returned by step-response analysis.
var (
	ErrEmptyResponse     = errors.New("step: response is empty")
	ErrInvalidSampleRate = errors.New("step: sample rate must be positive")
)

// Fractions and bands used by the metric definitions.
const (
	riseLowFraction  = 0.1
	riseHighFraction = 0.9
	settlingBand     = 0.02
	finalWindowFrac  = 0.02
)

// Metrics holds step-response analysis results.
type Metrics struct {
	FinalValue       float64 // mean of the trailing window
	Peak             float64 // extremum furthest from zero
	PeakIndex        int
	PeakTime         float64 // seconds
	OvershootPercent float64 // (peak - final) / |final| * 100, 0 if none
	RiseTime         float64 // 10% to 90% of final value, seconds
	SettlingTime     float64 // last exit from the ±2% band, seconds
	SteadyStateError float64 // |final - target| / |target|, NaN for target 0
	Bounded          bool    // no sample exceeded 100x the final value
	Samples          int
}

// Analyzer computes step metrics from response data.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates a step-response analyzer with the given sample
// rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all step metrics from a response recording driven
// by a constant forcing of level target.
//
// The response is assumed to start at the step onset. The final value
// is estimated as the mean of the trailing 2% of samples (at least
// one), which averages out residual ringing.
func (a *Analyzer) Analyze(response []float64, target float64) (Metrics, error) {
	if len(response) == 0 {
		return Metrics{}, ErrEmptyResponse
	}

	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	dt := 1 / a.SampleRate

	m := Metrics{Samples: len(response)}
	m.FinalValue = trailingMean(response)

	m.Peak, m.PeakIndex = peak(response)
	m.PeakTime = float64(m.PeakIndex) * dt

	if final := math.Abs(m.FinalValue); final > 0 && math.Abs(m.Peak) > final {
		m.OvershootPercent = (math.Abs(m.Peak) - final) / final * 100
	}

	m.RiseTime = a.riseTime(response, m.FinalValue)
	m.SettlingTime = a.settlingTime(response, m.FinalValue)

	if target != 0 {
		m.SteadyStateError = math.Abs(m.FinalValue-target) / math.Abs(target)
	} else {
		m.SteadyStateError = math.NaN()
	}

	m.Bounded = bounded(response, m.FinalValue)

	return m, nil
}

// trailingMean averages the last finalWindowFrac of the response.
func trailingMean(response []float64) float64 {
	n := int(float64(len(response)) * finalWindowFrac)
	if n < 1 {
		n = 1
	}

	var sum float64
	for _, v := range response[len(response)-n:] {
		sum += v
	}

	return sum / float64(n)
}

// peak returns the sample furthest from zero and its index. Ties keep
// the earliest index.
func peak(response []float64) (float64, int) {
	best := response[0]
	bestIdx := 0

	for i, v := range response {
		if math.Abs(v) > math.Abs(best) {
			best = v
			bestIdx = i
		}
	}

	return best, bestIdx
}

// riseTime returns the time between the first crossings of 10% and 90%
// of the final value, or 0 when the response never reaches 90%.
func (a *Analyzer) riseTime(response []float64, final float64) float64 {
	if final == 0 {
		return 0
	}

	low := riseLowFraction * final
	high := riseHighFraction * final

	lowIdx, highIdx := -1, -1
	for i, v := range response {
		if lowIdx < 0 && crossed(v, low, final) {
			lowIdx = i
		}

		if highIdx < 0 && crossed(v, high, final) {
			highIdx = i
			break
		}
	}

	if lowIdx < 0 || highIdx < 0 {
		return 0
	}

	return float64(highIdx-lowIdx) / a.SampleRate
}

// settlingTime returns the time of the first sample after which the
// response stays inside the ±2% band around the final value.
func (a *Analyzer) settlingTime(response []float64, final float64) float64 {
	band := settlingBand * math.Abs(final)
	if band == 0 {
		return 0
	}

	lastOutside := -1
	for i, v := range response {
		if math.Abs(v-final) > band {
			lastOutside = i
		}
	}

	return float64(lastOutside+1) / a.SampleRate
}

// crossed reports whether v has reached threshold in the direction of
// the final value.
func crossed(v, threshold, final float64) bool {
	if final >= 0 {
		return v >= threshold
	}

	return v <= threshold
}

// bounded reports whether no sample strayed beyond 100x the final
// magnitude (or 100 absolute for near-zero finals).
func bounded(response []float64, final float64) bool {
	limit := 100 * math.Abs(final)
	if limit == 0 {
		limit = 100
	}

	for _, v := range response {
		if math.Abs(v) > limit {
			return false
		}
	}

	return true
}

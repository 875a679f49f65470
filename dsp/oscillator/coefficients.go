package oscillator

import "math"

// modal holds the derived continuous-time parameters of the oscillator.
//
// alpha is the exponential decay rate b/(2m), omega the damped natural
// frequency sqrt(k/m − α²) clamped at zero for critically damped and
// overdamped systems. g0 and g1 are the first two samples of the
// analytic impulse response, h(0) and h(T); together with the pole pair
// e^{(−α±iω)T} they determine the recursion completely.
type modal struct {
	alpha float64
	omega float64
	g0    float64
	g1    float64
}

// deriveModal computes modal parameters from the physical ones.
//
// The impulse response of m·y″ + b·y′ + k·y = b·x′ + k·x is
//
//	h(t) = (b/m)·e^(−αt)·cos(ωt) + ((k − b²/2m)/(m·ω))·e^(−αt)·sin(ωt)
//
// so g0 = h(0) = b/m and g1 = h(T). When the ω clamp triggers
// (k/m ≤ α²) the sin-term coefficient divides by zero; since
// sin(ωT)/ω → T as ω → 0, the term's analytic limit
// ((k − b²/2m)/m)·T·e^(−αT) is substituted instead. No epsilon floor is
// applied to ω itself.
func deriveModal(damping, mass, stiffness, samplePeriod float64) modal {
	alpha := damping / (2 * mass)
	omega := math.Sqrt(math.Max(0, stiffness/mass-alpha*alpha))
	g0 := damping / mass

	decay := math.Exp(-alpha * samplePeriod)
	sinCoeff := (stiffness - damping*damping/(2*mass)) / mass

	var g1 float64
	if omega == 0 {
		g1 = g0*decay + sinCoeff*samplePeriod*decay
	} else {
		g1 = g0*decay*math.Cos(omega*samplePeriod) +
			(sinCoeff/omega)*decay*math.Sin(omega*samplePeriod)
	}

	return modal{alpha: alpha, omega: omega, g0: g0, g1: g1}
}

// coefficients folds the modal parameters into normalized two-pole
// section coefficients for the given sample period.
func (m modal) coefficients(samplePeriod float64) Coefficients {
	decay := math.Exp(-m.alpha * samplePeriod)
	cosTerm := math.Cos(m.omega * samplePeriod)

	return Coefficients{
		B0: samplePeriod * m.g0,
		B1: samplePeriod * (m.g1 - 2*decay*m.g0*cosTerm),
		A1: -2 * decay * cosTerm,
		A2: decay * decay,
	}
}

// Coefficients holds the oscillator recursion as a normalized two-pole
// section. a0 is normalized to 1 and not stored:
//
//	y[n] = B0·x[n] + B1·x[n−1] − A1·y[n−1] − A2·y[n−2]
//
// The feedback pair (A1, A2) places a complex-conjugate pole pair at
// e^{(−α±iω)·T}; the feedforward taps carry the impulse-invariant
// input gains T·g0 and T·(g1 − 2·e^(−αT)·g0·cos(ωT)).
type Coefficients struct {
	B0, B1 float64 // feedforward (numerator)
	A1, A2 float64 // feedback (denominator)
}

// DeriveCoefficients computes the recursion coefficients for the given
// physical parameters without constructing a Filter.
//
// mass must be nonzero and samplePeriod positive; damping and stiffness
// may be any finite value, including negatives that yield an unstable
// (growing) response.
func DeriveCoefficients(damping, mass, stiffness, samplePeriod float64) (Coefficients, error) {
	if err := validateParameters(damping, mass, stiffness, samplePeriod); err != nil {
		return Coefficients{}, err
	}

	m := deriveModal(damping, mass, stiffness, samplePeriod)

	return m.coefficients(samplePeriod), nil
}

func validateParameters(damping, mass, stiffness, samplePeriod float64) error {
	if !isFinite(damping) || !isFinite(mass) || !isFinite(stiffness) || !isFinite(samplePeriod) {
		return ErrNonFiniteParameter
	}

	if mass == 0 {
		return ErrZeroMass
	}

	if samplePeriod <= 0 {
		return ErrInvalidSamplePeriod
	}

	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

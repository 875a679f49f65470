// Package oscillator simulates a continuous-time mass-spring-damper
// system sample by sample using an impulse-invariant two-pole recursive
// filter.
//
// The model is a mass coupled to a moving support through both spring
// and damper (base excitation):
//
//	m·y″ + b·y′ + k·y = b·x′ + k·x
//
// where x is the support displacement (filter input) and y the mass
// displacement (filter output). Rather than integrating the ODE with
// finite differences, the discrete recursion is derived so that the
// filter's impulse response matches samples of the analytic continuous
// impulse response exactly. Each sample costs O(1) time and state: two
// prior outputs and one prior input.
//
// A Filter starts uninitialized; UpdateParameters derives the modal
// parameters (decay rate α = b/2m, damped natural frequency
// ω = sqrt(k/m − α²)) and the recursion gains, after which
// ProcessSample advances the simulation one sample period per call.
// Parameter updates preserve the output/input history, so physical
// parameters can change mid-stream without a displacement
// discontinuity.
//
// Filters are not safe for concurrent use; give each stream its own
// Filter or serialize calls externally.
package oscillator

// Package effects provides single-sample effect kernels operating on
// quantized 16-bit samples.
//
// Subpackages:
//   - github.com/cwbudde/algo-fx/dsp/effects/dynamics
//
// Effects in this package:
//   - Boost: Volume-controlled gain with saturation.
//   - Distortion: Hard clipping with separate threshold and output ceiling.
//   - Fuzz: Double-gain fuzz remapped into a narrow output range.
//   - Tremolo: Triangle LFO amplitude modulation.
//   - Delay: Single-tap feedback echo.
//   - ADSRGain: Envelope-shaped gain driven by key events.
//   - PitchShift: Variable-rate ring buffer resampling.
//
// Every effect implements Effect. Process runs in constant time without
// allocating. A bypassed effect returns its input and leaves its running
// state untouched.
package effects

// Package delay provides circular sample buffers for delay-based effects.
//
// [Line] is a fixed-length circular buffer addressed relative to its write
// cursor. [VariableRateLine] is a ring buffer whose read cursor advances by a
// fractional increment per read, which resamples the stored signal.
package delay

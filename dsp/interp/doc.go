// Package interp provides the fractional-position interpolation used by the
// variable-rate ring buffer.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear]:   2-point linear interpolation (default)
//   - [Hermite4]: 4-point cubic Hermite
//
// The [Mode] enum selects the algorithm at construction time.
package interp

// Package envelope provides an ADSR envelope generator driven by key-on and
// key-off events.
//
// Rates are per-tick increments of a level in [0, 1]: an attack rate of 0.01
// reaches full level after 100 ticks. Tick is allocation free and meant to be
// called once per audio sample.
package envelope

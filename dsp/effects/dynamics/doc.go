// Package dynamics provides single-sample dynamic range compressors for
// 16-bit samples.
//
// Included processors:
//   - SoftKneeCompressor: Linear-domain compressor whose ratio blends in
//     over a fixed knee with a cosine S-curve.
//   - LogCompressor: Hard-knee compressor with a logarithmic threshold
//     mapping.
//
// Both smooth their gain with one-pole attack/release coefficients and can
// drive a StereoLink, which applies the detector gain to a paired channel and
// publishes an engaged flag for other goroutines.
package dynamics

// Package analysis measures rendered effect output.
//
// [Levels] reports RMS, peak and crest factor relative to 16-bit full scale.
// [DominantFrequency] locates the strongest spectral peak of a block with a
// Hann-windowed FFT and parabolic bin interpolation, which is enough to check
// the frequency ratio produced by a pitch shifter.
//
// # Usage
//
//	stats := analysis.Levels(out)
//	hz, err := analysis.DominantFrequency(out, 44100)
//	fmt.Printf("RMS %.1f dBFS, peak at %.1f Hz\n", stats.RMSDB, hz)
package analysis

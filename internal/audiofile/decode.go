package audiofile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")
	// ErrOnlyPCM16 is returned for WAV files that are not 16-bit PCM.
	ErrOnlyPCM16 = errors.New("audiofile: only 16-bit PCM WAV is supported")
	// ErrInvalidWAV is returned when the RIFF/WAVE header does not parse.
	ErrInvalidWAV = errors.New("audiofile: invalid WAV file")
)

const (
	wavFormatPCM = 1
	mp3Channels  = 2
)

// Format names a decoder.
type Format string

const (
	FormatWAV Format = "wav"
	FormatMP3 Format = "mp3"
	FormatOgg Format = "ogg"
)

// FormatOf picks a format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	case ".ogg", ".oga":
		return FormatOgg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads the whole file at path, choosing the decoder by extension.
func Decode(path string) (Clip, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Clip{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("audiofile: open: %w", err)
	}
	defer f.Close()

	clip, err := DecodeFormat(f, format)
	if err != nil {
		return Clip{}, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}

// DecodeFormat decodes r with the given format's decoder.
func DecodeFormat(r io.ReadSeeker, format Format) (Clip, error) {
	switch format {
	case FormatWAV:
		return decodeWAV(r)
	case FormatMP3:
		return decodeMP3(r)
	case FormatOgg:
		return decodeOgg(r)
	default:
		return Clip{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, ErrInvalidWAV
	}

	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != 16 {
		return Clip{}, fmt.Errorf("%w: format %d, %d bits", ErrOnlyPCM16, dec.WavAudioFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("audiofile: wav: %w", err)
	}

	samples := make([]core.Sample, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = core.Sample(v)
	}

	return Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    samples,
	}, nil
}

func decodeMP3(r io.Reader) (Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return Clip{}, fmt.Errorf("audiofile: mp3: %w", err)
	}

	// go-mp3 always emits interleaved stereo 16-bit little-endian PCM.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return Clip{}, fmt.Errorf("audiofile: mp3: %w", err)
	}

	samples := make([]core.Sample, len(raw)/2)
	for i := range samples {
		samples[i] = core.Sample(int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8))
	}

	return Clip{
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
		Samples:    samples,
	}, nil
}

func decodeOgg(r io.Reader) (Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return Clip{}, fmt.Errorf("audiofile: ogg: %w", err)
	}

	samples := make([]core.Sample, len(data))
	for i, v := range data {
		samples[i] = core.ClipFloat(math.Round(float64(v) * float64(core.MaxSample)))
	}

	return Clip{
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Samples:    samples,
	}, nil
}

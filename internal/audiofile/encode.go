package audiofile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes clip as 16-bit PCM WAV.
func WriteWAV(w io.WriteSeeker, clip Clip) error {
	if clip.Channels <= 0 || clip.SampleRate <= 0 {
		return fmt.Errorf("audiofile: invalid clip layout: %d channels at %d Hz", clip.Channels, clip.SampleRate)
	}

	if len(clip.Samples)%clip.Channels != 0 {
		return fmt.Errorf("audiofile: %d samples do not fill %d-channel frames", len(clip.Samples), clip.Channels)
	}

	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: clip.Channels,
			SampleRate:  clip.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(w, clip.SampleRate, 16, clip.Channels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: wav write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: wav close: %w", err)
	}

	return nil
}

// WriteWAVFile creates path and writes clip to it.
func WriteWAVFile(path string, clip Clip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("audiofile: close: %w", cerr)
		}
	}()

	return WriteWAV(f, clip)
}

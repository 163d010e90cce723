// Package audiofile loads and stores interleaved 16-bit clips for the
// command-line tools. WAV is read and written through go-audio; MP3 and
// Ogg Vorbis are decode-only.
package audiofile

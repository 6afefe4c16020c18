package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmStream reads a WAV file's samples window by window, so memory is bounded by the window size.
type pcmStream struct {
	f           *os.File
	dec         *wav.Decoder
	sampleRate  int
	channels    int
	bitDepth    int
	totalFrames int
}

func openWAV(path string) (*pcmStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}

	s, err := newPCMStream(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

func newPCMStream(f *os.File, path string) (*pcmStream, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind wav: %w", err)
	}
	dec = wav.NewDecoder(f)
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	if dec.SampleRate == 0 || channels == 0 || bitDepth == 0 || bitDepth%8 != 0 {
		return nil, fmt.Errorf("%w: unsupported format chunk", ErrInvalidWAV)
	}

	return &pcmStream{
		f:           f,
		dec:         dec,
		sampleRate:  int(dec.SampleRate),
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: int(dec.PCMLen()) / (channels * bitDepth / 8),
	}, nil
}

// next reads the following frames of interleaved samples.
// The data chunk length bounds every read, so trailing chunks are never decoded as audio.
func (s *pcmStream) next(frames int) ([]int, error) {
	want := frames * s.channels
	data := make([]int, want)

	filled := 0
	for filled < want {
		n, err := s.dec.PCMBuffer(&goaudio.IntBuffer{Data: data[filled:]})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
		}
		if n <= 0 {
			break
		}
		filled += n
	}

	// a file shorter than its header declares ends at the last whole frame
	filled -= filled % s.channels
	if filled == 0 {
		return nil, fmt.Errorf("%w: unexpected end of data", ErrInvalidWAV)
	}
	return data[:filled], nil
}

func (s *pcmStream) Close() error {
	return s.f.Close()
}

// writeClip encodes samples as a standalone WAV at path, in the stream's format.
func writeClip(path string, s *pcmStream, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create clip: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, s.sampleRate, s.bitDepth, s.channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.channels,
			SampleRate:  s.sampleRate,
		},
		Data:           samples,
		SourceBitDepth: s.bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode clip: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize clip: %w", err)
	}
	return nil
}

package audio

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/nguyentantai21042004/audio-summarizer/internal/speech"
)

// writeTestWAV writes a 16-bit PCM WAV of the given length.
func writeTestWAV(t *testing.T, path string, sampleRate, channels int, seconds float64) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	frames := int(seconds * float64(sampleRate))
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = (i % 200) * 100
	}

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

// clipFrames decodes a clip and returns its frame count.
func clipFrames(t *testing.T, data []byte) int {
	t.Helper()
	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	return len(buf.Data) / int(dec.NumChans)
}

type fakeRecognizer struct {
	mu      sync.Mutex
	results []speech.Result
	clips   []speech.Clip
}

func (f *fakeRecognizer) Recognize(ctx context.Context, clip speech.Clip) speech.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clips = append(f.clips, clip)
	i := len(f.clips) - 1
	if i < len(f.results) {
		return f.results[i]
	}
	return speech.Result{Status: speech.StatusUnintelligible}
}

// fakeFFmpeg writes a canonical WAV to the last argument, standing in for ffmpeg.
type fakeFFmpeg struct {
	t          *testing.T
	sampleRate int
	seconds    float64
	err        error
	calls      [][]string
}

func (f *fakeFFmpeg) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return "", f.err
	}
	writeTestWAV(f.t, args[len(args)-1], f.sampleRate, 1, f.seconds)
	return "", nil
}

func (f *fakeFFmpeg) LookPath(name string) (string, error) { return name, nil }

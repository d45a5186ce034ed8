package nature

import (
	"math/rand/v2"
	"os"

	"github.com/gopxl/beep/v2"

	"github.com/radiotedu/radiotedu-tui/internal/audio"
)

// fileLoop replays an MP3 file forever by reopening it at the end.
type fileLoop struct {
	path    string
	current beep.StreamCloser
	stream  beep.Streamer
	fresh   bool // nothing read since the last reopen
	err     error
}

func newFileLoop(path string) (*fileLoop, error) {
	l := &fileLoop{path: path}
	if err := l.reopen(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *fileLoop) reopen() error {
	if l.current != nil {
		_ = l.current.Close()
		l.current = nil
	}
	f, err := os.Open(l.path)
	if err != nil {
		return err
	}
	dec, format, err := audio.DecodeMP3(f, f)
	if err != nil {
		f.Close()
		return err
	}
	l.current = dec
	l.stream = audio.Resample(format.SampleRate, dec)
	l.fresh = true
	return nil
}

func (l *fileLoop) Stream(samples [][2]float64) (int, bool) {
	if l.err != nil {
		return 0, false
	}
	filled := 0
	for filled < len(samples) {
		n, ok := l.stream.Stream(samples[filled:])
		filled += n
		if n > 0 {
			l.fresh = false
		}
		if ok {
			continue
		}
		// A file that ends without producing audio would spin forever.
		if l.fresh {
			l.err = l.current.Err()
			return filled, filled > 0
		}
		if err := l.reopen(); err != nil {
			l.err = err
			return filled, filled > 0
		}
	}
	return filled, true
}

func (l *fileLoop) Err() error { return l.err }

// Close releases the file being decoded. The loop cannot stream afterwards.
func (l *fileLoop) Close() error {
	if l.err == nil {
		l.err = os.ErrClosed
	}
	if l.current == nil {
		return nil
	}
	err := l.current.Close()
	l.current = nil
	return err
}

// brownNoise is integrated white noise, which sounds like steady rain.
type brownNoise struct {
	rng  *rand.Rand
	last [2]float64
}

func newBrownNoise(seed uint64) *brownNoise {
	return &brownNoise{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *brownNoise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		for c := range 2 {
			white := b.rng.Float64()*2 - 1
			v := (b.last[c] + 0.02*white) / 1.02
			b.last[c] = v
			samples[i][c] = v * 3.5
		}
	}
	return len(samples), true
}

func (b *brownNoise) Err() error { return nil }

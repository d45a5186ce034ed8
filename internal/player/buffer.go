package player

import (
	"context"
	"sync"

	"github.com/gopxl/beep/v2"
)

// sampleBufferSize is about 180ms of stereo audio at 44.1 kHz.
const sampleBufferSize = 8192

// sampleBuffer decouples network decoding from the speaker. A producer
// goroutine fills it; the speaker drains it without blocking, playing
// silence while the network catches up so the mixer lock is never held
// on a socket read.
type sampleBuffer struct {
	ctx     context.Context
	samples chan [2]float64

	doneOnce sync.Once
	done     chan struct{}
}

func newSampleBuffer(ctx context.Context) *sampleBuffer {
	return &sampleBuffer{
		ctx:     ctx,
		samples: make(chan [2]float64, sampleBufferSize),
		done:    make(chan struct{}),
	}
}

// fill pulls from src until it ends or the context is cancelled, and
// returns src's error, if any.
func (b *sampleBuffer) fill(src beep.Streamer) error {
	defer b.finish()

	chunk := make([][2]float64, 1024)
	for {
		n, ok := src.Stream(chunk)
		if !ok {
			return src.Err()
		}
		for i := range n {
			select {
			case b.samples <- chunk[i]:
			case <-b.ctx.Done():
				return nil
			}
		}
	}
}

func (b *sampleBuffer) finish() {
	b.doneOnce.Do(func() { close(b.done) })
}

// Stream implements beep.Streamer. It returns false once the producer
// is finished and the buffer is drained, or as soon as the context is
// cancelled, which removes it from the mixer.
func (b *sampleBuffer) Stream(samples [][2]float64) (int, bool) {
	if b.ctx.Err() != nil {
		return 0, false
	}

	filled := 0
	for filled < len(samples) {
		select {
		case s := <-b.samples:
			samples[filled] = s
			filled++
			continue
		default:
		}
		break
	}

	if filled == 0 {
		select {
		case <-b.done:
			return 0, false
		default:
		}
	}

	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (b *sampleBuffer) Err() error { return nil }

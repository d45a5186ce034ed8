package player

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/audio"
)

// UserAgent is sent with every stream request.
const UserAgent = "radiotedu-tui/1.0"

const eventBufferSize = 16

// ErrNoStream is returned by Play before any URL was loaded.
var ErrNoStream = errors.New("no stream loaded")

// StatusError is returned when the station answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stream returned status %d: %s", e.StatusCode, e.Status)
}

// StreamEngine plays MP3 internet radio over HTTP(S).
type StreamEngine struct {
	client *http.Client
	events chan Event

	mu      sync.Mutex
	url     string
	state   State
	session uint64
	cancel  context.CancelFunc
	volume  *effects.Volume
	level   float64
	title   string

	received atomic.Int64
}

// NewStreamEngine returns an engine with an HTTP client tuned for
// long-lived streams: no overall timeout, bounded handshake.
func NewStreamEngine() *StreamEngine {
	return &StreamEngine{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				DisableCompression:    true,
			},
		},
		events: make(chan Event, eventBufferSize),
		level:  1,
	}
}

// Events returns the channel on which playback events are delivered.
func (e *StreamEngine) Events() <-chan Event {
	return e.events
}

// Load selects url and drops the current connection.
func (e *StreamEngine) Load(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.url = url
	e.title = ""
	e.received.Store(0)
	log.Debug().Str("url", url).Msg("Stream loaded")
}

// Pause drops the connection. A live stream resumes by reconnecting.
func (e *StreamEngine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

// Close stops playback. The engine can still be reused.
func (e *StreamEngine) Close() error {
	e.Pause()
	return nil
}

// State returns the connection state.
func (e *StreamEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Info returns details about the current stream.
func (e *StreamEngine) Info() StreamInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StreamInfo{URL: e.url, Title: e.title, Received: e.received.Load()}
}

// stopLocked cancels the live session. The session's buffer reports
// the end of stream on its next read, which removes it from the mixer.
func (e *StreamEngine) stopLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.session++
	e.volume = nil
	e.state = Stopped
}

// Play connects to the loaded stream and starts output. ctx bounds the
// connection handshake only; once audio flows the session lives until
// Pause, Load or Close.
func (e *StreamEngine) Play(ctx context.Context) error {
	e.mu.Lock()
	url := e.url
	e.stopLocked()
	if url == "" {
		e.mu.Unlock()
		return ErrNoStream
	}
	sessCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	sess := e.session
	e.state = Connecting
	e.mu.Unlock()

	// Abort the handshake if the caller gives up.
	stop := context.AfterFunc(ctx, cancel)

	buf, err := e.connect(sessCtx, sess, url)
	stop()
	if err != nil {
		cancel()
		e.fail(sess, url, err)
		return err
	}

	if err := audio.Init(); err != nil {
		cancel()
		e.setStopped(sess)
		return err
	}

	e.mu.Lock()
	if e.session != sess {
		e.mu.Unlock()
		cancel()
		return context.Canceled
	}
	e.volume = &effects.Volume{
		Streamer: buf,
		Base:     2,
		Volume:   audio.LevelToVolume(e.level),
		Silent:   e.level <= 0,
	}
	e.state = Playing
	vol := e.volume
	e.mu.Unlock()

	audio.Play(vol)
	e.emit(sess, Event{Kind: EventPlaying, URL: url})
	log.Info().Str("url", url).Msg("Stream playing")
	return nil
}

// connect opens the stream and starts the decode goroutine feeding the
// returned buffer.
func (e *StreamEngine) connect(ctx context.Context, sess uint64, url string) (*sampleBuffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Icy-MetaData", "1")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	metaint, _ := strconv.Atoi(resp.Header.Get("icy-metaint"))
	log.Debug().
		Str("content_type", resp.Header.Get("Content-Type")).
		Int("metaint", metaint).
		Msg("Stream connected")

	body := newICYReader(resp.Body, metaint, &e.received, func(title string) {
		e.setTitle(sess, url, title)
	})

	decoder, format, err := audio.DecodeMP3(body, resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("decode stream: %w", err)
	}
	e.emit(sess, Event{Kind: EventReady, URL: url})

	buf := newSampleBuffer(ctx)
	go func() {
		defer decoder.Close()
		err := buf.fill(audio.Resample(format.SampleRate, decoder))
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			err = errors.New("stream ended")
		}
		e.fail(sess, url, err)
	}()
	// Unblock the decoder's pending read when the session ends.
	context.AfterFunc(ctx, func() { resp.Body.Close() })

	return buf, nil
}

func (e *StreamEngine) fail(sess uint64, url string, err error) {
	if !e.setStopped(sess) {
		return
	}
	log.Warn().Err(err).Str("url", url).Msg("Stream error")
	e.emit(sess, Event{Kind: EventError, URL: url, Err: err})
}

// setStopped marks sess stopped and reports whether it was still live.
func (e *StreamEngine) setStopped(sess uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != sess {
		return false
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.state = Stopped
	e.volume = nil
	return true
}

func (e *StreamEngine) setTitle(sess uint64, url, title string) {
	e.mu.Lock()
	if e.session != sess || e.title == title {
		e.mu.Unlock()
		return
	}
	e.title = title
	e.mu.Unlock()
	log.Debug().Str("title", title).Msg("Now playing")
	e.emit(sess, Event{Kind: EventTitle, URL: url, Title: title})
}

// emit delivers ev unless its session was superseded. Sends never block;
// a full channel drops the event.
func (e *StreamEngine) emit(sess uint64, ev Event) {
	e.mu.Lock()
	live := e.session == sess
	e.mu.Unlock()
	if !live {
		return
	}
	select {
	case e.events <- ev:
	default:
		log.Warn().Stringer("kind", ev.Kind).Msg("Dropped playback event")
	}
}

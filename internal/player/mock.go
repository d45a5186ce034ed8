package player

import (
	"context"
	"sync"
)

// Mock is a test double for Engine.
type Mock struct {
	mu        sync.Mutex
	state     State
	url       string
	info      StreamInfo
	volume    float64
	playErr   error
	loadCalls []string
	playCalls int
	pauses    int
	closed    bool
	events    chan Event
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		events: make(chan Event, eventBufferSize),
		volume: 1,
	}
}

func (m *Mock) Load(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.url = url
	m.state = Stopped
	m.loadCalls = append(m.loadCalls, url)
}

func (m *Mock) Play(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		m.state = Stopped
		return m.playErr
	}
	if m.url == "" {
		return ErrNoStream
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	m.state = Stopped
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = level
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Info() StreamInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	info := m.info
	info.URL = m.url
	return info
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetInfo(info StreamInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = info
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) Pauses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Emit pushes an event as if it came from the wire.
func (m *Mock) Emit(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// Verify Mock implements Engine at compile time.
var _ Engine = (*Mock)(nil)

package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Sink posts timer notifications. The server is checked once, on the
// first notification; if that fails every later call is dropped.
// Delivery failures are logged and otherwise ignored.
type Sink struct {
	notifier Notifier
	timeout  int32
	async    bool

	checkOnce sync.Once
	allowed   bool

	mu     sync.Mutex
	lastID uint32
}

// NewSink wraps notifier. A nil notifier yields a sink that drops everything.
func NewSink(notifier Notifier, timeout int32) *Sink {
	return &Sink{notifier: notifier, timeout: timeout, async: true}
}

// Notify sends title and body without blocking the caller.
func (s *Sink) Notify(title, body string) {
	if s == nil || s.notifier == nil {
		return
	}
	if s.async {
		go s.send(title, body)
		return
	}
	s.send(title, body)
}

func (s *Sink) send(title, body string) {
	s.checkOnce.Do(func() {
		if err := s.notifier.Check(); err != nil {
			log.Debug().Err(err).Msg("Desktop notifications disabled")
			return
		}
		s.allowed = true
	})
	if !s.allowed {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       "alarm-symbolic",
		Timeout:    s.timeout,
		ReplacesID: s.lastID,
		Urgency:    UrgencyNormal,
	})
	if err != nil {
		log.Warn().Err(err).Str("title", title).Msg("Notification failed")
		return
	}
	s.lastID = id
}

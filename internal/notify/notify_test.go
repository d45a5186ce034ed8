package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockNotifier struct {
	checkErr  error
	notifyErr error
	checks    int
	sent      []Notification
	nextID    uint32
}

func (m *mockNotifier) Check() error {
	m.checks++
	return m.checkErr
}

func (m *mockNotifier) Notify(n Notification) (uint32, error) {
	if m.notifyErr != nil {
		return 0, m.notifyErr
	}
	m.sent = append(m.sent, n)
	m.nextID++
	return m.nextID, nil
}

func (m *mockNotifier) Close(uint32) error { return nil }

func syncSink(n Notifier) *Sink {
	s := NewSink(n, 5000)
	s.async = false
	return s
}

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestSink_SendsAndReplaces(t *testing.T) {
	m := &mockNotifier{}
	s := syncSink(m)

	s.Notify("Focus complete", "Time for a break")
	s.Notify("Break over", "Back to focus")

	assert.Equal(t, 1, m.checks, "server checked only once")
	if assert.Len(t, m.sent, 2) {
		assert.Equal(t, "Focus complete", m.sent[0].Title)
		assert.Equal(t, int32(5000), m.sent[0].Timeout)
		assert.Equal(t, uint32(0), m.sent[0].ReplacesID)
		assert.Equal(t, uint32(1), m.sent[1].ReplacesID)
	}
}

func TestSink_CheckFailureDisables(t *testing.T) {
	m := &mockNotifier{checkErr: ErrUnavailable}
	s := syncSink(m)

	s.Notify("a", "b")
	s.Notify("c", "d")

	assert.Equal(t, 1, m.checks)
	assert.Empty(t, m.sent)
}

func TestSink_DeliveryErrorIgnored(t *testing.T) {
	m := &mockNotifier{notifyErr: errors.New("bus closed")}
	s := syncSink(m)

	assert.NotPanics(t, func() { s.Notify("a", "b") })
	assert.Equal(t, uint32(0), s.lastID)
}

func TestSink_NilSafe(t *testing.T) {
	var s *Sink
	assert.NotPanics(t, func() { s.Notify("a", "b") })
	assert.NotPanics(t, func() { NewSink(nil, 0).Notify("a", "b") })
}

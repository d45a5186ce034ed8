//go:build !linux

package mpris

// Adapter queues nothing on non-Linux platforms; requests never arrive.
type Adapter struct {
	*hub
}

// New returns an adapter without a D-Bus server.
func New() (*Adapter, error) {
	return &Adapter{hub: newHub()}, nil
}

// Close releases the request queue.
func (a *Adapter) Close() error {
	a.close()
	return nil
}

package hotkey

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	xhotkey "golang.design/x/hotkey"
)

// Manager owns the registered global hotkey. Key-down events invoke the
// notify callback on the listener goroutine; the callback must hand the
// work to the UI thread itself (the app wires it to the dispatch queue).
type Manager struct {
	logger *zap.Logger
	notify func()

	mu     sync.Mutex
	active *xhotkey.Hotkey
	stop   chan struct{}
}

// NewManager returns a manager that calls notify on every hotkey press.
// Nothing is registered until the first Rebind.
func NewManager(logger *zap.Logger, notify func()) *Manager {
	return &Manager{logger: logger, notify: notify}
}

// Rebind replaces the active registration with combo. The first call is
// the initial bind; later calls unregister the previous combination
// first, as required when the setting changes.
func (m *Manager) Rebind(combo Combo) error {
	code, err := combo.keyCode()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.unregisterLocked()

	hk := xhotkey.New(combo.modifiers(), code)
	if err := hk.Register(); err != nil {
		return errors.Wrapf(err, "register hotkey %s", combo)
	}

	stop := make(chan struct{})
	m.active = hk
	m.stop = stop
	go m.listen(hk, stop)

	m.logger.Info("global hotkey registered", zap.String("combo", combo.String()))
	return nil
}

// Unregister drops the active hotkey, if any. Safe to call repeatedly.
func (m *Manager) Unregister() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unregisterLocked()
}

func (m *Manager) unregisterLocked() {
	if m.active == nil {
		return
	}
	close(m.stop)
	if err := m.active.Unregister(); err != nil {
		m.logger.Warn("unregister hotkey", zap.Error(err))
	}
	m.active = nil
	m.stop = nil
}

func (m *Manager) listen(hk *xhotkey.Hotkey, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-hk.Keydown():
			m.notify()
		}
	}
}

// Package secret keeps the note encryption password in the operating
// system credential store.
package secret

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

// Service is the credential-store entry StickyPad owns. Fixed so an
// upgraded build keeps finding the password saved by earlier releases.
const Service = "StickyPad_Encryption"

// PasswordName is the name the note encryption password is stored under.
const PasswordName = "stickypad_user"

// ErrNotFound is returned by Get when no secret is stored under a name.
var ErrNotFound = errors.New("secret not found")

// Store reads and writes named secrets. The geometry core never touches
// this; only the application shell does.
type Store interface {
	Get(name string) (string, error)
	Set(name, secret string) error
	Delete(name string) error
}

// Keyring is the Store backed by the OS credential store.
type Keyring struct{}

// NewKeyring returns the OS-backed secret store.
func NewKeyring() *Keyring {
	return &Keyring{}
}

// Get returns the secret stored under name, or ErrNotFound.
func (k *Keyring) Get(name string) (string, error) {
	v, err := keyring.Get(Service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", errors.Wrap(err, "read credential store")
	}
	return v, nil
}

// Set stores secret under name, replacing any previous value.
func (k *Keyring) Set(name, secret string) error {
	return errors.Wrap(keyring.Set(Service, name, secret), "write credential store")
}

// Delete removes the secret stored under name. Deleting an absent secret
// is not an error.
func (k *Keyring) Delete(name string) error {
	err := keyring.Delete(Service, name)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "delete from credential store")
	}
	return nil
}

// Memory is an in-process Store used by tests and as a session-only
// fallback when the OS store is unavailable.
type Memory struct {
	mu      sync.Mutex
	secrets map[string]string
}

// NewMemory returns an empty in-memory secret store.
func NewMemory() *Memory {
	return &Memory{secrets: map[string]string{}}
}

// Get returns the secret stored under name, or ErrNotFound.
func (m *Memory) Get(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.secrets[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores secret under name.
func (m *Memory) Set(name, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secrets[name] = secret
	return nil
}

// Delete removes the secret stored under name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.secrets, name)
	return nil
}

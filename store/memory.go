package store

import (
	"bytes"
	"sync"
)

// Memory is a DB kept entirely in memory. Values are JSON encoded exactly as
// they would be on disk.
type Memory struct {
	kv
	mem *memBackend
}

type memBackend struct {
	data map[string][]byte
	// err, when set, is returned by every write
	err error
	mu  sync.Mutex
}

func (m *memBackend) get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return bytes.Clone(m.data[key]), nil
}

func (m *memBackend) apply(ops ...op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	for _, o := range ops {
		if o.value == nil {
			delete(m.data, o.key)
			continue
		}

		m.data[o.key] = bytes.Clone(o.value)
	}

	return nil
}

// NewMemory returns an empty in-memory database.
func NewMemory() *Memory {
	b := &memBackend{data: make(map[string][]byte)}

	return &Memory{
		kv:  kv{b},
		mem: b,
	}
}

// Raw returns the encoded value stored under key.
func (m *Memory) Raw(key string) []byte {
	b, _ := m.mem.get(key)
	return b
}

// SetRaw stores an encoded value under key.
func (m *Memory) SetRaw(key string, value []byte) {
	_ = m.mem.apply(op{key: key, value: value})
}

// Has reports whether key is present.
func (m *Memory) Has(key string) bool {
	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	_, ok := m.mem.data[key]

	return ok
}

// FailWrites makes every subsequent write return err. Pass nil to restore
// normal behaviour.
func (m *Memory) FailWrites(err error) {
	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	m.mem.err = err
}

func (m *Memory) Close() error {
	return nil
}

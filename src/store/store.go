package store

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the whole-document persistence boundary. Production uses diskv-backed
// JSON files, tests use the in-memory implementation.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Keys() []string
}

// AdvancedTransform for storing KV pairs as nested JSON files
func AdvancedTransform(key string) *diskv.PathKey {
	path := strings.Split(key, "/")
	last := len(path) - 1
	return &diskv.PathKey{
		Path:     path[:last],
		FileName: path[last] + ".json",
	}
}

// InverseTransform for storing KV pairs
func InverseTransform(pathKey *diskv.PathKey) (key string) {
	txt := pathKey.FileName[len(pathKey.FileName)-5:]
	if txt != ".json" {
		panic("Invalid file found in storage folder!")
	}
	name := pathKey.FileName[:len(pathKey.FileName)-5]
	if len(pathKey.Path) == 0 {
		return name
	}
	return strings.Join(pathKey.Path, "/") + "/" + name
}

type diskStore struct {
	dv *diskv.Diskv
}

// NewDisk opens a file-backed store rooted at basePath.
func NewDisk(basePath string) Store {
	return &diskStore{
		dv: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: AdvancedTransform,
			InverseTransform:  InverseTransform,
			CacheSizeMax:      512 * 512,
		}),
	}
}

func (d *diskStore) Read(key string) ([]byte, error) {
	return d.dv.Read(key)
}

func (d *diskStore) Write(key string, value []byte) error {
	return d.dv.Write(key, value)
}

func (d *diskStore) Erase(key string) error {
	return d.dv.Erase(key)
}

func (d *diskStore) Keys() []string {
	var keys []string
	for k := range d.dv.Keys(nil) {
		keys = append(keys, k)
	}
	return keys
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory returns a Store backed by a plain map.
func NewMemory() Store {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *memStore) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *memStore) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// ReadJSON decodes the document at key into out. A missing or malformed
// document leaves out untouched and reports false; it is never a hard error.
func ReadJSON(s Store, key string, out any) bool {
	b, err := s.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false
	}
	return true
}

// WriteJSON marshals v and stores it at key.
func WriteJSON(s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(key, b)
}

package objectstore

import (
	"context"
	"fmt"
	"sort"
)

// MemoryStore is an in-memory Store for tests and offline runs.
type MemoryStore struct {
	bucket  string
	objects map[string][]byte

	// Fail, when set, makes every call return an UnavailableError.
	Fail error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(bucket string) *MemoryStore {
	return &MemoryStore{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

// Put adds an object.
func (m *MemoryStore) Put(key string, data []byte) {
	m.objects[key] = data
}

func (m *MemoryStore) ListImages(_ context.Context, prefix string) ([]string, error) {
	if m.Fail != nil {
		return nil, &UnavailableError{Op: "list", Err: m.Fail}
	}

	var keys []string
	for key := range m.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix && IsImageKey(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, string, error) {
	if m.Fail != nil {
		return nil, "", &UnavailableError{Op: "get " + key, Err: m.Fail}
	}

	data, ok := m.objects[key]
	if !ok {
		return nil, "", &UnavailableError{Op: "get " + key, Err: fmt.Errorf("key not found")}
	}
	return data, MIMETypeOf(key), nil
}

func (m *MemoryStore) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", m.bucket, key)
}

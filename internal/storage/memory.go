package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps objects in process. Used for local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]map[string]memoryObject
	baseURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{objects: make(map[string]map[string]memoryObject), baseURL: baseURL}
}

func (s *MemoryStore) List(_ context.Context, bucket, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for name := range s.objects[bucket] {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Upload(_ context.Context, bucket, name string, data []byte, contentType string, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	objs, ok := s.objects[bucket]
	if !ok {
		objs = make(map[string]memoryObject)
		s.objects[bucket] = objs
	}
	if _, exists := objs[name]; exists && !overwrite {
		return fmt.Errorf("%s/%s: %w", bucket, name, ErrAlreadyExists)
	}
	objs[name] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (s *MemoryStore) Download(_ context.Context, bucket, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[bucket][name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", bucket, name, ErrObjectNotFound)
	}
	return append([]byte(nil), obj.data...), nil
}

// ContentType reports the content type an object was stored with.
func (s *MemoryStore) ContentType(bucket, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[bucket][name]
	return obj.contentType, ok
}

func (s *MemoryStore) PublicURL(bucket, name string) string {
	return publicURL(s.baseURL, bucket, name)
}

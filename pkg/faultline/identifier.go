package faultline

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
)

const identifierCacheLimit = 1024

// identifierService hands out correlation IDs. The same error instance
// keeps the same ID for the lifetime of its handling episode, so the ID
// logged by Report matches the one rendered to the client.
type identifierService struct {
	mu  sync.Mutex
	ids map[any]string
}

func newIdentifierService() *identifierService {
	return &identifierService{ids: make(map[any]string)}
}

// identify returns the correlation ID for err, minting one on first use.
// It never fails.
func (s *identifierService) identify(err error) string {
	key, ok := identityKey(err)
	if !ok {
		return uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, found := s.ids[key]; found {
		return id
	}

	// Errors that are reported but never rendered would pin their IDs
	// forever without a cap.
	if len(s.ids) >= identifierCacheLimit {
		s.ids = make(map[any]string)
	}

	id := uuid.NewString()
	s.ids[key] = id

	return id
}

// release drops the cached ID once an episode completes.
func (s *identifierService) release(err error) {
	key, ok := identityKey(err)
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.ids, key)
	s.mu.Unlock()
}

// identityKey derives a map key representing the error instance itself,
// not its message. Pointer-shaped errors key on the pointer, comparable
// values on the value. Non-comparable values cannot be tracked and get a
// fresh ID per call.
func identityKey(err error) (any, bool) {
	if err == nil {
		return nil, false
	}

	v := reflect.ValueOf(err)

	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return v.Pointer(), true
	default:
	}

	if v.Comparable() {
		return err, true
	}

	return nil, false
}

// Package state carries values produced by one scenario step to later steps
// of the same scenario.
package state

import (
	"fmt"
	"math"
	"strconv"
)

// MissingKeyError is returned when a step reads a key no earlier step wrote
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("scenario state: key %q was never set", e.Key)
}

// Store is a scenario-scoped key-value mapping. A new Store is created for every
// scenario and is never shared, so it does no locking.
type Store struct {
	values map[string]any
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Set stores value under key, overwriting any previous value
func (s *Store) Set(key string, value any) {
	s.values[key] = value
}

// Get returns the value stored under key
func (s *Store) Get(key string) (any, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}

// Int returns the value stored under key coerced to an integer identifier
func (s *Store) Int(key string) (int, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case float64:
		if math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("scenario state: key %q holds %v, not an integer", key, n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("scenario state: key %q is not an integer: %w", key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("scenario state: key %q holds %T, not an integer", key, v)
	}
}

// Len returns the number of keys set
func (s *Store) Len() int {
	return len(s.values)
}

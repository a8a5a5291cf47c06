package property

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/firefly-engineering/berth-ctl/internal/errors"
)

// Checker is the part of a capability the store validates against.
type Checker interface {
	Name() string
	Supports(key string) bool
}

// Store holds a configuration's property values on top of its defaults.
// It assumes a single writer: values are set before bootstrap and only
// read afterwards.
type Store struct {
	capability Checker
	defaults   map[string]string
	values     map[string]string
}

// NewStore creates an empty store validated against capability.
func NewStore(capability Checker) *Store {
	return &Store{
		capability: capability,
		defaults:   make(map[string]string),
		values:     make(map[string]string),
	}
}

// SetDefault records the fallback value for key. Defaults are not checked
// against the capability.
func (s *Store) SetDefault(key, value string) {
	s.defaults[key] = value
}

// Set assigns value to key. It fails when the capability does not
// recognize key.
func (s *Store) Set(key, value string) error {
	if !s.capability.Supports(key) {
		return errors.UnsupportedProperty(key, s.capability.Name())
	}
	s.values[key] = value
	return nil
}

// Get returns the value set for key, or its default.
func (s *Store) Get(key string) (string, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	v, ok := s.defaults[key]
	return v, ok
}

// GetOrDefault returns the value for key, or fallback when it has neither
// a value nor a default.
func (s *Store) GetOrDefault(key, fallback string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// IsSet reports whether key has a non-empty value or default.
func (s *Store) IsSet(key string) bool {
	v, ok := s.Get(key)
	return ok && strings.TrimSpace(v) != ""
}

// Int parses the value of key as a decimal integer. ok is false when the
// key has no value.
func (s *Store) Int(key string) (n int, ok bool, err error) {
	v, ok := s.Get(key)
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, fmt.Errorf("property %s is not an integer: %q", key, v)
	}
	return n, true, nil
}

// Keys returns every key that has a value or a default, sorted.
func (s *Store) Keys() []string {
	seen := make(map[string]struct{}, len(s.defaults)+len(s.values))
	for k := range s.defaults {
		seen[k] = struct{}{}
	}
	for k := range s.values {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns the effective values as a new map.
func (s *Store) Snapshot() map[string]string {
	out := make(map[string]string, len(s.defaults)+len(s.values))
	for k, v := range s.defaults {
		out[k] = v
	}
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Default returns the default registered for key.
func (s *Store) Default(key string) (string, bool) {
	v, ok := s.defaults[key]
	return v, ok
}

// Rewrite replaces the effective value of a key that already has a value
// or a default. It is not checked against the capability because it only
// transforms values the store already holds.
func (s *Store) Rewrite(key, value string) bool {
	if _, ok := s.Get(key); !ok {
		return false
	}
	s.values[key] = value
	return true
}

// Package theme holds the light/dark display preference.
//
// A Store resolves its starting value from the persisted preference, then the
// host's stated preference, then Light. Every change is written to the
// key-value store first and only becomes current once that write succeeds.
package theme

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Theme is the display mode
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	// StorageKey is the key the preference is persisted under
	StorageKey = "theme"
	// Attribute is the presentation attribute the current theme is mirrored into
	Attribute = "data-theme"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Parse converts s to a Theme
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

// Valid reports whether t is Light or Dark
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// KeyValueStore persists the preference
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Applier mirrors the current theme into the presentation layer
type Applier interface {
	Apply(attribute string, t Theme)
}

// ApplierFunc adapts a function to Applier
type ApplierFunc func(attribute string, t Theme)

func (f ApplierFunc) Apply(attribute string, t Theme) { f(attribute, t) }

// SystemPreference reports the host's preferred theme, if it states one
type SystemPreference func() (Theme, bool)

// FromColorFGBG reads the COLORFGBG terminal convention ("fg;bg" or
// "fg;default;bg"). Backgrounds 0-6 and 8 are dark.
func FromColorFGBG(value string) (Theme, bool) {
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return "", false
	}
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return "", false
	}
	if bg <= 6 || bg == 8 {
		return Dark, true
	}
	return Light, true
}

// Store owns the current theme
type Store struct {
	mu      sync.Mutex
	kv      KeyValueStore
	applier Applier
	system  SystemPreference
	current Theme

	subscribers map[int]func(Theme)
	nextID      int
}

// NewStore resolves the starting theme and applies it before returning.
// applier and system may be nil.
func NewStore(kv KeyValueStore, applier Applier, system SystemPreference) *Store {
	s := &Store{
		kv:          kv,
		applier:     applier,
		system:      system,
		subscribers: make(map[int]func(Theme)),
	}
	s.current = s.resolve()
	s.apply(s.current)
	return s
}

func (s *Store) resolve() Theme {
	if s.kv != nil {
		stored, ok, err := s.kv.Get(StorageKey)
		switch {
		case err != nil:
			log.Warnf("Failed to read theme preference: %v", err)
		case ok:
			if t, err := Parse(stored); err == nil {
				return t
			}
			log.Debugf("Ignoring stored theme %q", stored)
		}
	}
	if s.system != nil {
		if t, ok := s.system(); ok && t.Valid() {
			return t
		}
	}
	return Light
}

func (s *Store) apply(t Theme) {
	if s.applier != nil {
		s.applier.Apply(Attribute, t)
	}
}

// Get returns the current theme
func (s *Store) Get() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Subscribe calls fn with the current theme now and again after every change.
// The returned func stops further calls.
func (s *Store) Subscribe(fn func(Theme)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// Toggle switches to the other theme and returns it
func (s *Store) Toggle() (Theme, error) {
	s.mu.Lock()
	next := s.current.Opposite()
	s.mu.Unlock()

	if err := s.Set(next); err != nil {
		return s.Get(), err
	}
	return next, nil
}

// Set persists t and makes it current
func (s *Store) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	s.mu.Lock()
	if s.kv != nil {
		if err := s.kv.Set(StorageKey, string(t)); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to persist theme: %w", err)
		}
	}
	s.current = t
	s.apply(t)
	subscribers := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(t)
	}
	return nil
}

// Init re-resolves the theme from the persisted and host preferences without
// writing anything, and returns the result.
func (s *Store) Init() Theme {
	s.mu.Lock()
	t := s.resolve()
	s.current = t
	s.apply(t)
	subscribers := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(t)
	}
	return t
}

// snapshot copies subscribers in registration order; callers hold mu
func (s *Store) snapshot() []func(Theme) {
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Theme), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subscribers[id])
	}
	return fns
}

// Package keytracker turns ebiten's level-triggered key state into
// just-pressed edges.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(ebiten.IsKeyPressed(key))
}

// Observe records the current pressed state and reports a rising edge.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Set tracks several keys by their ebiten key code.
type Set struct {
	keys map[ebiten.Key]*KeyStateTracker
}

// NewSet creates trackers for keys.
func NewSet(keys ...ebiten.Key) *Set {
	s := &Set{keys: make(map[ebiten.Key]*KeyStateTracker, len(keys))}
	for _, k := range keys {
		s.keys[k] = &KeyStateTracker{}
	}
	return s
}

// JustPressed reports a rising edge for key. Untracked keys never fire.
func (s *Set) JustPressed(key ebiten.Key) bool {
	t, ok := s.keys[key]
	if !ok {
		return false
	}
	return t.IsKeyJustPressed(key)
}

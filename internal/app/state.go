// Package app provides application state and events for the magnifier host.
package app

import (
	"sync"

	"image-magnifier/internal/imaging"
	"image-magnifier/internal/lens"
)

// EventType identifies different application events.
type EventType int

const (
	EventImageLoaded EventType = iota
	EventConfigChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the host-side application state: the loaded image and the
// current magnifier configuration.
type State struct {
	mu sync.RWMutex

	Layer  *imaging.Layer
	Config lens.Config

	listeners map[EventType][]EventListener
}

// NewState creates a new application state with the given configuration.
func NewState(cfg lens.Config) *State {
	return &State{
		Config:    cfg,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadImage loads the base image from the specified path and emits
// EventImageLoaded.
func (s *State) LoadImage(path string) error {
	layer, err := imaging.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Layer = layer
	s.Config.Src = path
	s.mu.Unlock()

	s.Emit(EventImageLoaded, layer)
	return nil
}

// LoadZoomImage attaches a separate zoom image used for the lens excerpt.
func (s *State) LoadZoomImage(path string) error {
	s.mu.Lock()
	layer := s.Layer
	s.mu.Unlock()
	if layer == nil {
		return nil
	}
	if err := layer.LoadZoom(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.Config.ZoomSrc = path
	s.mu.Unlock()

	s.Emit(EventImageLoaded, layer)
	return nil
}

// SetConfig replaces the magnifier configuration and emits
// EventConfigChanged.
func (s *State) SetConfig(cfg lens.Config) {
	s.mu.Lock()
	s.Config = cfg
	s.mu.Unlock()
	s.Emit(EventConfigChanged, cfg)
}

// CurrentConfig returns the current magnifier configuration.
func (s *State) CurrentConfig() lens.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Config
}

// CurrentLayer returns the loaded image layer, or nil.
func (s *State) CurrentLayer() *imaging.Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Layer
}

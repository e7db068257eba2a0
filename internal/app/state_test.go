package app

import (
	"testing"

	"image-magnifier/internal/lens"
)

func TestState_Events(t *testing.T) {
	s := NewState(lens.DefaultConfig(""))

	var got []EventType
	s.On(EventConfigChanged, func(data interface{}) {
		got = append(got, EventConfigChanged)
	})

	cfg := s.CurrentConfig()
	cfg.ZoomFactor = 3
	s.SetConfig(cfg)

	if len(got) != 1 {
		t.Fatalf("listener fired %d times, want 1", len(got))
	}
	if s.CurrentConfig().ZoomFactor != 3 {
		t.Errorf("ZoomFactor = %v, want 3", s.CurrentConfig().ZoomFactor)
	}
}

func TestState_LoadImageMissing(t *testing.T) {
	s := NewState(lens.DefaultConfig(""))
	if err := s.LoadImage("does-not-exist.png"); err == nil {
		t.Error("LoadImage of missing file must fail")
	}
	if s.CurrentLayer() != nil {
		t.Error("failed load must not install a layer")
	}
}

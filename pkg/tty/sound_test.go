package tty

import (
	"testing"

	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
)

func TestSoundDisabledIsSilent(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AudioConfig
	}{
		{"disabled", config.AudioConfig{SoundEnabled: false, SoundVolume: 0.8}},
		{"zero volume", config.AudioConfig{SoundEnabled: true, SoundVolume: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSound(tt.cfg)
			defer s.Close()

			if s.Enabled() {
				t.Fatal("speaker should not be initialized")
			}
			// 不应 panic
			s.HandleEvent(game.Event{Type: game.EventTargetHit})
			s.HandleEvent(game.Event{Type: game.EventEnded})
		})
	}
}

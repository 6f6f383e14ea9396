package game

import (
	"testing"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/sfx"
)

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		want   sfx.Cue
		wantOK bool
	}{
		{name: "start", event: Event{Type: EventStarted}, want: sfx.CueStart, wantOK: true},
		{name: "orb hit", event: Event{Type: EventTargetHit, Kind: components.TargetOrb}, want: sfx.CueHit, wantOK: true},
		{name: "power hit", event: Event{Type: EventTargetHit, Kind: components.TargetPower}, want: sfx.CuePower, wantOK: true},
		{name: "dilation", event: Event{Type: EventPowerUpActivated}, want: sfx.CueDilation, wantOK: true},
		{name: "expired", event: Event{Type: EventTargetExpired}, want: sfx.CueMiss, wantOK: true},
		{name: "ended", event: Event{Type: EventEnded}, want: sfx.CueEnd, wantOK: true},
		{name: "unknown", event: Event{Type: EventType(42)}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueForEvent(tt.event)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("CueForEvent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, config.AudioConfig{SoundEnabled: true, SoundVolume: 0.6})

	if am.PlayCue(sfx.CueHit) {
		t.Error("PlayCue() = true without an audio context")
	}
	// 静音模式下处理事件不应 panic
	am.HandleEvent(Event{Type: EventTargetHit})
}

func TestAudioManagerVolume(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{input: 0.5, want: 0.5},
		{input: -1, want: 0},
		{input: 3, want: 1},
	}

	am := NewAudioManager(nil, config.AudioConfig{SoundEnabled: true, SoundVolume: 2})
	if am.Volume() != 1 {
		t.Errorf("initial volume = %v, want clamped to 1", am.Volume())
	}

	for _, tt := range tests {
		am.SetVolume(tt.input)
		if am.Volume() != tt.want {
			t.Errorf("SetVolume(%v): got %v, want %v", tt.input, am.Volume(), tt.want)
		}
	}

	am.SetEnabled(false)
	if am.Enabled() {
		t.Error("SetEnabled(false) did not disable sound")
	}
}

package systems

import (
	"testing"

	"github.com/decker502/orbsurge/pkg/config"
)

func TestScoringSystem_OrbHits(t *testing.T) {
	s := NewScoringSystem(config.DefaultGameConfig().Scoring, nil)

	if got := s.OnOrbHit(); got != 12 {
		t.Errorf("first hit points = %d, want 12", got)
	}
	if s.Score() != 12 || s.Combo() != 1 {
		t.Errorf("after first hit score/combo = %d/%d, want 12/1", s.Score(), s.Combo())
	}

	if got := s.OnOrbHit(); got != 14 {
		t.Errorf("second hit points = %d, want 14", got)
	}
	if s.Score() != 26 || s.Combo() != 2 {
		t.Errorf("after second hit score/combo = %d/%d, want 26/2", s.Score(), s.Combo())
	}
}

func TestScoringSystem_Expiry(t *testing.T) {
	tests := []struct {
		name      string
		combo     int
		wantCombo int
	}{
		{name: "combo 2 drops to 0", combo: 2, wantCombo: 0},
		{name: "combo 5 drops to 3", combo: 5, wantCombo: 3},
		{name: "combo 1 clamps to 0", combo: 1, wantCombo: 0},
		{name: "combo 0 stays 0", combo: 0, wantCombo: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoringSystem(config.DefaultGameConfig().Scoring, nil)
			for i := 0; i < tt.combo; i++ {
				s.OnOrbHit()
			}
			score := s.Score()

			s.OnExpired()

			if s.Combo() != tt.wantCombo {
				t.Errorf("combo = %d, want %d", s.Combo(), tt.wantCombo)
			}
			if s.Score() != score {
				t.Errorf("expiry changed score from %d to %d", score, s.Score())
			}
		})
	}
}

func TestScoringSystem_PowerHit(t *testing.T) {
	w := newTestWorld(t)
	hud := NewHUDMessageSystem(w.scheduler, w.cfg.HUD.MessageDuration)
	s := NewScoringSystem(w.cfg.Scoring, hud)
	s.OnOrbHit()

	if got := s.OnPowerHit(); got != 40 {
		t.Errorf("power points = %d, want 40", got)
	}
	if s.Score() != 52 || s.Combo() != 3 {
		t.Errorf("score/combo = %d/%d, want 52/3", s.Score(), s.Combo())
	}
	if hud.Text() != "POWER UP +40" {
		t.Errorf("HUD = %q, want POWER UP +40", hud.Text())
	}
}

func TestScoringSystem_ComboMessage(t *testing.T) {
	w := newTestWorld(t)
	hud := NewHUDMessageSystem(w.scheduler, w.cfg.HUD.MessageDuration)
	s := NewScoringSystem(w.cfg.Scoring, hud)

	for i := 0; i < 6; i++ {
		s.OnOrbHit()
	}
	if hud.Text() != "" {
		t.Errorf("HUD = %q at combo 6, want empty", hud.Text())
	}

	s.OnOrbHit()
	if hud.Text() != "COMBO x7" {
		t.Errorf("HUD = %q at combo 7, want COMBO x7", hud.Text())
	}
}

func TestScoringSystem_Reset(t *testing.T) {
	s := NewScoringSystem(config.DefaultGameConfig().Scoring, nil)
	s.OnOrbHit()
	s.OnPowerHit()

	s.ResetCombo()
	if s.Combo() != 0 || s.Score() == 0 {
		t.Errorf("ResetCombo: score/combo = %d/%d", s.Score(), s.Combo())
	}

	s.Reset()
	if s.Combo() != 0 || s.Score() != 0 {
		t.Errorf("Reset: score/combo = %d/%d, want 0/0", s.Score(), s.Combo())
	}
}

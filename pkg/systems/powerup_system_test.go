package systems

import (
	"testing"
	"time"

	"github.com/decker502/orbsurge/pkg/components"
)

func TestPowerUpSystem_Lifecycle(t *testing.T) {
	w := newTestWorld(t)
	hud := NewHUDMessageSystem(w.scheduler, w.cfg.HUD.MessageDuration)
	p := NewPowerUpSystem(w.scheduler, w.cfg.PowerUp, hud, func() bool { return true })

	if p.Status() != components.PowerUpReady || p.TimeScale() != 1 {
		t.Fatalf("initial status/scale = %v/%v, want READY/1", p.Status(), p.TimeScale())
	}

	if !p.Activate() {
		t.Fatal("Activate() = false on a ready power-up")
	}
	if p.Status() != components.PowerUpActive {
		t.Errorf("status = %v, want ACTIVE", p.Status())
	}
	if p.TimeScale() != 0.35 {
		t.Errorf("TimeScale = %v, want 0.35", p.TimeScale())
	}
	if hud.Text() != "TIME DILATION" {
		t.Errorf("HUD = %q, want TIME DILATION", hud.Text())
	}

	state := p.State()
	if state.ActiveUntil == nil || *state.ActiveUntil != 3800*time.Millisecond {
		t.Errorf("ActiveUntil = %v, want 3.8s", state.ActiveUntil)
	}
	if state.ReadyAgainAt == nil || *state.ReadyAgainAt != 7*time.Second {
		t.Errorf("ReadyAgainAt = %v, want 7s", state.ReadyAgainAt)
	}

	// 重复激活无效
	if p.Activate() {
		t.Error("Activate() succeeded while ACTIVE")
	}

	w.scheduler.AdvanceTo(3799 * time.Millisecond)
	if !p.IsEffectActive() {
		t.Error("effect should still be active at 3799ms")
	}

	w.scheduler.AdvanceTo(3800 * time.Millisecond)
	if p.IsEffectActive() || p.TimeScale() != 1 {
		t.Errorf("effect should end at 3800ms (scale %v)", p.TimeScale())
	}
	if p.Status() != components.PowerUpRecharging {
		t.Errorf("status = %v, want RECHARGING", p.Status())
	}
	if p.Activate() {
		t.Error("Activate() succeeded while RECHARGING")
	}

	w.scheduler.AdvanceTo(6999 * time.Millisecond)
	if p.Status() == components.PowerUpReady {
		t.Error("power-up became ready before 7000ms")
	}

	w.scheduler.AdvanceTo(7000 * time.Millisecond)
	if p.Status() != components.PowerUpReady {
		t.Errorf("status = %v at 7000ms, want READY", p.Status())
	}
	if state := p.State(); state.ActiveUntil != nil || state.ReadyAgainAt != nil {
		t.Errorf("timestamps should be cleared when READY, got %+v", state)
	}
}

func TestPowerUpSystem_ActivateRequiresRunningSession(t *testing.T) {
	w := newTestWorld(t)
	running := false
	p := NewPowerUpSystem(w.scheduler, w.cfg.PowerUp, nil, func() bool { return running })

	if p.Activate() {
		t.Fatal("Activate() succeeded while session not running")
	}
	if p.Status() != components.PowerUpReady || w.scheduler.Pending() != 0 {
		t.Errorf("failed activation changed state: status=%v pending=%d", p.Status(), w.scheduler.Pending())
	}

	running = true
	if !p.Activate() {
		t.Error("Activate() failed once session is running")
	}
}

func TestPowerUpSystem_ForceReady(t *testing.T) {
	w := newTestWorld(t)
	p := NewPowerUpSystem(w.scheduler, w.cfg.PowerUp, nil, nil)

	p.Activate()
	w.scheduler.Advance(time.Second)
	p.ForceReady()

	if p.Status() != components.PowerUpReady || p.TimeScale() != 1 {
		t.Errorf("after ForceReady status/scale = %v/%v, want READY/1", p.Status(), p.TimeScale())
	}
	if w.scheduler.Pending() != 0 {
		t.Errorf("ForceReady left %d pending events", w.scheduler.Pending())
	}

	// 可以立刻再次激活，新的时刻以当前时间为基准
	if !p.Activate() {
		t.Fatal("Activate() failed after ForceReady")
	}
	if state := p.State(); *state.ReadyAgainAt != 8*time.Second {
		t.Errorf("ReadyAgainAt = %v, want 8s", *state.ReadyAgainAt)
	}
}

func TestPowerUpSystem_StateIsCopy(t *testing.T) {
	w := newTestWorld(t)
	p := NewPowerUpSystem(w.scheduler, w.cfg.PowerUp, nil, nil)
	p.Activate()

	state := p.State()
	*state.ActiveUntil = 0

	if !p.IsEffectActive() {
		t.Error("mutating State() copy affected the power-up")
	}
}

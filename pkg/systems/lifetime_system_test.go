package systems

import (
	"testing"
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

func TestLifetimeSystem_ExpiresAfterLifespan(t *testing.T) {
	w := newTestWorld(t)

	var expired []ecs.EntityID
	system := NewLifetimeSystem(w.em, w.scheduler, func(id ecs.EntityID, kind components.TargetKind) {
		if kind != components.TargetOrb {
			t.Errorf("expired kind = %v, want orb", kind)
		}
		expired = append(expired, id)
	})

	id := w.addTarget(components.TargetOrb, 100, 100, 0, 0, 38, 5)

	// age == lifespan 时尚未过期
	w.scheduler.Advance(5 * time.Second)
	if got := system.Update(); got != 0 {
		t.Fatalf("Update() at age 5s expired %d targets, want 0", got)
	}

	w.scheduler.Advance(time.Millisecond)
	if got := system.Update(); got != 1 {
		t.Fatalf("Update() after lifespan expired %d targets, want 1", got)
	}
	if len(expired) != 1 || expired[0] != id {
		t.Errorf("callback ids = %v, want [%d]", expired, id)
	}

	// 标记删除后重复 Update 不会再次回调
	if got := system.Update(); got != 0 {
		t.Errorf("repeated Update() expired %d targets, want 0", got)
	}

	w.em.RemoveMarkedEntities()
	if w.em.Exists(id) {
		t.Error("expired target should be removed")
	}
}

func TestLifetimeSystem_IgnoresParticles(t *testing.T) {
	w := newTestWorld(t)
	system := NewLifetimeSystem(w.em, w.scheduler, nil)

	particles := NewParticleSystem(w.em, w.scheduler, w.rng, w.cfg.Particles)
	particles.Burst(10, 10, 200, 3)

	w.scheduler.Advance(time.Minute)
	if got := system.Update(); got != 0 {
		t.Errorf("Update() expired %d particles, want 0 (particles have their own system)", got)
	}
}

func TestLifetimeSystem_NilCallback(t *testing.T) {
	w := newTestWorld(t)
	system := NewLifetimeSystem(w.em, w.scheduler, nil)
	w.addTarget(components.TargetPower, 100, 100, 0, 0, 46, 1)

	w.scheduler.Advance(2 * time.Second)
	if got := system.Update(); got != 1 {
		t.Errorf("Update() expired %d targets, want 1", got)
	}
}

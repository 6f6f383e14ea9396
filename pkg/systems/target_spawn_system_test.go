package systems

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

func TestTargetSpawnSystem_FillsToMaxPopulation(t *testing.T) {
	w := newTestWorld(t)
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)
	diff := Difficulty{Size: 38, SpeedMultiplier: 1, MaxPopulation: 5}

	if got := spawner.Update(diff); got != 5 {
		t.Fatalf("spawned %d targets, want 5", got)
	}
	if got := spawner.TargetCount(); got != 5 {
		t.Fatalf("TargetCount = %d, want 5", got)
	}

	// 已达上限，不再生成
	if got := spawner.Update(diff); got != 0 {
		t.Errorf("second Update spawned %d targets, want 0", got)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](w.em) {
		target, _ := ecs.GetComponent[*components.TargetComponent](w.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](w.em, id)

		if target.Kind != components.TargetOrb {
			t.Errorf("target %d kind = %v, want orb", id, target.Kind)
		}
		if target.Size != 38 {
			t.Errorf("target %d size = %v, want 38", id, target.Size)
		}
		if pos.X < 10 || pos.X > w.arena.Width-38-10 || pos.Y < 10 || pos.Y > w.arena.Height-38-10 {
			t.Errorf("target %d spawned out of bounds at (%v, %v)", id, pos.X, pos.Y)
		}
		if math.Abs(vel.VX) > 170 || math.Abs(vel.VY) > 170 {
			t.Errorf("target %d velocity (%v, %v) exceeds 170", id, vel.VX, vel.VY)
		}
		if lifetime.MaxLifetime < 5 || lifetime.MaxLifetime > 11 {
			t.Errorf("target %d lifespan %v outside [5, 11]", id, lifetime.MaxLifetime)
		}
		if target.Hue < 200 || target.Hue >= 285 || target.Hue != math.Floor(target.Hue) {
			t.Errorf("target %d hue %v is not an integer in [200, 285)", id, target.Hue)
		}
		if target.HasRing {
			t.Errorf("orb %d must not have a ring", id)
		}
	}
}

func TestTargetSpawnSystem_SpeedMultiplier(t *testing.T) {
	w := newTestWorld(t)
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)
	diff := Difficulty{Size: 30, SpeedMultiplier: 2, MaxPopulation: 11}

	spawner.Update(diff)

	faster := false
	for _, id := range ecs.GetEntitiesWith1[*components.VelocityComponent](w.em) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		if math.Abs(vel.VX) > 340 || math.Abs(vel.VY) > 340 {
			t.Errorf("velocity (%v, %v) exceeds 170*2", vel.VX, vel.VY)
		}
		if math.Abs(vel.VX) > 170 || math.Abs(vel.VY) > 170 {
			faster = true
		}
	}
	if !faster {
		t.Error("expected at least one of 11 targets to exceed the base speed range")
	}
}

func TestTargetSpawnSystem_UnknownArena(t *testing.T) {
	w := newTestWorld(t)
	w.arena.Width = 0
	w.arena.Height = 0
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)
	diff := Difficulty{Size: 38, SpeedMultiplier: 1, MaxPopulation: 5}

	if got := spawner.Update(diff); got != 0 {
		t.Fatalf("spawned %d targets with unknown arena, want 0", got)
	}

	// 布局完成后下一帧正常生成
	w.arena.Width = 720
	w.arena.Height = 340
	if got := spawner.Update(diff); got != 5 {
		t.Errorf("spawned %d targets after layout, want 5", got)
	}
}

func TestTargetSpawnSystem_ArenaTooSmall(t *testing.T) {
	w := newTestWorld(t)
	w.arena.Width = 50
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)

	if got := spawner.Update(Difficulty{Size: 38, SpeedMultiplier: 1, MaxPopulation: 5}); got != 0 {
		t.Errorf("spawned %d targets in a 50px arena, want 0", got)
	}
}

func TestTargetSpawnSystem_AtMostOnePowerTarget(t *testing.T) {
	w := newTestWorld(t)
	w.cfg.PowerTarget.SpawnChance = 1
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)
	diff := Difficulty{Size: 38, SpeedMultiplier: 1, MaxPopulation: 5}

	for i := 0; i < 10; i++ {
		spawner.Update(diff)
		if got := countTargets(w.em, components.TargetPower); got != 1 {
			t.Fatalf("tick %d: %d power targets, want exactly 1", i, got)
		}
	}
	if !spawner.HasPowerTarget() {
		t.Error("HasPowerTarget = false")
	}
	if _, ok := spawner.SpawnPower(diff); ok {
		t.Error("SpawnPower succeeded while a power target exists")
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](w.em) {
		target, _ := ecs.GetComponent[*components.TargetComponent](w.em, id)
		if target.Kind != components.TargetPower {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](w.em, id)

		if target.Size != 46 {
			t.Errorf("power size = %v, want 46", target.Size)
		}
		if target.Hue != 150 || !target.HasRing {
			t.Errorf("power hue/ring = %v/%v, want 150/true", target.Hue, target.HasRing)
		}
		if math.Abs(vel.VX) > 170*0.9 || math.Abs(vel.VY) > 170*0.9 {
			t.Errorf("power velocity (%v, %v) exceeds 0.9*170", vel.VX, vel.VY)
		}
		if lifetime.MaxLifetime < 5.5 || lifetime.MaxLifetime > 8 {
			t.Errorf("power lifespan %v outside [5.5, 8]", lifetime.MaxLifetime)
		}
	}
}

func TestTargetSpawnSystem_BornAtUsesLogicalClock(t *testing.T) {
	w := newTestWorld(t)
	spawner := NewTargetSpawnSystem(w.em, w.scheduler, w.rng, w.arena, w.cfg)
	w.scheduler.Advance(1500 * time.Millisecond)

	id, ok := spawner.SpawnOrb(Difficulty{Size: 20, SpeedMultiplier: 1, MaxPopulation: 5})
	if !ok {
		t.Fatal("SpawnOrb failed")
	}
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](w.em, id)
	if lifetime.BornAt != w.scheduler.Now() {
		t.Errorf("BornAt = %v, want %v", lifetime.BornAt, w.scheduler.Now())
	}
}

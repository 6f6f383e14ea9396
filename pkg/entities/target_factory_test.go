package entities

import (
	"testing"
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

func TestNewTargetEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewTargetEntity(em, TargetSpec{
		Kind:     components.TargetPower,
		X:        40,
		Y:        50,
		VX:       -100,
		VY:       30,
		Size:     46,
		BornAt:   2 * time.Second,
		Lifespan: 6.5,
		Hue:      150,
		HasRing:  true,
	})

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 40 || pos.Y != 50 {
		t.Errorf("PositionComponent mismatch: %+v", pos)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok || vel.VX != -100 || vel.VY != 30 {
		t.Errorf("VelocityComponent mismatch: %+v", vel)
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](em, id)
	if !ok {
		t.Fatal("TargetComponent missing")
	}
	if target.Kind != components.TargetPower || target.Size != 46 || !target.HasRing {
		t.Errorf("TargetComponent mismatch: %+v", target)
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.BornAt != 2*time.Second || lifetime.MaxLifetime != 6.5 || lifetime.IsExpired {
		t.Errorf("LifetimeComponent mismatch: %+v", lifetime)
	}

	clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id)
	if !ok || clickable.Width != 46 || clickable.Height != 46 || !clickable.IsEnabled {
		t.Errorf("ClickableComponent mismatch: %+v", clickable)
	}
}

func TestNewParticleEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewParticleEntity(em, ParticleSpec{
		X: 10, Y: 20, VX: 5, VY: -5, Hue: 230, Size: 3, Lifespan: 0.5,
	})

	particle, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
	if !ok {
		t.Fatal("ParticleComponent missing")
	}
	if particle.Alpha != 1 {
		t.Errorf("new particle Alpha: got %v, want 1", particle.Alpha)
	}
	if ecs.HasComponent[*components.TargetComponent](em, id) {
		t.Error("particle must not be a target")
	}
}

package entities

import (
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// ParticleSpec 创建单个粒子所需的参数
type ParticleSpec struct {
	X, Y     float64 // 粒子中心
	VX, VY   float64
	Hue      float64
	Size     float64
	BornAt   time.Duration
	Lifespan float64 // 秒
}

// NewParticleEntity creates a single burst particle entity.
// Particles start fully opaque; ParticleSystem fades them out over their lifespan.
func NewParticleEntity(em *ecs.EntityManager, spec ParticleSpec) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
	})

	ecs.AddComponent(em, id, &components.ParticleComponent{
		VelocityX: spec.VX,
		VelocityY: spec.VY,
		Alpha:     1,
		Hue:       spec.Hue,
		Size:      spec.Size,
		BornAt:    spec.BornAt,
		Lifetime:  spec.Lifespan,
	})

	return id
}

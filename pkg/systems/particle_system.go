package systems

import (
	"math/rand"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/ecs"
	"github.com/decker502/orbsurge/pkg/entities"
)

// ParticleSystem 管理命中时的粒子爆发
//
// 粒子只用于表现：不受时间膨胀影响，也不参与计分。
// 会话暂停或结束后粒子仍然继续运动直到消失。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *clock.Scheduler
	rng           *rand.Rand
	config        config.ParticleConfig
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, scheduler *clock.Scheduler, rng *rand.Rand, cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		scheduler:     scheduler,
		rng:           rng,
		config:        cfg,
	}
}

// Burst 在 (x, y) 处生成 count 个粒子
// 返回生成的粒子ID（按创建顺序）
func (ps *ParticleSystem) Burst(x, y, hue float64, count int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, count)
	now := ps.scheduler.Now()

	for i := 0; i < count; i++ {
		id := entities.NewParticleEntity(ps.entityManager, entities.ParticleSpec{
			X:        x,
			Y:        y,
			VX:       randRange(ps.rng, -ps.config.Speed, ps.config.Speed),
			VY:       randRange(ps.rng, -ps.config.Speed, ps.config.Speed),
			Hue:      hue,
			Size:     randRange(ps.rng, ps.config.SizeMin, ps.config.SizeMax),
			BornAt:   now,
			Lifespan: randRange(ps.rng, ps.config.LifespanMin, ps.config.LifespanMax),
		})
		ids = append(ids, id)
	}

	return ids
}

// Update 推进所有粒子
// 年龄超过寿命的粒子被标记删除，其余粒子移动、衰减速度并更新透明度
func (ps *ParticleSystem) Update(dt float64) {
	now := ps.scheduler.Now()

	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](ps.entityManager)
	for _, id := range entities {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)

		age := (now - particle.BornAt).Seconds()
		if age > particle.Lifetime {
			particle.Alpha = 0
			ps.entityManager.DestroyEntity(id)
			continue
		}

		pos.X += particle.VelocityX * dt
		pos.Y += particle.VelocityY * dt

		particle.Alpha = clampFloat(1-age/particle.Lifetime, 0, 1)

		// 每帧衰减一次
		particle.VelocityX *= ps.config.Damping
		particle.VelocityY *= ps.config.Damping
	}
}

// ParticleCount 返回当前粒子数量
func (ps *ParticleSystem) ParticleCount() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager))
}

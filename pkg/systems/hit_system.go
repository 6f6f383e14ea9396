package systems

import (
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// HitSystem 处理外部传入的点击
//
// 目标ID可能已经过期、已被前一次点击消耗或从未存在，
// 这些情况一律忽略，不产生分数、连击或粒子副作用。
type HitSystem struct {
	em        *ecs.EntityManager
	particles *ParticleSystem
	scoring   *ScoringSystem
	powerUp   *PowerUpSystem
	isRunning func() bool

	orbBurst   int
	powerBurst int
}

// NewHitSystem 创建点击处理系统
// isRunning 为 nil 时视为始终运行
func NewHitSystem(em *ecs.EntityManager, particles *ParticleSystem, scoring *ScoringSystem, powerUp *PowerUpSystem, isRunning func() bool, cfg *config.GameConfig) *HitSystem {
	return &HitSystem{
		em:         em,
		particles:  particles,
		scoring:    scoring,
		powerUp:    powerUp,
		isRunning:  isRunning,
		orbBurst:   cfg.Orb.BurstCount,
		powerBurst: cfg.PowerTarget.BurstCount,
	}
}

// Resolve 处理对目标 id 的点击，返回点击是否生效
func (s *HitSystem) Resolve(id ecs.EntityID) bool {
	if s.isRunning != nil && !s.isRunning() {
		return false
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](s.em, id)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return false
	}
	if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id); ok && lifetime.IsExpired {
		return false
	}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.em, id); ok && !clickable.IsEnabled {
		return false
	}

	// 立即移除，同一ID的第二次点击会落到上面的 !ok 分支
	kind := target.Kind
	cx := pos.X + target.Size/2
	cy := pos.Y + target.Size/2
	hue := target.Hue
	s.em.DestroyEntity(id)
	s.em.RemoveMarkedEntities()

	if kind == components.TargetPower {
		s.particles.Burst(cx, cy, hue, s.powerBurst)
		// 先激活再计分，计分提示覆盖激活提示
		if s.powerUp != nil {
			s.powerUp.Activate()
		}
		s.scoring.OnPowerHit()
	} else {
		s.particles.Burst(cx, cy, hue, s.orbBurst)
		s.scoring.OnOrbHit()
	}

	return true
}

// TargetAt 返回包含点 (x, y) 的最上层目标（ID 最大者）
// 坐标为场地坐标
func (s *HitSystem) TargetAt(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.TargetComponent,
		*components.ClickableComponent,
	](s.em)

	// 后生成的目标绘制在上层，倒序查找
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.em, id)
		if !clickable.IsEnabled {
			continue
		}

		rx := clickable.Width / 2
		ry := clickable.Height / 2
		if rx <= 0 || ry <= 0 {
			continue
		}
		dx := (x - (pos.X + rx)) / rx
		dy := (y - (pos.Y + ry)) / ry
		if dx*dx+dy*dy <= 1 {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

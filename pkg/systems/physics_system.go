package systems

import (
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// PhysicsSystem 目标运动积分
//
// 每帧按 dt 和时间倍率推进目标位置，碰到场地边界时反弹。
// 积分后位置始终位于 [WallMargin, dim-size-WallMargin] 内，
// 即使 dt 很大也不会穿出场地。
type PhysicsSystem struct {
	em    *ecs.EntityManager
	arena *components.ArenaComponent
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - arena: 场地尺寸（与生成系统共享）
func NewPhysicsSystem(em *ecs.EntityManager, arena *components.ArenaComponent) *PhysicsSystem {
	return &PhysicsSystem{
		em:    em,
		arena: arena,
	}
}

// Update 推进所有目标
//
// 参数:
//   - dt: 帧间隔（秒）
//   - timeScale: 目标速度倍率（时间膨胀生效时小于 1）
func (ps *PhysicsSystem) Update(dt, timeScale float64) {
	if ps.arena == nil || ps.arena.Width <= 0 || ps.arena.Height <= 0 {
		return
	}

	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.TargetComponent,
	](ps.em)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		target, _ := ecs.GetComponent[*components.TargetComponent](ps.em, id)

		pos.X += vel.VX * dt * timeScale
		pos.Y += vel.VY * dt * timeScale

		pos.X, vel.VX = reflectAxis(pos.X, vel.VX, ps.arena.WallMargin, ps.arena.Width-target.Size-ps.arena.WallMargin)
		pos.Y, vel.VY = reflectAxis(pos.Y, vel.VY, ps.arena.WallMargin, ps.arena.Height-target.Size-ps.arena.WallMargin)
	}
}

// reflectAxis 在单个轴上处理边界反弹
// 只有速度朝外时才反向，避免贴边目标每帧来回翻转
// max < min（场地比目标还小）时位置固定在 min
func reflectAxis(p, v, min, max float64) (float64, float64) {
	if max < min {
		max = min
	}
	if p <= min {
		if v < 0 {
			v = -v
		}
		return min, v
	}
	if p >= max {
		if v > 0 {
			v = -v
		}
		return max, v
	}
	return p, v
}

package systems

import (
	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// ExpiredFunc 目标未被击中而过期时的回调
type ExpiredFunc func(id ecs.EntityID, kind components.TargetKind)

// LifetimeSystem 管理目标的生命周期
// 年龄超过 MaxLifetime 的目标被标记删除，并通知计分系统
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *clock.Scheduler
	onExpired     ExpiredFunc
}

// NewLifetimeSystem 创建一个新的生命周期系统
// onExpired 可以为 nil
func NewLifetimeSystem(em *ecs.EntityManager, scheduler *clock.Scheduler, onExpired ExpiredFunc) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		scheduler:     scheduler,
		onExpired:     onExpired,
	}
}

// Update 检查所有目标的年龄
// 返回本次过期的目标数量
func (s *LifetimeSystem) Update() int {
	now := s.scheduler.Now()
	expired := 0

	entities := ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.TargetComponent](s.entityManager)
	for _, id := range entities {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.IsExpired {
			continue
		}

		age := (now - lifetime.BornAt).Seconds()
		if age <= lifetime.MaxLifetime {
			continue
		}

		lifetime.IsExpired = true
		s.entityManager.DestroyEntity(id)
		expired++

		if s.onExpired != nil {
			target, _ := ecs.GetComponent[*components.TargetComponent](s.entityManager, id)
			s.onExpired(id, target.Kind)
		}
	}

	return expired
}

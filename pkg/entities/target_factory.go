package entities

import (
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// TargetSpec 创建目标实体所需的全部参数
// 随机数的抽取由生成系统负责，工厂只负责组装组件
type TargetSpec struct {
	Kind       components.TargetKind
	X, Y       float64 // 包围盒左上角
	VX, VY     float64 // 速度（像素/秒）
	Size       float64 // 直径
	BornAt     time.Duration
	Lifespan   float64 // 秒
	Hue        float64
	HasRing    bool
	HasSparkle bool
}

// NewTargetEntity 创建一个可点击目标实体（光球或能量核心）
// 参数:
//   - manager: EntityManager 实例
//   - spec: 目标参数
//
// 返回: 创建的实体ID
func NewTargetEntity(manager *ecs.EntityManager, spec TargetSpec) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
	})

	ecs.AddComponent(manager, id, &components.VelocityComponent{
		VX: spec.VX,
		VY: spec.VY,
	})

	ecs.AddComponent(manager, id, &components.TargetComponent{
		Kind:       spec.Kind,
		Size:       spec.Size,
		Hue:        spec.Hue,
		HasRing:    spec.HasRing,
		HasSparkle: spec.HasSparkle,
	})

	ecs.AddComponent(manager, id, &components.LifetimeComponent{
		BornAt:      spec.BornAt,
		MaxLifetime: spec.Lifespan,
		IsExpired:   false,
	})

	// 可点击区域与目标包围盒一致
	ecs.AddComponent(manager, id, &components.ClickableComponent{
		Width:     spec.Size,
		Height:    spec.Size,
		IsEnabled: true,
	})

	return id
}

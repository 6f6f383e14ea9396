package game

import (
	"time"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/ecs"
)

// TargetView 目标的只读副本
type TargetView struct {
	ID         ecs.EntityID
	Kind       components.TargetKind
	X, Y       float64 // 包围盒左上角（场地坐标）
	VX, VY     float64
	Size       float64
	Hue        float64
	HasRing    bool
	HasSparkle bool
	Age        float64 // 秒
	Lifespan   float64 // 秒
}

// ParticleView 粒子的只读副本
type ParticleView struct {
	ID    ecs.EntityID
	X, Y  float64 // 粒子中心
	Size  float64
	Hue   float64
	Alpha float64
}

// HUDView HUD 字段
type HUDView struct {
	Status        SessionStatus
	Running       bool
	Paused        bool
	TimeLeft      int
	Score         int
	Combo         int
	Best          int
	PowerUp       components.PowerUpStatus
	EffectActive  bool
	Message       string
	MessagePulse  int
	TargetCount   int
	ParticleCount int
}

// Snapshot 一帧的渲染数据
// 所有切片都是新分配的，修改快照不会影响会话
type Snapshot struct {
	Time        time.Duration
	ArenaWidth  float64
	ArenaHeight float64
	Targets     []TargetView   // 按 ID 升序（即绘制顺序）
	Particles   []ParticleView // 按 ID 升序
	HUD         HUDView
}

// Snapshot 生成当前状态的只读快照
func (s *Session) Snapshot() Snapshot {
	now := s.sched.Now()

	targetIDs := ecs.GetEntitiesWith3[
		*components.TargetComponent,
		*components.PositionComponent,
		*components.LifetimeComponent,
	](s.em)

	targets := make([]TargetView, 0, len(targetIDs))
	for _, id := range targetIDs {
		target, _ := ecs.GetComponent[*components.TargetComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)

		view := TargetView{
			ID:         id,
			Kind:       target.Kind,
			X:          pos.X,
			Y:          pos.Y,
			Size:       target.Size,
			Hue:        target.Hue,
			HasRing:    target.HasRing,
			HasSparkle: target.HasSparkle,
			Age:        (now - lifetime.BornAt).Seconds(),
			Lifespan:   lifetime.MaxLifetime,
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			view.VX = vel.VX
			view.VY = vel.VY
		}
		targets = append(targets, view)
	}

	particleIDs := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.em)
	particles := make([]ParticleView, 0, len(particleIDs))
	for _, id := range particleIDs {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		particles = append(particles, ParticleView{
			ID:    id,
			X:     pos.X,
			Y:     pos.Y,
			Size:  particle.Size,
			Hue:   particle.Hue,
			Alpha: particle.Alpha,
		})
	}

	return Snapshot{
		Time:        now,
		ArenaWidth:  s.arena.Width,
		ArenaHeight: s.arena.Height,
		Targets:     targets,
		Particles:   particles,
		HUD: HUDView{
			Status:        s.status,
			Running:       s.running,
			Paused:        s.IsPaused(),
			TimeLeft:      s.timeLeft,
			Score:         s.scoring.Score(),
			Combo:         s.scoring.Combo(),
			Best:          s.best,
			PowerUp:       s.powerUp.Status(),
			EffectActive:  s.powerUp.IsEffectActive(),
			Message:       s.hud.Text(),
			MessagePulse:  s.hud.Pulse(),
			TargetCount:   len(targets),
			ParticleCount: len(particles),
		},
	}
}

package systems

import (
	"log"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
)

// PowerUpSystem 时间膨胀能力状态机
//
//	Ready --Activate--> Active --activeUntil--> Recharging --readyAgainAt--> Ready
//
// 两个时刻都以激活时刻为基准调度在逻辑时钟上，冷却（7s）严格长于效果（3.8s）。
// 会话结束或重置时 ForceReady 取消待触发事件并回到 Ready。
type PowerUpSystem struct {
	scheduler *clock.Scheduler
	config    config.PowerUpConfig
	hud       *HUDMessageSystem
	// canActivate 返回会话是否处于运行状态
	canActivate func() bool

	state       components.PowerUpComponent
	activeTimer clock.TimerID
	readyTimer  clock.TimerID
}

// NewPowerUpSystem 创建时间膨胀系统
// hud 和 canActivate 可以为 nil（canActivate 为 nil 时视为始终可激活）
func NewPowerUpSystem(scheduler *clock.Scheduler, cfg config.PowerUpConfig, hud *HUDMessageSystem, canActivate func() bool) *PowerUpSystem {
	return &PowerUpSystem{
		scheduler:   scheduler,
		config:      cfg,
		hud:         hud,
		canActivate: canActivate,
		state:       components.PowerUpComponent{Status: components.PowerUpReady},
	}
}

// Activate 激活时间膨胀
// 只有状态为 Ready 且会话正在运行时生效，否则返回 false 且不改变任何状态
func (p *PowerUpSystem) Activate() bool {
	if p.canActivate != nil && !p.canActivate() {
		return false
	}
	if p.state.Status != components.PowerUpReady {
		return false
	}

	now := p.scheduler.Now()
	activeUntil := now + p.config.ActiveDuration
	readyAgainAt := now + p.config.Cooldown

	p.state = components.PowerUpComponent{
		Status:       components.PowerUpActive,
		ActiveUntil:  &activeUntil,
		ReadyAgainAt: &readyAgainAt,
	}

	p.activeTimer = p.scheduler.After(p.config.ActiveDuration, p.onEffectEnd)
	p.readyTimer = p.scheduler.After(p.config.Cooldown, p.onRecharged)

	if p.hud != nil {
		p.hud.Show("TIME DILATION")
	}
	log.Printf("[PowerUp] Activated at %v, effect until %v, ready again at %v", now, activeUntil, readyAgainAt)
	return true
}

func (p *PowerUpSystem) onEffectEnd() {
	p.activeTimer = 0
	p.state.ActiveUntil = nil
	if p.state.Status == components.PowerUpActive {
		p.state.Status = components.PowerUpRecharging
	}
}

func (p *PowerUpSystem) onRecharged() {
	p.readyTimer = 0
	p.state.ReadyAgainAt = nil
	p.state.Status = components.PowerUpReady
	log.Printf("[PowerUp] Ready again at %v", p.scheduler.Now())
}

// ForceReady 取消所有待触发事件并回到 Ready
func (p *PowerUpSystem) ForceReady() {
	p.scheduler.Cancel(p.activeTimer)
	p.scheduler.Cancel(p.readyTimer)
	p.activeTimer = 0
	p.readyTimer = 0
	p.state = components.PowerUpComponent{Status: components.PowerUpReady}
}

// IsEffectActive 检查减速效果当前是否生效
func (p *PowerUpSystem) IsEffectActive() bool {
	return p.state.Status == components.PowerUpActive &&
		p.state.ActiveUntil != nil &&
		p.scheduler.Now() < *p.state.ActiveUntil
}

// TimeScale 返回目标运动的时间倍率
func (p *PowerUpSystem) TimeScale() float64 {
	if p.IsEffectActive() {
		return p.config.TimeScale
	}
	return 1
}

// Status 返回当前状态
func (p *PowerUpSystem) Status() components.PowerUpStatus {
	return p.state.Status
}

// State 返回状态副本（时刻指针也会被复制）
func (p *PowerUpSystem) State() components.PowerUpComponent {
	state := p.state
	if state.ActiveUntil != nil {
		v := *state.ActiveUntil
		state.ActiveUntil = &v
	}
	if state.ReadyAgainAt != nil {
		v := *state.ReadyAgainAt
		state.ReadyAgainAt = &v
	}
	return state
}

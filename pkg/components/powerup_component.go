package components

import "time"

// PowerUpStatus 时间膨胀能力状态
type PowerUpStatus int

const (
	// PowerUpReady 可以激活
	PowerUpReady PowerUpStatus = iota
	// PowerUpActive 减速效果生效中
	PowerUpActive
	// PowerUpRecharging 效果已结束，冷却中
	PowerUpRecharging
)

// String 返回状态的显示名称
func (s PowerUpStatus) String() string {
	switch s {
	case PowerUpReady:
		return "READY"
	case PowerUpActive:
		return "ACTIVE"
	case PowerUpRecharging:
		return "RECHARGING"
	default:
		return "UNKNOWN"
	}
}

// PowerUpComponent 时间膨胀能力的状态数据（每局一份）
//
// ActiveUntil / ReadyAgainAt 为 nil 表示没有对应的待触发时刻
type PowerUpComponent struct {
	Status       PowerUpStatus
	ActiveUntil  *time.Duration // 减速效果结束时刻
	ReadyAgainAt *time.Duration // 能力重新可用时刻
}

package components

import "time"

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如未被击中的目标)
type LifetimeComponent struct {
	BornAt      time.Duration // 创建时刻（逻辑时间）
	MaxLifetime float64       // 最大生命周期(秒)
	IsExpired   bool          // 是否已过期
}

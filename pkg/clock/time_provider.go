// Package clock 提供游戏的时间源与逻辑时钟
//
// 所有与时间相关的行为（每帧积分、1Hz 倒计时、能力冷却、HUD 消息自动清除）
// 都挂在同一个 Scheduler 上，由调用方推进，不依赖真实定时器。
// 测试中使用 MockTimeProvider 即可得到完全确定的结果。
package clock

import "time"

// TimeProvider 时间源接口
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider 返回系统时间（带单调时钟读数）
type RealTimeProvider struct{}

// NewRealTimeProvider 创建真实时间源
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now 返回当前系统时间
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package clock

import "time"

// FrameClock 把连续的时间读数转换为帧间隔（秒）
//
// 显示刷新率不受引擎控制（30~144Hz 甚至不规则），
// 所以每帧的 dt 都按真实间隔计算，不假设固定步长。
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewFrameClock 创建帧时钟
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider}
}

// Delta 返回距上一次调用经过的秒数
// 第一次调用返回 0；时间回拨时返回 0
func (fc *FrameClock) Delta() float64 {
	now := fc.provider.Now()
	if !fc.started {
		fc.started = true
		fc.last = now
		return 0
	}

	elapsed := now.Sub(fc.last)
	fc.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}

// Restart 丢弃上一次读数，下一次 Delta 返回 0
// 用于长时间挂起后恢复，避免一次性补算巨大的 dt
func (fc *FrameClock) Restart() {
	fc.started = false
}

package systems

import (
	"time"

	"github.com/decker502/orbsurge/pkg/clock"
)

// HUDMessageSystem 管理 HUD 上的临时提示文本
//
// 每条提示在显示 duration 后自动清除；新提示会替换旧提示并重新计时。
type HUDMessageSystem struct {
	scheduler *clock.Scheduler
	duration  time.Duration
	text      string
	pulse     int // 每次 Show 递增，前端用来触发闪烁动画
	clearID   clock.TimerID
}

// NewHUDMessageSystem 创建 HUD 提示系统
func NewHUDMessageSystem(scheduler *clock.Scheduler, duration time.Duration) *HUDMessageSystem {
	return &HUDMessageSystem{
		scheduler: scheduler,
		duration:  duration,
	}
}

// Show 显示提示，并在 duration 后清除
func (h *HUDMessageSystem) Show(text string) {
	h.text = text
	h.pulse++

	h.scheduler.Cancel(h.clearID)
	h.clearID = h.scheduler.After(h.duration, func() {
		h.text = ""
		h.clearID = 0
	})
}

// Clear 立即清除提示并取消待触发的清除事件
func (h *HUDMessageSystem) Clear() {
	h.scheduler.Cancel(h.clearID)
	h.clearID = 0
	h.text = ""
}

// Text 返回当前提示文本（无提示时为空字符串）
func (h *HUDMessageSystem) Text() string {
	return h.text
}

// Pulse 返回提示计数
func (h *HUDMessageSystem) Pulse() int {
	return h.pulse
}

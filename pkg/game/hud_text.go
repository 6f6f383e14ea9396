package game

import (
	"fmt"

	"github.com/decker502/orbsurge/pkg/components"
)

// StatusLine 返回 HUD 第一行：时间、分数、连击、最高分
func (h HUDView) StatusLine() string {
	return fmt.Sprintf("TIME %02d  SCORE %d  COMBO x%d  BEST %d", h.TimeLeft, h.Score, h.Combo, h.Best)
}

// PowerLine 返回时间膨胀能力的状态行
func (h HUDView) PowerLine() string {
	switch h.PowerUp {
	case components.PowerUpActive:
		return "DILATION ACTIVE"
	case components.PowerUpRecharging:
		return "DILATION RECHARGING"
	default:
		return "DILATION READY [SPACE]"
	}
}

// Banner 返回场地中央的提示文本
// 有临时消息时优先显示消息，否则根据会话状态给出提示
func (h HUDView) Banner() string {
	if h.Message != "" {
		return h.Message
	}
	switch {
	case h.Status == StatusIdle:
		return "PRESS ENTER TO START"
	case h.Status == StatusEnded:
		return "PRESS R TO PLAY AGAIN"
	case h.Paused:
		return "PAUSED  [R] RESTART"
	default:
		return ""
	}
}

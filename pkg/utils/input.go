// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerJustPressed 检查本帧是否刚刚发生点击或触摸
// 触摸优先于鼠标，返回按下位置（屏幕坐标）
func PointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// sessionKeys 键盘按键到会话按键名的映射
// 名称与 Session.HandleKey 接受的名称一致
var sessionKeys = map[ebiten.Key]string{
	ebiten.KeyR:     "r",
	ebiten.KeyS:     "s",
	ebiten.KeySpace: "space",
}

// SessionKeyName 返回按键对应的会话按键名
func SessionKeyName(key ebiten.Key) (string, bool) {
	name, ok := sessionKeys[key]
	return name, ok
}

// JustPressedSessionKeys 返回本帧刚按下的会话按键名（顺序与 ebiten 报告的顺序一致）
func JustPressedSessionKeys() []string {
	keys := inpututil.AppendJustPressedKeys(nil)
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if name, ok := SessionKeyName(key); ok {
			names = append(names, name)
		}
	}
	return names
}

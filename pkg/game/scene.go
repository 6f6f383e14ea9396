package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (currently only the arena).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在程序退出或被替换时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 游戏窗口关闭
//   - SceneManager.SwitchTo 切换到其他场景
type Closer interface {
	Close()
}

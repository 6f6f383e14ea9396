package config

// 布局配置常量
// 本文件定义了窗口与场地在屏幕上的布局参数

const (
	// GameWindowWidth 是游戏的逻辑屏幕宽度
	GameWindowWidth = 760

	// GameWindowHeight 是游戏的逻辑屏幕高度
	GameWindowHeight = 420

	// ArenaOffsetX 是场地左上角在屏幕中的X坐标
	ArenaOffsetX = 20.0

	// ArenaOffsetY 是场地左上角在屏幕中的Y坐标
	// 场地上方留给 HUD 文本
	ArenaOffsetY = 60.0

	// ArenaDefaultWidth 是场地的默认宽度
	ArenaDefaultWidth = GameWindowWidth - 2*ArenaOffsetX // 720

	// ArenaDefaultHeight 是场地的默认高度（与原版网页小游戏一致）
	ArenaDefaultHeight = 340.0
)

// ArenaSizeForScreen 根据逻辑屏幕尺寸计算场地尺寸
// 屏幕过小时返回 0，表示尺寸未知
func ArenaSizeForScreen(screenWidth, screenHeight int) (width, height float64) {
	width = float64(screenWidth) - 2*ArenaOffsetX
	height = float64(screenHeight) - ArenaOffsetY - ArenaOffsetX
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// ScreenToArena 把屏幕坐标转换为场地坐标
func ScreenToArena(x, y int) (float64, float64) {
	return float64(x) - ArenaOffsetX, float64(y) - ArenaOffsetY
}

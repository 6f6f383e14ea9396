package components

// ArenaComponent 场地尺寸与边距
// Width/Height 为 0 表示前端尚未完成布局
type ArenaComponent struct {
	Width       float64
	Height      float64
	SpawnMargin float64 // 生成位置离边缘的最小距离
	WallMargin  float64 // 反弹边界离边缘的距离
}

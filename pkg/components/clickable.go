package components

// ClickableComponent 标记实体可以被指针点击
// 可点击区域是以包围盒为外切矩形的圆（目标在画面上是圆形）
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击
}

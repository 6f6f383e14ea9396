package components

// PositionComponent 实体在场地中的位置
// 目标实体为包围盒左上角，粒子为中心点
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}

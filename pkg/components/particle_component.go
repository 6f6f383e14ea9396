package components

import "time"

// ParticleComponent 命中爆发产生的单个粒子
//
// 纯表现数据，不参与计分。位置存放在 PositionComponent 中（粒子中心）。
// Alpha 随年龄线性衰减，年龄超过 Lifetime 后粒子被销毁。
type ParticleComponent struct {
	// Velocity (速度, 像素/秒)，每帧乘以衰减系数
	VelocityX float64
	VelocityY float64

	// Transparency (透明度, 0-1)
	Alpha float64

	Hue  float64 // 色相，继承自被击中的目标
	Size float64 // 直径（像素）

	// Lifecycle (生命周期)
	BornAt   time.Duration // 创建时刻（逻辑时间）
	Lifetime float64       // 总寿命（秒）
}

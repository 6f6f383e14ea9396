package components

// TargetKind 目标类型
type TargetKind int

const (
	// TargetOrb 普通光球
	TargetOrb TargetKind = iota
	// TargetPower 能量核心，命中后触发时间膨胀
	TargetPower
)

// String 返回目标类型名称
func (k TargetKind) String() string {
	switch k {
	case TargetOrb:
		return "orb"
	case TargetPower:
		return "power"
	default:
		return "unknown"
	}
}

// TargetComponent 可点击目标的外观与类型数据
// 位置、速度、寿命分别存放在 Position/Velocity/Lifetime 组件中
type TargetComponent struct {
	Kind       TargetKind
	Size       float64 // 直径（像素）
	Hue        float64 // 色相 0~360
	HasRing    bool    // 外圈光环（能量核心）
	HasSparkle bool    // 中心闪光点
}

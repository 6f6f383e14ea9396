package utils

import "math"

// 缓动函数
//
// 输入为进度 t，超出 [0, 1] 的部分会被截断，返回值 ∈ [0, 1]。

// EaseOutCubic 三次方缓出：开始快，结束慢
// 用于目标临近过期时的淡出
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出，用于循环的呼吸效果
func EaseInOutSine(t float64) float64 {
	t = clamp01(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// PingPong 把单调递增的时间折返成 0→1→0 的周期进度
func PingPong(seconds, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(seconds, period) / period
	if phase < 0 {
		phase += 1
	}
	if phase > 0.5 {
		return 2 - 2*phase
	}
	return 2 * phase
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

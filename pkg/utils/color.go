package utils

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueColor 将 HSL 色相转换为带透明度的 RGBA 颜色
// hue 以度为单位（任意值，按 360 取模），saturation/lightness/alpha 取值 [0, 1]
// 返回值为预乘 alpha 的颜色，可以直接交给 ebiten 绘制
func HueColor(hue, saturation, lightness, alpha float64) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	alpha = clamp01(alpha)

	c := colorful.Hsl(hue, clamp01(saturation), clamp01(lightness)).Clamped()
	r, g, b := c.RGB255()

	return color.RGBA{
		R: uint8(math.Round(float64(r) * alpha)),
		G: uint8(math.Round(float64(g) * alpha)),
		B: uint8(math.Round(float64(b) * alpha)),
		A: uint8(math.Round(255 * alpha)),
	}
}

// OrbColor 目标主体颜色（能力目标饱和度更高）
func OrbColor(hue float64, power bool, alpha float64) color.RGBA {
	if power {
		return HueColor(hue, 0.95, 0.55, alpha)
	}
	return HueColor(hue, 0.90, 0.55, alpha)
}

// GlowColor 目标光晕与粒子颜色
func GlowColor(hue, alpha float64) color.RGBA {
	return HueColor(hue, 0.95, 0.70, alpha)
}

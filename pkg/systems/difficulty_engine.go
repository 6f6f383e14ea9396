package systems

import (
	"math"

	"github.com/decker502/orbsurge/pkg/config"
)

// Difficulty 某一分数下的生成与运动参数
type Difficulty struct {
	Size            float64 // 普通光球直径
	SpeedMultiplier float64 // 速度倍率
	MaxPopulation   int     // 场上目标数量上限
}

// DifficultyEngine 难度引擎
// 根据当前分数计算目标尺寸、速度与数量上限，无副作用
type DifficultyEngine struct {
	cfg config.DifficultyConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg config.DifficultyConfig) *DifficultyEngine {
	return &DifficultyEngine{
		cfg: cfg,
	}
}

// Calculate 计算分数对应的难度
// 公式:
//
//	size          = clamp(38 - score/12, 18, 38)
//	speed         = 1 + score/120
//	maxPopulation = clamp(5 + floor(score/20), 5, 11)
//
// 参数:
//
//	score - 当前累计分数（负数按 0 处理）
func (d *DifficultyEngine) Calculate(score int) Difficulty {
	if score < 0 {
		score = 0
	}
	s := float64(score)

	size := clampFloat(d.cfg.BaseSize-s/d.cfg.SizeScoreDivisor, d.cfg.MinSize, d.cfg.BaseSize)
	speed := 1 + s/d.cfg.SpeedScoreDivisor

	population := d.cfg.BasePopulation + int(math.Floor(s/float64(d.cfg.PopulationScoreStep)))
	if population < d.cfg.BasePopulation {
		population = d.cfg.BasePopulation
	}
	if population > d.cfg.MaxPopulation {
		population = d.cfg.MaxPopulation
	}

	return Difficulty{
		Size:            size,
		SpeedMultiplier: speed,
		MaxPopulation:   population,
	}
}

// clampFloat 将 v 限制在 [min, max] 范围内
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// randRange 返回 [min, max) 内均匀分布的随机数
func randRange(rng interface{ Float64() float64 }, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

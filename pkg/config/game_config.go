package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/orbsurge/pkg/embedded"
)

// DefaultGameConfigPath 内置玩法配置在嵌入资源中的路径
const DefaultGameConfigPath = "data/orbsurge.yaml"

// GameConfig Orb Surge 玩法参数配置
// 默认值与 data/orbsurge.yaml 保持一致
type GameConfig struct {
	Session     SessionConfig     `yaml:"session"`     // 会话参数
	Arena       ArenaConfig       `yaml:"arena"`       // 场地参数
	Difficulty  DifficultyConfig  `yaml:"difficulty"`  // 难度曲线
	Orb         OrbConfig         `yaml:"orb"`         // 普通光球
	PowerTarget PowerTargetConfig `yaml:"powerTarget"` // 能量核心
	Scoring     ScoringConfig     `yaml:"scoring"`     // 计分规则
	PowerUp     PowerUpConfig     `yaml:"powerUp"`     // 时间膨胀能力
	Particles   ParticleConfig    `yaml:"particles"`   // 命中粒子
	HUD         HUDConfig         `yaml:"hud"`         // HUD 提示
	Audio       AudioConfig       `yaml:"audio"`       // 音效
}

// SessionConfig 会话参数
type SessionConfig struct {
	Seconds        int `yaml:"seconds"`        // 一局时长（秒）
	InitialTargets int `yaml:"initialTargets"` // 开局生成的目标数量
}

// ArenaConfig 场地参数
// Width/Height 为 0 表示尺寸未知，由前端在布局时设置
type ArenaConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawnMargin"` // 生成位置离边缘的距离
	WallMargin  float64 `yaml:"wallMargin"`  // 反弹边界离边缘的距离
}

// DifficultyConfig 难度曲线参数
//
//	size          = clamp(BaseSize - score/SizeScoreDivisor, MinSize, BaseSize)
//	speed         = 1 + score/SpeedScoreDivisor
//	maxPopulation = clamp(BasePopulation + floor(score/PopulationScoreStep), BasePopulation, MaxPopulation)
type DifficultyConfig struct {
	BaseSize            float64 `yaml:"baseSize"`
	MinSize             float64 `yaml:"minSize"`
	SizeScoreDivisor    float64 `yaml:"sizeScoreDivisor"`
	SpeedScoreDivisor   float64 `yaml:"speedScoreDivisor"`
	BasePopulation      int     `yaml:"basePopulation"`
	MaxPopulation       int     `yaml:"maxPopulation"`
	PopulationScoreStep int     `yaml:"populationScoreStep"`
}

// OrbConfig 普通光球参数
type OrbConfig struct {
	Speed         float64 `yaml:"speed"`         // 速度分量范围 [-Speed, Speed]
	LifespanMin   float64 `yaml:"lifespanMin"`   // 秒
	LifespanMax   float64 `yaml:"lifespanMax"`   // 秒
	HueMin        float64 `yaml:"hueMin"`        // 色相下限
	HueMax        float64 `yaml:"hueMax"`        // 色相上限
	SparkleChance float64 `yaml:"sparkleChance"` // 带闪光点的概率
	BurstCount    int     `yaml:"burstCount"`    // 命中时爆出的粒子数
}

// PowerTargetConfig 能量核心参数
type PowerTargetConfig struct {
	SpawnChance float64 `yaml:"spawnChance"` // 每帧生成概率
	SpeedFactor float64 `yaml:"speedFactor"` // 相对普通光球的速度系数
	SizeBonus   float64 `yaml:"sizeBonus"`   // 相对当前尺寸的加成
	LifespanMin float64 `yaml:"lifespanMin"`
	LifespanMax float64 `yaml:"lifespanMax"`
	Hue         float64 `yaml:"hue"`
	BurstCount  int     `yaml:"burstCount"`
}

// ScoringConfig 计分规则
type ScoringConfig struct {
	OrbBase               int `yaml:"orbBase"`               // 光球基础分
	ComboBonus            int `yaml:"comboBonus"`            // 每层连击的额外分
	PowerScore            int `yaml:"powerScore"`            // 能量核心得分
	PowerCombo            int `yaml:"powerCombo"`            // 能量核心增加的连击数
	MissPenalty           int `yaml:"missPenalty"`           // 目标过期时扣除的连击数
	ComboMessageThreshold int `yaml:"comboMessageThreshold"` // 连击达到该值时显示提示
}

// PowerUpConfig 时间膨胀能力参数
type PowerUpConfig struct {
	ActiveDuration time.Duration `yaml:"activeDuration"` // 减速效果持续时间
	Cooldown       time.Duration `yaml:"cooldown"`       // 从激活到再次可用的时间
	TimeScale      float64       `yaml:"timeScale"`      // 生效期间的目标速度倍率
}

// ParticleConfig 命中粒子参数
type ParticleConfig struct {
	Speed       float64 `yaml:"speed"`
	LifespanMin float64 `yaml:"lifespanMin"`
	LifespanMax float64 `yaml:"lifespanMax"`
	SizeMin     float64 `yaml:"sizeMin"`
	SizeMax     float64 `yaml:"sizeMax"`
	Damping     float64 `yaml:"damping"` // 每帧速度衰减系数
}

// HUDConfig HUD 提示参数
type HUDConfig struct {
	MessageDuration time.Duration `yaml:"messageDuration"` // 提示自动清除时间
}

// AudioConfig 音效参数（仅前端使用）
type AudioConfig struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Session: SessionConfig{
			Seconds:        35,
			InitialTargets: 5,
		},
		Arena: ArenaConfig{
			Width:       ArenaDefaultWidth,
			Height:      ArenaDefaultHeight,
			SpawnMargin: 10,
			WallMargin:  8,
		},
		Difficulty: DifficultyConfig{
			BaseSize:            38,
			MinSize:             18,
			SizeScoreDivisor:    12,
			SpeedScoreDivisor:   120,
			BasePopulation:      5,
			MaxPopulation:       11,
			PopulationScoreStep: 20,
		},
		Orb: OrbConfig{
			Speed:         170,
			LifespanMin:   5,
			LifespanMax:   11,
			HueMin:        200,
			HueMax:        285,
			SparkleChance: 0.45,
			BurstCount:    14,
		},
		PowerTarget: PowerTargetConfig{
			SpawnChance: 0.012,
			SpeedFactor: 0.9,
			SizeBonus:   8,
			LifespanMin: 5.5,
			LifespanMax: 8,
			Hue:         150,
			BurstCount:  22,
		},
		Scoring: ScoringConfig{
			OrbBase:               12,
			ComboBonus:            2,
			PowerScore:            40,
			PowerCombo:            2,
			MissPenalty:           2,
			ComboMessageThreshold: 7,
		},
		PowerUp: PowerUpConfig{
			ActiveDuration: 3800 * time.Millisecond,
			Cooldown:       7000 * time.Millisecond,
			TimeScale:      0.35,
		},
		Particles: ParticleConfig{
			Speed:       220,
			LifespanMin: 0.35,
			LifespanMax: 0.8,
			SizeMin:     2,
			SizeMax:     5,
			Damping:     0.97,
		},
		HUD: HUDConfig{
			MessageDuration: 900 * time.Millisecond,
		},
		Audio: AudioConfig{
			SoundEnabled: true,
			SoundVolume:  0.8,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载玩法配置
// 文件中未出现的字段保留默认值
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// LoadGameConfigOrDefault 加载玩法配置，任何错误都记录警告并回退到默认值
// path 为空时读取内置配置（需要先调用 embedded.Init）
func LoadGameConfigOrDefault(path string) *GameConfig {
	var (
		cfg *GameConfig
		err error
	)

	if path != "" {
		cfg, err = LoadGameConfig(path)
	} else {
		path = DefaultGameConfigPath
		var data []byte
		if data, err = embedded.ReadFile(path); err == nil {
			cfg, err = ParseGameConfig(data)
		}
	}

	if err != nil {
		log.Printf("[Config] Warning: failed to load %s: %v (using defaults)", path, err)
		return DefaultGameConfig()
	}
	log.Printf("[Config] Loaded game config from %s", path)
	return cfg
}

// ParseGameConfig 从 YAML 数据解析玩法配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	// 会话
	if cfg.Session.Seconds <= 0 {
		return fmt.Errorf("session.seconds must be > 0, got %d", cfg.Session.Seconds)
	}
	if cfg.Session.InitialTargets < 0 {
		return fmt.Errorf("session.initialTargets must be >= 0, got %d", cfg.Session.InitialTargets)
	}

	// 场地（尺寸允许为 0，表示等待前端布局）
	if cfg.Arena.Width < 0 || cfg.Arena.Height < 0 {
		return fmt.Errorf("arena size must be >= 0, got %vx%v", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Arena.SpawnMargin < cfg.Arena.WallMargin {
		return fmt.Errorf("arena.spawnMargin (%v) must be >= arena.wallMargin (%v)", cfg.Arena.SpawnMargin, cfg.Arena.WallMargin)
	}
	if cfg.Arena.WallMargin < 0 {
		return fmt.Errorf("arena.wallMargin must be >= 0, got %v", cfg.Arena.WallMargin)
	}

	// 难度
	d := cfg.Difficulty
	if d.MinSize <= 0 || d.BaseSize < d.MinSize {
		return fmt.Errorf("difficulty sizes invalid: baseSize=%v minSize=%v", d.BaseSize, d.MinSize)
	}
	if d.SizeScoreDivisor <= 0 || d.SpeedScoreDivisor <= 0 || d.PopulationScoreStep <= 0 {
		return fmt.Errorf("difficulty divisors must be > 0")
	}
	if d.BasePopulation < 1 || d.MaxPopulation < d.BasePopulation {
		return fmt.Errorf("difficulty population invalid: base=%d max=%d", d.BasePopulation, d.MaxPopulation)
	}

	// 目标
	if err := validateRange("orb.lifespan", cfg.Orb.LifespanMin, cfg.Orb.LifespanMax); err != nil {
		return err
	}
	if err := validateRange("orb.hue", cfg.Orb.HueMin, cfg.Orb.HueMax); err != nil {
		return err
	}
	if err := validateChance("orb.sparkleChance", cfg.Orb.SparkleChance); err != nil {
		return err
	}
	if err := validateRange("powerTarget.lifespan", cfg.PowerTarget.LifespanMin, cfg.PowerTarget.LifespanMax); err != nil {
		return err
	}
	if err := validateChance("powerTarget.spawnChance", cfg.PowerTarget.SpawnChance); err != nil {
		return err
	}
	if cfg.Orb.BurstCount < 0 || cfg.PowerTarget.BurstCount < 0 {
		return fmt.Errorf("burstCount must be >= 0")
	}

	// 计分
	if cfg.Scoring.OrbBase < 0 || cfg.Scoring.ComboBonus < 0 || cfg.Scoring.PowerScore < 0 {
		return fmt.Errorf("scoring values must be >= 0 (score may never decrease)")
	}
	if cfg.Scoring.PowerCombo < 0 || cfg.Scoring.MissPenalty < 0 {
		return fmt.Errorf("combo adjustments must be >= 0")
	}

	// 能力
	if cfg.PowerUp.ActiveDuration <= 0 {
		return fmt.Errorf("powerUp.activeDuration must be > 0, got %v", cfg.PowerUp.ActiveDuration)
	}
	if cfg.PowerUp.Cooldown < cfg.PowerUp.ActiveDuration {
		return fmt.Errorf("powerUp.cooldown (%v) must be >= powerUp.activeDuration (%v)", cfg.PowerUp.Cooldown, cfg.PowerUp.ActiveDuration)
	}
	if cfg.PowerUp.TimeScale <= 0 || cfg.PowerUp.TimeScale > 1 {
		return fmt.Errorf("powerUp.timeScale must be in (0, 1], got %v", cfg.PowerUp.TimeScale)
	}

	// 粒子
	if err := validateRange("particles.lifespan", cfg.Particles.LifespanMin, cfg.Particles.LifespanMax); err != nil {
		return err
	}
	if cfg.Particles.LifespanMin <= 0 {
		return fmt.Errorf("particles.lifespanMin must be > 0, got %v", cfg.Particles.LifespanMin)
	}
	if err := validateRange("particles.size", cfg.Particles.SizeMin, cfg.Particles.SizeMax); err != nil {
		return err
	}
	if cfg.Particles.Damping <= 0 || cfg.Particles.Damping > 1 {
		return fmt.Errorf("particles.damping must be in (0, 1], got %v", cfg.Particles.Damping)
	}

	if cfg.HUD.MessageDuration <= 0 {
		return fmt.Errorf("hud.messageDuration must be > 0, got %v", cfg.HUD.MessageDuration)
	}

	if cfg.Audio.SoundVolume < 0 || cfg.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio.soundVolume must be in [0, 1], got %v", cfg.Audio.SoundVolume)
	}

	return nil
}

func validateRange(name string, min, max float64) error {
	if min > max {
		return fmt.Errorf("%s: min (%v) must be <= max (%v)", name, min, max)
	}
	return nil
}

func validateChance(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %v", name, p)
	}
	return nil
}

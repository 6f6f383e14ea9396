package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/ecs"
	"github.com/decker502/orbsurge/pkg/entities"
)

// TargetSpawnSystem 维持场上目标数量
//
// 每次 Update 先把普通光球补到难度允许的上限，
// 再以固定概率尝试生成一个能量核心（场上最多一个）。
type TargetSpawnSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *clock.Scheduler
	rng           *rand.Rand
	arena         *components.ArenaComponent
	orb           config.OrbConfig
	power         config.PowerTargetConfig
}

// NewTargetSpawnSystem 创建目标生成系统
// 参数:
//   - em: EntityManager 实例
//   - scheduler: 逻辑时钟，用于记录目标的出生时刻
//   - rng: 随机数源（测试时传入固定种子）
//   - arena: 场地尺寸，由会话持有并在布局变化时更新
//   - cfg: 玩法配置
func NewTargetSpawnSystem(em *ecs.EntityManager, scheduler *clock.Scheduler, rng *rand.Rand, arena *components.ArenaComponent, cfg *config.GameConfig) *TargetSpawnSystem {
	return &TargetSpawnSystem{
		entityManager: em,
		scheduler:     scheduler,
		rng:           rng,
		arena:         arena,
		orb:           cfg.Orb,
		power:         cfg.PowerTarget,
	}
}

// Update 补齐目标数量并尝试生成能量核心
// 返回本次生成的目标数量；场地尺寸未知时什么也不做
func (s *TargetSpawnSystem) Update(diff Difficulty) int {
	spawned := 0

	for s.TargetCount() < diff.MaxPopulation {
		if _, ok := s.SpawnOrb(diff); !ok {
			// 场地放不下，下一帧再试
			return spawned
		}
		spawned++
	}

	if s.rng.Float64() < s.power.SpawnChance && !s.HasPowerTarget() {
		if _, ok := s.SpawnPower(diff); ok {
			spawned++
		}
	}

	return spawned
}

// SpawnOrb 生成一个普通光球
func (s *TargetSpawnSystem) SpawnOrb(diff Difficulty) (ecs.EntityID, bool) {
	size := diff.Size
	x, y, ok := s.spawnPosition(size)
	if !ok {
		return ecs.InvalidEntity, false
	}

	vx := randRange(s.rng, -s.orb.Speed, s.orb.Speed) * diff.SpeedMultiplier
	vy := randRange(s.rng, -s.orb.Speed, s.orb.Speed) * diff.SpeedMultiplier

	id := entities.NewTargetEntity(s.entityManager, entities.TargetSpec{
		Kind:       components.TargetOrb,
		X:          x,
		Y:          y,
		VX:         vx,
		VY:         vy,
		Size:       size,
		BornAt:     s.scheduler.Now(),
		Lifespan:   randRange(s.rng, s.orb.LifespanMin, s.orb.LifespanMax),
		Hue:        math.Floor(randRange(s.rng, s.orb.HueMin, s.orb.HueMax)),
		HasSparkle: s.rng.Float64() < s.orb.SparkleChance,
	})
	return id, true
}

// SpawnPower 生成一个能量核心
// 场上已有能量核心时返回 false
func (s *TargetSpawnSystem) SpawnPower(diff Difficulty) (ecs.EntityID, bool) {
	if s.HasPowerTarget() {
		return ecs.InvalidEntity, false
	}

	size := diff.Size + s.power.SizeBonus
	x, y, ok := s.spawnPosition(size)
	if !ok {
		return ecs.InvalidEntity, false
	}

	speedMul := diff.SpeedMultiplier * s.power.SpeedFactor
	vx := randRange(s.rng, -s.orb.Speed, s.orb.Speed) * speedMul
	vy := randRange(s.rng, -s.orb.Speed, s.orb.Speed) * speedMul

	id := entities.NewTargetEntity(s.entityManager, entities.TargetSpec{
		Kind:       components.TargetPower,
		X:          x,
		Y:          y,
		VX:         vx,
		VY:         vy,
		Size:       size,
		BornAt:     s.scheduler.Now(),
		Lifespan:   randRange(s.rng, s.power.LifespanMin, s.power.LifespanMax),
		Hue:        s.power.Hue,
		HasRing:    true,
		HasSparkle: s.rng.Float64() < s.orb.SparkleChance,
	})
	log.Printf("[TargetSpawnSystem] Power target %d spawned at (%.0f, %.0f)", id, x, y)
	return id, true
}

// spawnPosition 在 [margin, dim-size-margin] 内随机选择左上角坐标
func (s *TargetSpawnSystem) spawnPosition(size float64) (x, y float64, ok bool) {
	if s.arena == nil || s.arena.Width <= 0 || s.arena.Height <= 0 {
		return 0, 0, false
	}

	margin := s.arena.SpawnMargin
	maxX := s.arena.Width - size - margin
	maxY := s.arena.Height - size - margin
	if maxX < margin || maxY < margin {
		return 0, 0, false
	}

	return randRange(s.rng, margin, maxX), randRange(s.rng, margin, maxY), true
}

// TargetCount 返回场上目标数量（包括能量核心）
func (s *TargetSpawnSystem) TargetCount() int {
	return len(ecs.GetEntitiesWith1[*components.TargetComponent](s.entityManager))
}

// HasPowerTarget 检查场上是否已有能量核心
func (s *TargetSpawnSystem) HasPowerTarget() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](s.entityManager) {
		target, _ := ecs.GetComponent[*components.TargetComponent](s.entityManager, id)
		if target.Kind == components.TargetPower {
			return true
		}
	}
	return false
}

package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/ecs"
	"github.com/decker502/orbsurge/pkg/entities"
)

// testWorld 组装测试用的实体管理器、时钟与场地
type testWorld struct {
	em        *ecs.EntityManager
	scheduler *clock.Scheduler
	rng       *rand.Rand
	arena     *components.ArenaComponent
	cfg       *config.GameConfig
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	// 默认关闭能量核心的随机生成，需要时由测试单独打开
	cfg.PowerTarget.SpawnChance = 0
	return &testWorld{
		em:        ecs.NewEntityManager(),
		scheduler: clock.NewScheduler(),
		rng:       rand.New(rand.NewSource(42)),
		arena: &components.ArenaComponent{
			Width:       cfg.Arena.Width,
			Height:      cfg.Arena.Height,
			SpawnMargin: cfg.Arena.SpawnMargin,
			WallMargin:  cfg.Arena.WallMargin,
		},
		cfg: cfg,
	}
}

// addTarget 直接创建一个目标，绕过随机生成
func (w *testWorld) addTarget(kind components.TargetKind, x, y, vx, vy, size, lifespan float64) ecs.EntityID {
	return entities.NewTargetEntity(w.em, entities.TargetSpec{
		Kind:     kind,
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Size:     size,
		BornAt:   w.scheduler.Now(),
		Lifespan: lifespan,
		Hue:      220,
	})
}

func countTargets(em *ecs.EntityManager, kind components.TargetKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](em) {
		target, _ := ecs.GetComponent[*components.TargetComponent](em, id)
		if target.Kind == kind {
			n++
		}
	}
	return n
}

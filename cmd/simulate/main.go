// simulate 以无界面方式运行若干局 Orb Surge，用于调参与回归检查
//
// 机器人每隔固定的反应时间点击一次：以 accuracy 的概率命中最早生成的目标，
// 否则点在空白处。时间膨胀就绪时立即激活。
//
// 用法：
//
//	go run ./cmd/simulate --rounds 5 --seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
)

var (
	configPath = flag.String("config", "", "Path to a game config YAML (default: built-in values)")
	seed       = flag.Int64("seed", 1, "Random seed")
	rounds     = flag.Int("rounds", 3, "Number of rounds to play")
	reaction   = flag.Duration("reaction", 350*time.Millisecond, "Delay between bot clicks")
	accuracy   = flag.Float64("accuracy", 0.85, "Probability that a click hits a target")
	fps        = flag.Int("fps", 60, "Simulated frames per second")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

type roundResult struct {
	score     int
	maxCombo  int
	hits      int
	misses    int
	expired   int
	powerUps  int
	particles int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *fps <= 0 || *rounds <= 0 {
		fmt.Fprintln(os.Stderr, "fps and rounds must be > 0")
		os.Exit(2)
	}

	cfg := config.LoadGameConfigOrDefault(*configPath)
	rng := rand.New(rand.NewSource(*seed))
	provider := clock.NewMockTimeProvider(time.Unix(0, 0))

	var result roundResult
	session := game.NewSession(game.SessionOptions{
		Config:       cfg,
		TimeProvider: provider,
		Rand:         rand.New(rand.NewSource(*seed)),
		Store:        game.NewMemoryScoreStore(0),
		OnEvent: func(e game.Event) {
			switch e.Type {
			case game.EventTargetHit:
				result.hits++
				if e.Combo > result.maxCombo {
					result.maxCombo = e.Combo
				}
			case game.EventTargetExpired:
				result.expired++
			case game.EventPowerUpActivated:
				result.powerUps++
			}
		},
	})
	defer session.Close()

	frame := time.Second / time.Duration(*fps)
	fmt.Printf("%-6s %7s %6s %5s %6s %8s %6s\n", "ROUND", "SCORE", "COMBO", "HITS", "MISSES", "EXPIRED", "POWER")

	for round := 1; round <= *rounds; round++ {
		result = roundResult{}
		session.Start()
		session.Update() // 第一次 Update 只初始化帧时钟

		nextClick := session.Now() + *reaction
		for session.Status() == game.StatusRunning {
			provider.Advance(frame)
			session.Update()

			if session.PowerUpStatus() == components.PowerUpReady {
				session.ActivatePowerUp()
			}

			if session.Now() >= nextClick {
				nextClick += *reaction
				if !click(session, rng) {
					result.misses++
				}
			}
		}

		result.score = session.Score()
		fmt.Printf("%-6d %7d %6d %5d %6d %8d %6d\n",
			round, result.score, result.maxCombo, result.hits, result.misses, result.expired, result.powerUps)
	}

	fmt.Printf("best score: %d\n", session.BestScore())
}

// click 模拟一次点击，返回是否命中
func click(session *game.Session, rng *rand.Rand) bool {
	snap := session.Snapshot()
	if len(snap.Targets) == 0 || rng.Float64() >= *accuracy {
		// 点在场地角落（目标不会出现在边距内）
		return session.HitAt(1, 1)
	}
	target := snap.Targets[0]
	return session.HitAt(target.X+target.Size/2, target.Y+target.Size/2)
}

package game

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/ecs"
	"github.com/decker502/orbsurge/pkg/systems"
)

// SessionStatus 会话状态
type SessionStatus int

const (
	// StatusIdle 尚未开始（或已重置）
	StatusIdle SessionStatus = iota
	// StatusRunning 进行中（暂停时仍为该状态）
	StatusRunning
	// StatusEnded 倒计时归零
	StatusEnded
)

// String 返回状态名称
func (s SessionStatus) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusRunning:
		return "RUNNING"
	case StatusEnded:
		return "ENDED"
	default:
		return "UNKNOWN"
	}
}

// EventType 会话事件类型（供前端播放音效等表现）
type EventType int

const (
	EventStarted EventType = iota
	EventTargetHit
	EventTargetExpired
	EventPowerUpActivated
	EventEnded
)

// Event 会话事件
type Event struct {
	Type  EventType
	Kind  components.TargetKind // 仅 EventTargetHit / EventTargetExpired
	Score int
	Combo int
}

// SessionOptions 创建会话的参数，零值字段使用默认实现
type SessionOptions struct {
	Config       *config.GameConfig // nil 时使用 DefaultGameConfig
	TimeProvider clock.TimeProvider // Update() 使用的时间源，nil 时使用真实时钟
	Rand         *rand.Rand         // nil 时以当前时间为种子
	Store        BestScoreStore     // nil 时使用内存存储
	OnEvent      func(Event)        // 可为 nil
}

// Session 一局 Orb Surge 的完整状态
//
// 所有方法必须在同一个 goroutine 中调用。
// 逐帧积分、1Hz 倒计时、能力与提示的定时事件都挂在同一个逻辑时钟上，
// 因此它们的先后顺序只由时间决定。
type Session struct {
	cfg     *config.GameConfig
	em      *ecs.EntityManager
	sched   *clock.Scheduler
	frame   *clock.FrameClock
	rng     *rand.Rand
	arena   *components.ArenaComponent
	store   BestScoreStore
	onEvent func(Event)

	difficulty *systems.DifficultyEngine
	spawner    *systems.TargetSpawnSystem
	lifetime   *systems.LifetimeSystem
	physics    *systems.PhysicsSystem
	particles  *systems.ParticleSystem
	powerUp    *systems.PowerUpSystem
	scoring    *systems.ScoringSystem
	hud        *systems.HUDMessageSystem
	hits       *systems.HitSystem

	status      SessionStatus
	running     bool
	timeLeft    int
	best        int
	countdownID clock.TimerID
	closed      bool
}

// NewSession 创建处于 Idle 状态的会话，并读取一次最高分
// 最高分读取失败不影响创建
func NewSession(opts SessionOptions) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	provider := opts.TimeProvider
	if provider == nil {
		provider = clock.NewRealTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	store := opts.Store
	if store == nil {
		store = NewMemoryScoreStore(0)
	}

	s := &Session{
		cfg:     cfg,
		em:      ecs.NewEntityManager(),
		sched:   clock.NewScheduler(),
		frame:   clock.NewFrameClock(provider),
		rng:     rng,
		store:   store,
		onEvent: opts.OnEvent,
		arena: &components.ArenaComponent{
			Width:       cfg.Arena.Width,
			Height:      cfg.Arena.Height,
			SpawnMargin: cfg.Arena.SpawnMargin,
			WallMargin:  cfg.Arena.WallMargin,
		},
		timeLeft: cfg.Session.Seconds,
	}

	isRunning := func() bool { return s.running }

	s.difficulty = systems.NewDifficultyEngine(cfg.Difficulty)
	s.hud = systems.NewHUDMessageSystem(s.sched, cfg.HUD.MessageDuration)
	s.scoring = systems.NewScoringSystem(cfg.Scoring, s.hud)
	s.powerUp = systems.NewPowerUpSystem(s.sched, cfg.PowerUp, s.hud, isRunning)
	s.spawner = systems.NewTargetSpawnSystem(s.em, s.sched, rng, s.arena, cfg)
	s.lifetime = systems.NewLifetimeSystem(s.em, s.sched, s.onTargetExpired)
	s.physics = systems.NewPhysicsSystem(s.em, s.arena)
	s.particles = systems.NewParticleSystem(s.em, s.sched, rng, cfg.Particles)
	s.hits = systems.NewHitSystem(s.em, s.particles, s.scoring, s.powerUp, isRunning, cfg)

	best, err := store.LoadBest()
	if err != nil {
		log.Printf("[Session] Warning: failed to load best score: %v (starting from 0)", err)
		best = 0
	}
	s.best = best

	return s
}

// Start 开始新的一局
// 清空分数、连击、时间、实体与能力状态，生成初始目标，并启动倒计时
func (s *Session) Start() {
	if s.closed {
		return
	}

	s.resetState()
	s.status = StatusRunning
	s.running = true

	diff := s.difficulty.Calculate(0)
	for i := 0; i < s.cfg.Session.InitialTargets; i++ {
		s.spawner.SpawnOrb(diff)
	}

	s.countdownID = s.sched.Every(time.Second, s.countdown)
	s.hud.Show("INIT")

	log.Printf("[Session] Started: %ds, %d initial targets", s.timeLeft, s.spawner.TargetCount())
	s.emit(Event{Type: EventStarted})
}

// Restart 无条件重新开始（键盘 r）
func (s *Session) Restart() {
	s.Start()
}

// Pause 暂停：只清除运行标记并停止倒计时，时间、分数与实体全部保留
// 没有对应的恢复操作，再次 Start 会重新开局
func (s *Session) Pause() {
	if !s.running {
		return
	}
	s.running = false
	s.sched.Cancel(s.countdownID)
	s.countdownID = 0
	log.Printf("[Session] Paused with %ds left, score %d", s.timeLeft, s.scoring.Score())
}

// Reset 回到 Idle，最高分保留
func (s *Session) Reset() {
	if s.closed {
		return
	}
	s.resetState()
	log.Printf("[Session] Reset")
}

// Close 取消所有定时事件并关闭存储，之后的调用全部无效
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.running = false
	s.sched.CancelAll()

	if closer, ok := s.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("[Session] Warning: failed to close best score store: %v", err)
		}
	}
}

func (s *Session) resetState() {
	s.sched.Cancel(s.countdownID)
	s.countdownID = 0
	s.powerUp.ForceReady()
	s.hud.Clear()
	s.scoring.Reset()
	s.em.Clear()

	s.status = StatusIdle
	s.running = false
	s.timeLeft = s.cfg.Session.Seconds
}

// countdown 每秒触发一次
func (s *Session) countdown() {
	if !s.running {
		return
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.end()
	}
}

func (s *Session) end() {
	s.sched.Cancel(s.countdownID)
	s.countdownID = 0

	s.status = StatusEnded
	s.running = false
	s.scoring.ResetCombo()
	s.powerUp.ForceReady()

	score := s.scoring.Score()
	if score > s.best {
		s.best = score
		// 写入失败不影响会话
		if err := s.store.SaveBest(score); err != nil {
			log.Printf("[Session] Warning: failed to save best score: %v", err)
		}
	}

	s.hud.Show("SYSTEM STABLE")
	log.Printf("[Session] Ended: score %d, best %d", score, s.best)
	s.emit(Event{Type: EventEnded, Score: score})
}

// Update 按时间源计算 dt 并推进一帧（每次显示刷新调用一次）
func (s *Session) Update() {
	s.Step(s.frame.Delta())
}

// Step 推进 dt 秒
//
// 先推进逻辑时钟（触发倒计时、能力切换、提示清除），
// 运行中再依次执行生成、过期、目标运动；粒子总是更新。
func (s *Session) Step(dt float64) {
	if s.closed {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s.sched.Advance(time.Duration(dt * float64(time.Second)))

	if s.running {
		diff := s.difficulty.Calculate(s.scoring.Score())
		s.spawner.Update(diff)
		s.lifetime.Update()
		s.physics.Update(dt, s.powerUp.TimeScale())
	}

	s.particles.Update(dt)
	s.em.RemoveMarkedEntities()
}

// Hit 处理对目标 id 的点击，返回是否命中
// 目标不存在或会话未运行时不产生任何副作用
func (s *Session) Hit(id ecs.EntityID) bool {
	if s.closed {
		return false
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](s.em, id)
	if !ok {
		return false
	}
	kind := target.Kind
	wasReady := s.powerUp.Status() == components.PowerUpReady

	if !s.hits.Resolve(id) {
		return false
	}

	s.emit(Event{Type: EventTargetHit, Kind: kind, Score: s.scoring.Score(), Combo: s.scoring.Combo()})
	if wasReady && s.powerUp.Status() == components.PowerUpActive {
		s.emit(Event{Type: EventPowerUpActivated})
	}
	return true
}

// HitAt 点击场地坐标 (x, y) 处最上层的目标
func (s *Session) HitAt(x, y float64) bool {
	id, ok := s.hits.TargetAt(x, y)
	if !ok {
		return false
	}
	return s.Hit(id)
}

// ActivatePowerUp 手动激活时间膨胀（键盘 Space / s）
func (s *Session) ActivatePowerUp() bool {
	if s.closed || !s.powerUp.Activate() {
		return false
	}
	s.emit(Event{Type: EventPowerUpActivated})
	return true
}

// HandleKey 处理键盘输入（不区分大小写）
//
//	r            重新开始
//	space / s    激活时间膨胀
//
// 返回按键是否被识别
func (s *Session) HandleKey(key string) bool {
	switch strings.ToLower(key) {
	case "r":
		s.Restart()
		return true
	case " ", "space", "s":
		s.ActivatePowerUp()
		return true
	default:
		return false
	}
}

// SetArenaSize 更新场地尺寸（前端布局变化时调用）
// 尺寸为 0 时暂停生成，直到下一次设置有效尺寸
func (s *Session) SetArenaSize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.arena.Width = width
	s.arena.Height = height
}

func (s *Session) onTargetExpired(id ecs.EntityID, kind components.TargetKind) {
	s.scoring.OnExpired()
	s.emit(Event{Type: EventTargetExpired, Kind: kind, Score: s.scoring.Score(), Combo: s.scoring.Combo()})
}

func (s *Session) emit(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}

// Status 返回会话状态
func (s *Session) Status() SessionStatus { return s.status }

// IsRunning 检查会话是否在运行（未暂停）
func (s *Session) IsRunning() bool { return s.running }

// IsPaused 检查会话是否处于暂停（Running 但运行标记为 false）
func (s *Session) IsPaused() bool { return s.status == StatusRunning && !s.running }

func (s *Session) Score() int     { return s.scoring.Score() }
func (s *Session) Combo() int     { return s.scoring.Combo() }
func (s *Session) BestScore() int { return s.best }
func (s *Session) TimeLeft() int  { return s.timeLeft }

// PowerUpStatus 返回时间膨胀状态
func (s *Session) PowerUpStatus() components.PowerUpStatus { return s.powerUp.Status() }

// PowerUpState 返回时间膨胀状态副本
func (s *Session) PowerUpState() components.PowerUpComponent { return s.powerUp.State() }

// TimeScale 返回当前目标速度倍率
func (s *Session) TimeScale() float64 { return s.powerUp.TimeScale() }

// Now 返回逻辑时钟的当前时间
func (s *Session) Now() time.Duration { return s.sched.Now() }

// Config 返回会话使用的配置
func (s *Session) Config() *config.GameConfig { return s.cfg }

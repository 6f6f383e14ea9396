// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/orbsurge/pkg/clock"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
	"github.com/decker502/orbsurge/pkg/scenes"
	"github.com/decker502/orbsurge/pkg/sfx"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部玩法配置文件路径，为空则使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示以当前时间为种子
	Seed int64
	// Store 最高分存储，nil 时使用 gdata 本地存储
	Store game.BestScoreStore
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	frame                    *clock.FrameClock
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内置配置前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置加载失败时回退到默认配置，不会返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := config.LoadGameConfigOrDefault(cfg.ConfigPath)

	// 初始化音频上下文（采样率与合成音效一致）
	audioContext := audio.NewContext(int(sfx.SampleRate))
	audioManager := game.NewAudioManager(audioContext, gameConfig.Audio)
	log.Printf("[App] AudioManager initialized")

	store := cfg.Store
	if store == nil {
		store = game.OpenBestScoreStore(game.AppName)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(game.SessionOptions{
		Config:  gameConfig,
		Rand:    rand.New(rand.NewSource(seed)),
		Store:   store,
		OnEvent: audioManager.HandleEvent,
	})
	log.Printf("[App] Session created (seed %d, best %d)", seed, session.BestScore())

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewArenaScene(session, audioManager))

	return &App{
		sceneManager: sceneManager,
		frame:        clock.NewFrameClock(clock.NewRealTimeProvider()),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，dt 按真实时间计算
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 窗口失焦期间 Update 不会被调用，恢复后丢弃这段时间
	if !ebiten.IsFocused() {
		a.frame.Restart()
	}

	a.sceneManager.Update(a.frame.Delta())
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 关闭当前场景（等待最高分写入完成）
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

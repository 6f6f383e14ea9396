package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
	"github.com/decker502/orbsurge/pkg/utils"
)

// 调试字体的字符尺寸（ebitenutil.DebugPrintAt）
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	arenaColor      = color.RGBA{R: 14, G: 18, B: 40, A: 255}
	arenaBorder     = color.RGBA{R: 70, G: 90, B: 160, A: 255}
	dilationTint    = color.RGBA{R: 10, G: 40, B: 30, A: 90}
	sparkleColor    = color.RGBA{R: 255, G: 255, B: 255, A: 230}
)

// ArenaScene 唯一的游戏场景：场地、目标、粒子与 HUD
//
// 场景本身不保存任何玩法状态，每帧把输入转交给 Session，
// 再根据 Session.Snapshot() 绘制。
type ArenaScene struct {
	session *game.Session
	audio   *game.AudioManager // 可为 nil

	screenWidth  int
	screenHeight int

	// 最近一帧的快照，Draw 复用 Update 中生成的数据
	snapshot game.Snapshot
}

// NewArenaScene 创建场景并按逻辑屏幕尺寸设置场地大小
func NewArenaScene(session *game.Session, audioManager *game.AudioManager) *ArenaScene {
	s := &ArenaScene{
		session: session,
		audio:   audioManager,
	}
	s.resize(config.GameWindowWidth, config.GameWindowHeight)
	s.snapshot = session.Snapshot()
	return s
}

// resize 逻辑屏幕尺寸变化时更新场地尺寸
func (s *ArenaScene) resize(width, height int) {
	if width == s.screenWidth && height == s.screenHeight {
		return
	}
	s.screenWidth = width
	s.screenHeight = height
	arenaW, arenaH := config.ArenaSizeForScreen(width, height)
	s.session.SetArenaSize(arenaW, arenaH)
	log.Printf("[ArenaScene] Arena resized to %.0fx%.0f", arenaW, arenaH)
}

// Update 处理输入并推进会话
func (s *ArenaScene) Update(deltaTime float64) {
	s.handleKeys()

	if pressed, x, y := utils.PointerJustPressed(); pressed {
		s.handlePointer(x, y)
	}

	s.session.Step(deltaTime)
	s.snapshot = s.session.Snapshot()
}

func (s *ArenaScene) handleKeys() {
	for _, name := range utils.JustPressedSessionKeys() {
		s.session.HandleKey(name)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if !s.session.IsRunning() {
			s.session.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.session.Pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.session.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if s.audio != nil {
			s.audio.SetEnabled(!s.audio.Enabled())
		}
	}
}

// handlePointer 点击场地：空闲或结束时开局，运行中尝试命中
func (s *ArenaScene) handlePointer(screenX, screenY int) {
	x, y := config.ScreenToArena(screenX, screenY)
	if s.session.Status() != game.StatusRunning {
		if insideArena(x, y, s.snapshot.ArenaWidth, s.snapshot.ArenaHeight) {
			s.session.Start()
		}
		return
	}
	s.session.HitAt(x, y)
}

// Draw 绘制场景
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	if w, h := screen.Bounds().Dx(), screen.Bounds().Dy(); w != s.screenWidth || h != s.screenHeight {
		s.resize(w, h)
	}

	screen.Fill(backgroundColor)
	snap := s.snapshot

	ox, oy := float32(config.ArenaOffsetX), float32(config.ArenaOffsetY)
	aw, ah := float32(snap.ArenaWidth), float32(snap.ArenaHeight)
	vector.DrawFilledRect(screen, ox, oy, aw, ah, arenaColor, false)
	if snap.HUD.EffectActive {
		vector.DrawFilledRect(screen, ox, oy, aw, ah, dilationTint, false)
	}
	vector.StrokeRect(screen, ox, oy, aw, ah, 2, arenaBorder, true)

	for _, t := range snap.Targets {
		drawTarget(screen, t, snap.Time.Seconds())
	}
	for _, p := range snap.Particles {
		cx, cy, r := particleCircle(p)
		vector.DrawFilledCircle(screen, cx, cy, r, utils.GlowColor(p.Hue, p.Alpha), true)
	}

	s.drawHUD(screen, snap.HUD)
}

func drawTarget(screen *ebiten.Image, t game.TargetView, now float64) {
	cx, cy, r := targetCircle(t)
	power := t.Kind == components.TargetPower
	alpha := targetAlpha(t)

	vector.DrawFilledCircle(screen, cx, cy, r*1.35, utils.GlowColor(t.Hue, 0.2*float64(alpha)), true)
	vector.DrawFilledCircle(screen, cx, cy, r, utils.OrbColor(t.Hue, power, 0.95*float64(alpha)), true)
	// 左上方高光
	vector.DrawFilledCircle(screen, cx-r*0.3, cy-r*0.3, r*0.35, utils.GlowColor(t.Hue, 0.8*float64(alpha)), true)

	if t.HasRing {
		// 能力目标的光环缓慢呼吸
		pulse := float32(utils.Lerp(0.5, 3.5, utils.EaseInOutSine(utils.PingPong(now, 1))))
		vector.StrokeCircle(screen, cx, cy, r+4+pulse, 2, utils.GlowColor(t.Hue, 0.9*float64(alpha)), true)
	}
	if t.HasSparkle {
		vector.DrawFilledCircle(screen, cx+r*0.45, cy-r*0.45, 2.5, sparkleColor, true)
	}
}

func (s *ArenaScene) drawHUD(screen *ebiten.Image, hud game.HUDView) {
	ebitenutil.DebugPrintAt(screen, hud.StatusLine(), int(config.ArenaOffsetX), 12)
	ebitenutil.DebugPrintAt(screen, hud.PowerLine(), int(config.ArenaOffsetX), 12+debugLineHeight)

	help := "[R] RESTART  [P] PAUSE  [M] SOUND"
	if utils.IsMobile() {
		help = "TAP ORBS"
	}
	ebitenutil.DebugPrintAt(screen, help, s.screenWidth-len(help)*debugCharWidth-int(config.ArenaOffsetX), 12)

	if banner := hud.Banner(); banner != "" {
		x := s.screenWidth/2 - len(banner)*debugCharWidth/2
		y := int(config.ArenaOffsetY) + int(s.snapshot.ArenaHeight)/2 - debugLineHeight/2
		ebitenutil.DebugPrintAt(screen, banner, x, y)
	}
}

// Close 场景被替换或程序退出时关闭会话（等待最高分写入完成）
func (s *ArenaScene) Close() {
	s.session.Close()
	log.Printf("[ArenaScene] Closed")
}

// targetCircle 返回目标在屏幕上的圆心与半径
func targetCircle(t game.TargetView) (cx, cy, r float32) {
	r = float32(t.Size / 2)
	cx = float32(config.ArenaOffsetX+t.X) + r
	cy = float32(config.ArenaOffsetY+t.Y) + r
	return cx, cy, r
}

// particleCircle 返回粒子在屏幕上的圆心与半径
func particleCircle(p game.ParticleView) (cx, cy, r float32) {
	return float32(config.ArenaOffsetX + p.X), float32(config.ArenaOffsetY + p.Y), float32(p.Size / 2)
}

// targetAlpha 目标在寿命最后一秒淡出，最低 0.2
func targetAlpha(t game.TargetView) float32 {
	remaining := t.Lifespan - t.Age
	return float32(utils.Lerp(0.2, 1, utils.EaseOutCubic(remaining)))
}

func insideArena(x, y, width, height float64) bool {
	return x >= 0 && y >= 0 && x <= width && y <= height
}

// Package tty 提供基于 tcell 的终端前端
//
// 终端以字符格为单位绘制，每个字符格对应场地中 CellWidth×CellHeight 的区域。
// 场地尺寸随终端大小变化，通过 Session.SetArenaSize 通知会话。
package tty

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/game"
	"github.com/decker502/orbsurge/pkg/utils"
)

const (
	// CellWidth 每个字符格对应的场地宽度
	CellWidth = 8.0
	// CellHeight 每个字符格对应的场地高度（终端字符约为 1:2）
	CellHeight = 16.0

	// hudRows 场地上方的 HUD 行数
	hudRows = 2

	frameInterval = 16 * time.Millisecond
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 90, 160))
)

// Frontend 终端前端
// 所有方法必须在同一个 goroutine 中调用（Run 内部除外）
type Frontend struct {
	screen  tcell.Screen
	session *game.Session

	width, height int // 终端尺寸（字符格）
	mouseDown     bool
}

// New 创建终端前端，screen 必须已经 Init
func New(screen tcell.Screen, session *game.Session) *Frontend {
	f := &Frontend{
		screen:  screen,
		session: session,
	}
	screen.EnableMouse()
	f.Resize()
	return f
}

// Resize 按终端尺寸重新计算场地大小
func (f *Frontend) Resize() {
	f.width, f.height = f.screen.Size()
	cols, rows := f.arenaCells()
	f.session.SetArenaSize(float64(cols)*CellWidth, float64(rows)*CellHeight)
	log.Printf("[TTY] Resized to %dx%d cells (arena %dx%d)", f.width, f.height, cols, rows)
}

// arenaCells 场地内部的字符格数（去掉 HUD 与边框）
func (f *Frontend) arenaCells() (cols, rows int) {
	cols = f.width - 2
	rows = f.height - hudRows - 2
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

// cellToArena 把终端坐标转换为场地坐标（字符格中心）
// 不在场地内时返回 false
func (f *Frontend) cellToArena(x, y int) (float64, float64, bool) {
	cols, rows := f.arenaCells()
	cx, cy := x-1, y-hudRows-1
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return 0, 0, false
	}
	return (float64(cx) + 0.5) * CellWidth, (float64(cy) + 0.5) * CellHeight, true
}

// arenaToCell 把场地坐标转换为终端坐标
func arenaToCell(x, y float64) (int, int) {
	return int(x/CellWidth) + 1, int(y/CellHeight) + hudRows + 1
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		f.screen.Sync()
		f.Resize()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if !f.session.IsRunning() {
			f.session.Start()
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'p', 'P':
		f.session.Pause()
	case 'x', 'X':
		f.session.Reset()
	default:
		f.session.HandleKey(string(r))
	}
	return true
}

// handleMouse 只在左键按下的那一次事件触发点击
func (f *Frontend) handleMouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0
	justPressed := pressed && !f.mouseDown
	f.mouseDown = pressed
	if !justPressed {
		return
	}

	ax, ay, ok := f.cellToArena(x, y)
	if !ok {
		return
	}
	if f.session.Status() != game.StatusRunning {
		f.session.Start()
		return
	}
	f.session.HitAt(ax, ay)
}

// Draw 绘制一帧
func (f *Frontend) Draw() {
	snap := f.session.Snapshot()
	f.screen.Clear()

	f.drawText(0, 0, snap.HUD.StatusLine(), hudStyle)
	f.drawText(0, 1, snap.HUD.PowerLine()+"  [q] quit [p] pause [x] reset", dimStyle)
	f.drawBorder()

	for _, p := range snap.Particles {
		x, y := arenaToCell(p.X, p.Y)
		f.setCell(x, y, '·', tcell.StyleDefault.Foreground(particleColor(p)))
	}
	for _, t := range snap.Targets {
		f.drawTarget(t)
	}

	if banner := snap.HUD.Banner(); banner != "" {
		y := hudRows + 1 + (f.height-hudRows-2)/2
		x := (f.width - len(banner)) / 2
		f.drawText(x, y, banner, bannerStyle)
	}

	f.screen.Show()
}

func (f *Frontend) drawTarget(t game.TargetView) {
	x, y := arenaToCell(t.X+t.Size/2, t.Y+t.Size/2)
	style := tcell.StyleDefault.Foreground(targetColor(t))

	r := '●'
	switch {
	case t.Kind == components.TargetPower:
		r = '◉'
	case t.HasSparkle:
		r = '✦'
	}
	f.setCell(x, y, r, style)

	if t.HasRing {
		f.setCell(x-1, y, '(', style)
		f.setCell(x+1, y, ')', style)
	}
}

func (f *Frontend) drawBorder() {
	top, bottom := hudRows, f.height-1
	right := f.width - 1
	if bottom <= top || right <= 0 {
		return
	}
	for x := 1; x < right; x++ {
		f.setCell(x, top, '─', borderStyle)
		f.setCell(x, bottom, '─', borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		f.setCell(0, y, '│', borderStyle)
		f.setCell(right, y, '│', borderStyle)
	}
	f.setCell(0, top, '┌', borderStyle)
	f.setCell(right, top, '┐', borderStyle)
	f.setCell(0, bottom, '└', borderStyle)
	f.setCell(right, bottom, '┘', borderStyle)
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		f.setCell(x, y, r, style)
		x++
	}
}

func (f *Frontend) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.screen.SetContent(x, y, r, nil, style)
}

// Run 运行主循环，直到用户退出
// 事件在单独的 goroutine 中读取，会话只在本 goroutine 中更新
func (f *Frontend) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// screen 已 Fini
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !f.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			f.session.Update()
			f.Draw()
		}
	}
}

func targetColor(t game.TargetView) tcell.Color {
	c := utils.OrbColor(t.Hue, t.Kind == components.TargetPower, 1)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// particleColor 粒子随 alpha 变暗（终端没有透明度）
func particleColor(p game.ParticleView) tcell.Color {
	c := utils.GlowColor(p.Hue, p.Alpha)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

package scenes

import (
	"testing"

	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
)

func TestTargetCircle(t *testing.T) {
	cx, cy, r := targetCircle(game.TargetView{X: 100, Y: 50, Size: 40})

	if r != 20 {
		t.Errorf("r = %v, want 20", r)
	}
	if want := float32(config.ArenaOffsetX + 120); cx != want {
		t.Errorf("cx = %v, want %v", cx, want)
	}
	if want := float32(config.ArenaOffsetY + 70); cy != want {
		t.Errorf("cy = %v, want %v", cy, want)
	}
}

func TestParticleCircle(t *testing.T) {
	cx, cy, r := particleCircle(game.ParticleView{X: 10, Y: 20, Size: 6})
	if cx != float32(config.ArenaOffsetX+10) || cy != float32(config.ArenaOffsetY+20) || r != 3 {
		t.Errorf("particleCircle = (%v, %v, %v)", cx, cy, r)
	}
}

func TestTargetAlpha(t *testing.T) {
	tests := []struct {
		name     string
		age      float64
		lifespan float64
		want     float32
	}{
		{"fresh", 0, 6, 1},
		{"one second left", 5, 6, 1},
		{"half second left", 5.5, 6, 0.9},
		{"overdue", 7, 6, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targetAlpha(game.TargetView{Age: tt.age, Lifespan: tt.lifespan})
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("targetAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsideArena(t *testing.T) {
	if !insideArena(0, 0, 720, 340) || !insideArena(720, 340, 720, 340) {
		t.Error("arena corners should be inside")
	}
	if insideArena(-1, 10, 720, 340) || insideArena(10, 341, 720, 340) {
		t.Error("points outside the arena reported inside")
	}
}

func TestArenaSceneSetsArenaSize(t *testing.T) {
	session := game.NewSession(game.SessionOptions{})
	defer session.Close()

	scene := NewArenaScene(session, nil)
	snap := session.Snapshot()

	wantW, wantH := config.ArenaSizeForScreen(config.GameWindowWidth, config.GameWindowHeight)
	if snap.ArenaWidth != wantW || snap.ArenaHeight != wantH {
		t.Errorf("arena = %vx%v, want %vx%v", snap.ArenaWidth, snap.ArenaHeight, wantW, wantH)
	}
	if scene.snapshot.HUD.Status != game.StatusIdle {
		t.Errorf("initial status = %v, want IDLE", scene.snapshot.HUD.Status)
	}
}

func TestArenaScenePointerStartsIdleSession(t *testing.T) {
	session := game.NewSession(game.SessionOptions{})
	defer session.Close()
	scene := NewArenaScene(session, nil)

	// 场地外点击不开局
	scene.handlePointer(0, 0)
	if session.Status() != game.StatusIdle {
		t.Fatalf("click outside arena started the session")
	}

	scene.handlePointer(int(config.ArenaOffsetX)+10, int(config.ArenaOffsetY)+10)
	if session.Status() != game.StatusRunning {
		t.Fatalf("status = %v, want RUNNING", session.Status())
	}
}

package tty

import (
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/game"
	"github.com/decker502/orbsurge/pkg/sfx"
)

// Sound 终端前端的音效输出，直接把合成音效交给 beep speaker
// speaker 初始化失败时静默运行
type Sound struct {
	ready  bool
	volume float64
}

// NewSound 按配置初始化 speaker
func NewSound(cfg config.AudioConfig) *Sound {
	s := &Sound{volume: cfg.SoundVolume}
	if !cfg.SoundEnabled || cfg.SoundVolume <= 0 {
		return s
	}

	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/20)); err != nil {
		// 没有声卡也能玩
		log.Printf("[TTY] Audio initialization failed: %v", err)
		return s
	}
	s.ready = true
	return s
}

// Enabled 返回 speaker 是否可用
func (s *Sound) Enabled() bool {
	return s.ready
}

// HandleEvent 播放事件对应的音效
func (s *Sound) HandleEvent(e game.Event) {
	if !s.ready {
		return
	}
	cue, ok := game.CueForEvent(e)
	if !ok {
		return
	}
	streamer, err := sfx.Streamer(cue)
	if err != nil {
		log.Printf("[TTY] Warning: %v", err)
		return
	}
	speaker.Play(sfx.WithVolume(streamer, s.volume))
}

// Close 关闭 speaker
func (s *Sound) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

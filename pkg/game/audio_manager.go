package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/orbsurge/pkg/components"
	"github.com/decker502/orbsurge/pkg/config"
	"github.com/decker502/orbsurge/pkg/sfx"
)

// AudioManager 音效管理器
// 职责：
//   - 把会话事件映射为音效
//   - 启动时预先合成所有音效的 PCM 数据
//   - 统一控制音效开关与音量
//
// context 为 nil 时进入静音模式（无音频设备、测试环境）
type AudioManager struct {
	context *audio.Context
	players map[sfx.Cue]*audio.Player // 音效播放器缓存
	enabled bool
	volume  float64
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率必须与 sfx.SampleRate 一致；可为 nil
//   - cfg: 音效配置
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	am := &AudioManager{
		context: ctx,
		players: make(map[sfx.Cue]*audio.Player),
		enabled: cfg.SoundEnabled,
		volume:  clampVolume(cfg.SoundVolume),
	}

	if ctx == nil {
		log.Printf("[AudioManager] No audio context, sound disabled")
		return am
	}

	for _, cue := range sfx.AllCues {
		pcm, err := sfx.Render(cue)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to render cue %s: %v", cue, err)
			continue
		}
		am.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("[AudioManager] Preloaded %d cues", len(am.players))

	return am
}

// PlayCue 播放音效，返回是否成功播放
func (am *AudioManager) PlayCue(cue sfx.Cue) bool {
	if !am.enabled || am.context == nil {
		return false
	}

	player, ok := am.players[cue]
	if !ok {
		return false
	}

	player.SetVolume(am.volume)
	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// HandleEvent 播放会话事件对应的音效
// 可以直接作为 SessionOptions.OnEvent 使用
func (am *AudioManager) HandleEvent(e Event) {
	if cue, ok := CueForEvent(e); ok {
		am.PlayCue(cue)
	}
}

// CueForEvent 返回事件对应的音效
func CueForEvent(e Event) (sfx.Cue, bool) {
	switch e.Type {
	case EventStarted:
		return sfx.CueStart, true
	case EventTargetHit:
		if e.Kind == components.TargetPower {
			return sfx.CuePower, true
		}
		return sfx.CueHit, true
	case EventPowerUpActivated:
		return sfx.CueDilation, true
	case EventTargetExpired:
		return sfx.CueMiss, true
	case EventEnded:
		return sfx.CueEnd, true
	default:
		return 0, false
	}
}

// SetEnabled 设置音效开关
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// Enabled 返回音效是否开启
func (am *AudioManager) Enabled() bool {
	return am.enabled
}

// SetVolume 设置音效音量（限制在 0.0 ~ 1.0）
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = clampVolume(volume)
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

package systems

import (
	"fmt"

	"github.com/decker502/orbsurge/pkg/config"
)

// ScoringSystem 连击与分数规则
//
//	光球命中:   score += OrbBase + ComboBonus*comboBefore; combo += 1
//	能量核心:   score += PowerScore; combo += PowerCombo
//	目标过期:   combo = max(0, combo - MissPenalty)
//
// 分数只增不减，连击永远不为负。
type ScoringSystem struct {
	config config.ScoringConfig
	hud    *HUDMessageSystem
	score  int
	combo  int
}

// NewScoringSystem 创建计分系统，hud 可以为 nil
func NewScoringSystem(cfg config.ScoringConfig, hud *HUDMessageSystem) *ScoringSystem {
	return &ScoringSystem{
		config: cfg,
		hud:    hud,
	}
}

// OnOrbHit 命中普通光球，返回获得的分数
func (s *ScoringSystem) OnOrbHit() int {
	comboBefore := s.combo
	points := s.config.OrbBase + s.config.ComboBonus*comboBefore

	s.combo++
	s.score += points

	if s.hud != nil && s.combo >= s.config.ComboMessageThreshold {
		s.hud.Show(fmt.Sprintf("COMBO x%d", s.combo))
	}
	return points
}

// OnPowerHit 命中能量核心，返回获得的分数
func (s *ScoringSystem) OnPowerHit() int {
	points := s.config.PowerScore

	s.combo += s.config.PowerCombo
	s.score += points

	if s.hud != nil {
		s.hud.Show(fmt.Sprintf("POWER UP +%d", points))
	}
	return points
}

// OnExpired 目标未被击中就消失
func (s *ScoringSystem) OnExpired() {
	s.combo -= s.config.MissPenalty
	if s.combo < 0 {
		s.combo = 0
	}
}

// Score 返回当前分数
func (s *ScoringSystem) Score() int {
	return s.score
}

// Combo 返回当前连击数
func (s *ScoringSystem) Combo() int {
	return s.combo
}

// ResetCombo 连击清零（会话结束时调用）
func (s *ScoringSystem) ResetCombo() {
	s.combo = 0
}

// Reset 分数与连击清零
func (s *ScoringSystem) Reset() {
	s.score = 0
	s.combo = 0
}

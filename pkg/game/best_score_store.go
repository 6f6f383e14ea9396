package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BestScoreStore 最高分存储槽
// 会话创建时读取一次，会话结束且分数提高时写入一次
type BestScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// ErrStoreClosed 异步存储关闭后继续写入时返回
var ErrStoreClosed = errors.New("best score store is closed")

// bestScoreRecord 持久化的最高分记录
type bestScoreRecord struct {
	Best      int       `yaml:"best"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// 存储路径常量
const (
	bestScoreObject   = "orb_surge"
	bestScoreProperty = "best"
)

// GdataScoreStore 基于 gdata 的最高分存储
// 桌面端写入用户数据目录，移动端与 Web 端使用平台自己的存储
type GdataScoreStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，不持久化）
}

// AppName 本地存储使用的应用名
const AppName = "orbsurge"

// OpenBestScoreStore 打开 gdata 本地存储，写入在后台 goroutine 完成
// 存储不可用时进入降级模式（最高分只保存在内存中）
func OpenBestScoreStore(appName string) *AsyncScoreStore {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[BestScore] Warning: gdata unavailable: %v (best score will not persist)", err)
		manager = nil
	}
	return NewAsyncScoreStore(NewGdataScoreStore(manager))
}

// NewGdataScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGdataScoreStore(gdataManager *gdata.Manager) *GdataScoreStore {
	return &GdataScoreStore{gdataManager: gdataManager}
}

// LoadBest 读取最高分
//
// 降级模式或记录不存在时返回 0
//
// 返回：
//   - int: 最高分
//   - error: 读取或反序列化失败
func (s *GdataScoreStore) LoadBest() (int, error) {
	if s.gdataManager == nil {
		return 0, nil
	}

	if !s.gdataManager.ObjectPropExists(bestScoreObject, bestScoreProperty) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(bestScoreObject, bestScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load best score: %w", err)
	}

	var record bestScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal best score: %w", err)
	}
	if record.Best < 0 {
		return 0, fmt.Errorf("invalid best score in storage: %d", record.Best)
	}

	log.Printf("[BestScore] Loaded best score %d", record.Best)
	return record.Best, nil
}

// SaveBest 写入最高分
// 降级模式下直接返回 nil
func (s *GdataScoreStore) SaveBest(score int) error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&bestScoreRecord{
		Best:      score,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal best score: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(bestScoreObject, bestScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}

	log.Printf("[BestScore] Saved best score %d", score)
	return nil
}

// MemoryScoreStore 内存最高分存储（测试与无存储环境使用）
type MemoryScoreStore struct {
	mu      sync.Mutex
	best    int
	saves   int
	loadErr error
	saveErr error
}

// NewMemoryScoreStore 创建内存存储，initial 为初始最高分
func NewMemoryScoreStore(initial int) *MemoryScoreStore {
	return &MemoryScoreStore{best: initial}
}

// FailWith 让后续读写返回指定错误（模拟存储不可用）
func (m *MemoryScoreStore) FailWith(loadErr, saveErr error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = loadErr
	m.saveErr = saveErr
}

func (m *MemoryScoreStore) LoadBest() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *MemoryScoreStore) SaveBest(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	m.saves++
	return nil
}

// Best 返回已保存的最高分
func (m *MemoryScoreStore) Best() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// Saves 返回成功写入的次数
func (m *MemoryScoreStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// AsyncScoreStore 把写入转交给后台 goroutine
//
// SaveBest 永不阻塞调用方：待写入的值只保留最新一个，
// 写入失败只记录日志。Close 等待最后一次写入完成。
type AsyncScoreStore struct {
	store   BestScoreStore
	pending chan int
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewAsyncScoreStore 包装一个同步存储并启动后台写入
func NewAsyncScoreStore(store BestScoreStore) *AsyncScoreStore {
	s := &AsyncScoreStore{
		store:   store,
		pending: make(chan int, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncScoreStore) run() {
	defer close(s.done)
	for score := range s.pending {
		if err := s.store.SaveBest(score); err != nil {
			log.Printf("[BestScore] Warning: async save of %d failed: %v", score, err)
		}
	}
}

// LoadBest 同步读取（只在会话创建时调用一次）
func (s *AsyncScoreStore) LoadBest() (int, error) {
	return s.store.LoadBest()
}

// SaveBest 排队写入，立即返回
func (s *AsyncScoreStore) SaveBest(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	select {
	case s.pending <- score:
	default:
		// 丢弃尚未写入的旧值
		select {
		case <-s.pending:
		default:
		}
		s.pending <- score
	}
	return nil
}

// Close 停止后台写入并等待队列清空，可重复调用
func (s *AsyncScoreStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.pending)
	s.mu.Unlock()

	<-s.done
	return nil
}

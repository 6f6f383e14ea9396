package clock

import (
	"container/heap"
	"time"
)

// TimerID 标识一个已调度的事件，0 为无效值
type TimerID uint64

// timerEntry 调度队列中的单个事件
type timerEntry struct {
	id       TimerID
	due      time.Duration // 触发时刻（逻辑时间）
	seq      uint64        // 同一时刻按调度顺序触发
	interval time.Duration // >0 表示重复事件
	fn       func()
	canceled bool
	index    int
}

// timerQueue 按 (due, seq) 排序的最小堆
type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	entry := x.(*timerEntry)
	entry.index = len(*q)
	*q = append(*q, entry)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*q = old[:n-1]
	return entry
}

// Scheduler 游戏唯一的逻辑时钟
//
// 逻辑时间只在 Advance/AdvanceTo 时前进。到期事件按时间顺序依次触发，
// 触发前 Now() 会被设置为该事件的到期时刻，因此回调中再调度的事件
// 以事件时刻为基准，而不是以整帧结束时刻为基准。
//
// Scheduler 不是并发安全的，所有调用必须来自同一个 goroutine。
type Scheduler struct {
	now     time.Duration
	queue   timerQueue
	timers  map[TimerID]*timerEntry
	nextID  uint64
	nextSeq uint64
}

// NewScheduler 创建逻辑时间为 0 的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue:  make(timerQueue, 0),
		timers: make(map[TimerID]*timerEntry),
		nextID: 1,
	}
}

// Now 返回当前逻辑时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在 d 之后触发一次 fn
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.schedule(d, 0, fn)
}

// Every 每隔 interval 触发一次 fn，首次触发在 interval 之后
// interval 必须为正，否则退化为 After
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		return s.schedule(interval, 0, fn)
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	id := TimerID(s.nextID)
	s.nextID++

	entry := &timerEntry{
		id:       id,
		due:      s.now + d,
		seq:      s.nextSeq,
		interval: interval,
		fn:       fn,
	}
	s.nextSeq++

	s.timers[id] = entry
	heap.Push(&s.queue, entry)
	return id
}

// Cancel 取消事件，返回事件是否仍处于待触发状态
func (s *Scheduler) Cancel(id TimerID) bool {
	entry, ok := s.timers[id]
	if !ok {
		return false
	}
	entry.canceled = true
	delete(s.timers, id)
	if entry.index >= 0 {
		heap.Remove(&s.queue, entry.index)
	}
	return true
}

// CancelAll 取消所有待触发事件（逻辑时间保持不变）
func (s *Scheduler) CancelAll() {
	for _, entry := range s.queue {
		entry.canceled = true
		entry.index = -1
	}
	s.queue = s.queue[:0]
	s.timers = make(map[TimerID]*timerEntry)
}

// IsPending 检查事件是否尚未触发且未被取消
func (s *Scheduler) IsPending(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Pending 返回待触发事件数量
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance 将逻辑时间推进 d（负值忽略）
func (s *Scheduler) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	s.AdvanceTo(s.now + d)
}

// AdvanceTo 将逻辑时间推进到 t，并按顺序触发所有 due <= t 的事件
// t 早于当前时间时不做任何事
func (s *Scheduler) AdvanceTo(t time.Duration) {
	if t < s.now {
		return
	}

	for len(s.queue) > 0 && s.queue[0].due <= t {
		entry := heap.Pop(&s.queue).(*timerEntry)
		if entry.canceled {
			continue
		}

		s.now = entry.due

		if entry.interval > 0 {
			// 重复事件先重新入队再执行，回调内可以 Cancel 自己
			entry.due += entry.interval
			entry.seq = s.nextSeq
			s.nextSeq++
			heap.Push(&s.queue, entry)
		} else {
			delete(s.timers, entry.id)
		}

		entry.fn()
	}

	s.now = t
}

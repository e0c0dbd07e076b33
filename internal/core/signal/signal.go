// Package signal 实现命名信号
package signal

import (
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"
	"github.com/dep2p/go-signalhub/pkg/lib/log"
)

var logger = log.Logger("core/signal")

// ============================================================================
// 订阅者记录
// ============================================================================

// subscriber 单个订阅者的内部记录
type subscriber struct {
	id       string         // 注册 ID（仅用于日志诊断）
	callback pkgif.Callback // 订阅者回调
	fnptr    uintptr        // 回调代码指针（Disconnect 的匹配标识）
	priority int            // 调用优先级，越大越先调用
	once     bool           // 首次发射后移除
}

// callbackID 返回回调的代码指针
//
// Go 的函数值不可比较，Disconnect 按代码指针匹配。
// 由同一个函数字面量创建的多个闭包共享代码指针，
// 精确移除单次注册需使用 Connect 返回的 Unsubscribe。
func callbackID(cb pkgif.Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

// ============================================================================
// Signal 实现
// ============================================================================

// Signal 单个命名信号
//
// 持有一条按优先级降序排列的订阅者列表（同优先级保持注册顺序）。
// 互斥锁按信号粒度持有，只覆盖列表的变更与快照，
// 发射过程在锁外基于快照进行，不同信号之间互不串行。
type Signal struct {
	name string

	mu   sync.Mutex
	subs []*subscriber
}

// New 创建新的命名信号
func New(name string) *Signal {
	return &Signal{name: name}
}

// Name 返回信号名称
func (s *Signal) Name() string {
	return s.name
}

// ============================================================================
// 订阅管理
// ============================================================================

// Connect 订阅本信号
//
// 新记录追加后整体稳定重排：优先级降序，同优先级保持注册顺序，
// 因此同优先级的新订阅者总是排在已有订阅者之后。
//
// 返回的 Unsubscribe 精确移除本次注册，可安全地重复调用。
func (s *Signal) Connect(cb pkgif.Callback, opts ...pkgif.ConnectOpt) pkgif.Unsubscribe {
	settings := &connectSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	sub := &subscriber{
		id:       uuid.NewString(),
		callback: cb,
		fnptr:    callbackID(cb),
		priority: settings.Priority,
		once:     settings.Once,
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	sort.SliceStable(s.subs, func(i, j int) bool {
		return s.subs[i].priority > s.subs[j].priority
	})
	total := len(s.subs)
	s.mu.Unlock()

	logger.Debug("订阅已注册",
		"signal", s.name,
		"sub", log.TruncateID(sub.id, 8),
		"priority", sub.priority,
		"once", sub.once,
		"total", total)

	return func() {
		s.removeRecord(sub)
	}
}

// Disconnect 按回调标识移除所有匹配的订阅
//
// 没有匹配记录时为空操作，不是错误。
func (s *Signal) Disconnect(cb pkgif.Callback) {
	s.disconnectByID(callbackID(cb))
}

// Clear 移除全部订阅者，信号本身继续存在
func (s *Signal) Clear() {
	s.mu.Lock()
	removed := len(s.subs)
	s.subs = nil
	s.mu.Unlock()

	if removed > 0 {
		logger.Debug("信号已清空", "signal", s.name, "removed", removed)
	}
}

// removeRecord 移除指定的订阅记录（按记录指针精确匹配）
func (s *Signal) removeRecord(target *subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub == target {
			// 保持剩余记录的相对顺序
			copy(s.subs[i:], s.subs[i+1:])
			s.subs[len(s.subs)-1] = nil
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// disconnectByID 按回调代码指针移除所有匹配记录
func (s *Signal) disconnectByID(fnptr uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.fnptr != fnptr {
			kept = append(kept, sub)
		}
	}
	// 清理尾部引用，帮助 GC
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
}

// ============================================================================
// 发射
// ============================================================================

// Emit 同步发射信号
//
// 在锁内取当前订阅者列表的浅拷贝快照，在锁外按序调用。
// 回调在本次发射期间做出的订阅/退订只影响之后的发射：
// 快照中的订阅者即使在发射途中被移除，本轮仍会被调用。
//
// 单个回调 panic 会被恢复并记录（信号名 + panic 值），
// 不影响快照中剩余订阅者，也不会传播给发射方。
//
// 整个快照调用完成后，标记 once 的订阅记录被精确移除，
// 无论该次调用是否 panic。
func (s *Signal) Emit(args ...any) {
	s.mu.Lock()
	if len(s.subs) == 0 {
		// 无订阅者的快速路径：不分配、不迭代
		s.mu.Unlock()
		return
	}
	snapshot := make([]*subscriber, len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		s.invoke(sub, args)
	}

	for _, sub := range snapshot {
		if sub.once {
			s.removeRecord(sub)
		}
	}
}

// invoke 调用单个订阅者，panic 恢复边界
func (s *Signal) invoke(sub *subscriber, args []any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("订阅者回调 panic",
				"signal", s.name,
				"sub", log.TruncateID(sub.id, 8),
				"panic", r)
		}
	}()

	sub.callback(args...)
}

// ============================================================================
// 诊断
// ============================================================================

// Subscribers 返回当前订阅者回调的快照（按优先级顺序）
func (s *Signal) Subscribers() []pkgif.Callback {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]pkgif.Callback, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub.callback)
	}
	return out
}

// Len 返回当前订阅者数量
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

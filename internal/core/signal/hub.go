// Package signal 实现命名信号
package signal

import (
	"sort"
	"sync"

	pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"
)

// ============================================================================
// Hub 实现
// ============================================================================

// Hub 信号注册表
//
// 按名称索引 Signal，同名信号至多一个。
// 信号在首次引用（Signal/Subscribe）时惰性创建；
// Emit 对未知名称是空操作，不会创建信号。
//
// 读写锁只保护名称索引本身，订阅者列表的并发控制
// 由各 Signal 自己的互斥锁承担，不同信号互不串行。
type Hub struct {
	mu      sync.RWMutex
	signals map[string]*Signal
}

// NewHub 创建新的信号注册表
func NewHub() *Hub {
	return &Hub{
		signals: make(map[string]*Signal),
	}
}

// ============================================================================
// 信号访问
// ============================================================================

// Signal 按名称获取信号，不存在则创建
func (h *Hub) Signal(name string) pkgif.Signal {
	return h.getOrCreate(name)
}

// HasSignal 检查信号是否存在（不创建）
func (h *Hub) HasSignal(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.signals[name]
	return ok
}

// AllSignals 返回所有 (名称, Signal) 对的快照
//
// 结果按名称排序，保证枚举顺序稳定。
func (h *Hub) AllSignals() []pkgif.NamedSignal {
	h.mu.RLock()
	out := make([]pkgif.NamedSignal, 0, len(h.signals))
	for name, sig := range h.signals {
		out = append(out, pkgif.NamedSignal{Name: name, Signal: sig})
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// getOrCreate 获取或创建命名信号
func (h *Hub) getOrCreate(name string) *Signal {
	h.mu.RLock()
	sig, ok := h.signals[name]
	h.mu.RUnlock()
	if ok {
		return sig
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// 双重检查：锁升级窗口内可能已被并发创建
	if sig, ok := h.signals[name]; ok {
		return sig
	}

	sig = New(name)
	h.signals[name] = sig
	logger.Debug("信号已创建", "signal", name, "total", len(h.signals))
	return sig
}

// lookup 查找已存在的信号（不创建）
func (h *Hub) lookup(name string) (*Signal, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sig, ok := h.signals[name]
	return sig, ok
}

// ============================================================================
// 便捷 API
// ============================================================================

// Subscribe 订阅命名信号（不存在则创建）
func (h *Hub) Subscribe(name string, cb pkgif.Callback, opts ...pkgif.ConnectOpt) pkgif.Unsubscribe {
	return h.getOrCreate(name).Connect(cb, opts...)
}

// Unsubscribe 按回调标识取消命名信号的订阅
//
// 信号不存在时为空操作。
func (h *Hub) Unsubscribe(name string, cb pkgif.Callback) {
	if sig, ok := h.lookup(name); ok {
		sig.Disconnect(cb)
	}
}

// Emit 发射命名信号
//
// 信号不存在时为空操作，与 Subscribe 不同，不会创建信号。
func (h *Hub) Emit(name string, args ...any) {
	if sig, ok := h.lookup(name); ok {
		sig.Emit(args...)
	}
}

// ============================================================================
// 生命周期管理
// ============================================================================

// ClearSignal 清空命名信号的订阅者
//
// 信号本身（及其身份）保留，之后可继续订阅；不存在时为空操作。
func (h *Hub) ClearSignal(name string) {
	if sig, ok := h.lookup(name); ok {
		sig.Clear()
	}
}

// RemoveSignal 整体移除命名信号
//
// 不存在时为空操作。
func (h *Hub) RemoveSignal(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.signals[name]; ok {
		delete(h.signals, name)
		logger.Debug("信号已移除", "signal", name, "total", len(h.signals))
	}
}

// ClearAll 移除所有信号及其订阅者，恢复初始空状态
func (h *Hub) ClearAll() {
	h.mu.Lock()
	removed := len(h.signals)
	h.signals = make(map[string]*Signal)
	h.mu.Unlock()

	if removed > 0 {
		logger.Debug("注册表已清空", "removed", removed)
	}
}

// ============================================================================
// 诊断
// ============================================================================

// Stats 返回诊断快照
func (h *Hub) Stats() pkgif.HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := pkgif.HubStats{
		SignalCount: len(h.signals),
		Signals:     make(map[string]int, len(h.signals)),
	}
	for name, sig := range h.signals {
		stats.Signals[name] = sig.Len()
	}
	return stats
}

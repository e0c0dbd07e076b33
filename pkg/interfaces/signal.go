// Package interfaces 定义 go-signalhub 公共接口
//
// 本文件定义 Signal 与 SignalHub 接口，提供命名信号的发布订阅功能。
package interfaces

// Callback 订阅者回调函数类型
//
// 参数为发射时传入的参数包（argument bag），参数个数与含义由
// 各信号的发射方约定，库本身不做任何校验。
type Callback func(args ...any)

// Unsubscribe 取消订阅函数类型
//
// 由 Connect/Subscribe 返回，调用后精确移除对应的那一次注册。
// 可以安全地多次调用，重复调用为空操作。
type Unsubscribe func()

// Signal 定义单个命名信号接口
//
// 一个 Signal 持有一条有序的订阅者列表：
//   - 按优先级降序调用（优先级高的先调用）
//   - 同优先级按注册顺序调用（稳定排序）
//   - once 订阅者在首次发射后自动移除
type Signal interface {
	// Name 返回信号名称
	Name() string

	// Connect 订阅本信号，返回取消订阅函数
	Connect(cb Callback, opts ...ConnectOpt) Unsubscribe

	// Disconnect 按回调标识移除所有匹配的订阅
	//
	// Go 的函数值不可比较，匹配基于函数代码指针：
	// 由同一个函数字面量创建的多个闭包共享同一标识。
	// 需要精确移除单次注册时，使用 Connect 返回的 Unsubscribe。
	Disconnect(cb Callback)

	// Clear 移除本信号的全部订阅者，信号本身继续存在
	Clear()

	// Emit 同步发射信号，按序调用当前订阅者快照
	Emit(args ...any)

	// Subscribers 返回当前订阅者回调的只读快照（按优先级顺序）
	Subscribers() []Callback

	// Len 返回当前订阅者数量
	Len() int
}

// SignalHub 定义信号注册表接口
//
// SignalHub 按名称索引 Signal，首次引用时惰性创建
// （Emit 除外：对未知名称的发射是空操作，不会创建信号）。
type SignalHub interface {
	// Signal 按名称获取信号，不存在则创建
	Signal(name string) Signal

	// HasSignal 检查信号是否存在（不创建）
	HasSignal(name string) bool

	// AllSignals 返回所有 (名称, Signal) 对的快照
	AllSignals() []NamedSignal

	// Subscribe 订阅命名信号（不存在则创建），返回取消订阅函数
	Subscribe(name string, cb Callback, opts ...ConnectOpt) Unsubscribe

	// Unsubscribe 按回调标识取消命名信号的订阅，信号不存在时为空操作
	Unsubscribe(name string, cb Callback)

	// Emit 发射命名信号，信号不存在时为空操作（不创建）
	Emit(name string, args ...any)

	// ClearSignal 清空命名信号的订阅者，信号本身保留；不存在时为空操作
	ClearSignal(name string)

	// RemoveSignal 整体移除命名信号；不存在时为空操作
	RemoveSignal(name string)

	// ClearAll 移除所有信号及其订阅者，恢复初始空状态
	ClearAll()

	// Stats 返回诊断快照
	Stats() HubStats
}

// NamedSignal 名称与信号的配对（用于 AllSignals 枚举）
type NamedSignal struct {
	Name   string
	Signal Signal
}

// HubStats 诊断快照
type HubStats struct {
	// SignalCount 当前信号数量
	SignalCount int

	// Signals 各信号的订阅者数量（name → count）
	Signals map[string]int
}

// ConnectOpt 订阅选项函数类型
type ConnectOpt func(*ConnectSettings)

// ConnectSettings 订阅设置（导出以供实现使用）
type ConnectSettings struct {
	// Priority 调用优先级，默认 0，越大越先调用
	Priority int

	// Once 首次发射后自动移除
	Once bool
}

// WithPriority 设置订阅优先级
//
// 优先级高的订阅者先被调用；同优先级按注册顺序调用。
func WithPriority(priority int) ConnectOpt {
	return func(s *ConnectSettings) {
		s.Priority = priority
	}
}

// Once 设置订阅为一次性模式
//
// 一次性订阅者在下一次发射中被调用恰好一次，
// 之后无论回调是否 panic 都会被移除。
func Once() ConnectOpt {
	return func(s *ConnectSettings) {
		s.Once = true
	}
}

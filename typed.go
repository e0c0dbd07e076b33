package signalhub

// ════════════════════════════════════════════════════════════════════════════
//                              类型安全的信号
// ════════════════════════════════════════════════════════════════════════════

// Typed 将一个命名信号绑定到具体的载荷类型
//
// 包可以用非导出的 Typed 字段加导出方法来封装信号：
// 对外只暴露 Listen（或只暴露 Emit），实现监听/发射权限分离。
//
//	type Message struct{ ... }
//
//	var received = signalhub.NewTyped[*Message](hub, "message.received")
//
//	// 其他包监听
//	received.Listen(func(msg *Message) { ... })
//
//	// 本包发射
//	received.Emit(&Message{...})
//
// 载荷作为发射参数包的第一个元素传递；类型不匹配表现为
// 回调内 panic，由派发循环按订阅者隔离恢复。
type Typed[T any] struct {
	hub  SignalHub
	name string
}

// NewTyped 在指定注册表上创建类型化信号
//
// 信号本身仍是惰性创建的：首次 Listen 时才在注册表中建立，
// 在那之前 Emit 与裸 hub 一致，是空操作。
func NewTyped[T any](hub SignalHub, name string) *Typed[T] {
	return &Typed[T]{hub: hub, name: name}
}

// Name 返回底层信号名称
func (t *Typed[T]) Name() string {
	return t.name
}

// Listen 订阅本信号，handler 收到类型化的载荷
//
// 支持与裸回调相同的选项（WithPriority / Once）。
func (t *Typed[T]) Listen(handler func(T), opts ...ConnectOpt) Unsubscribe {
	return t.hub.Subscribe(t.name, func(args ...any) {
		var v T
		if len(args) > 0 {
			v = args[0].(T)
		}
		handler(v)
	}, opts...)
}

// Emit 发射本信号，载荷作为唯一参数
func (t *Typed[T]) Emit(v T) {
	t.hub.Emit(t.name, v)
}

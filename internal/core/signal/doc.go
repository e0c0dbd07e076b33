// Package signal 实现命名信号注册表
//
// 提供同步的命名信号发布/订阅机制，支持：
//   - 多订阅者，按优先级降序调用（同优先级保持注册顺序）
//   - 一次性订阅（once，首次发射后自动移除）
//   - 发射期间的安全订阅/退订（快照派发）
//   - 回调 panic 隔离（恢复并记录，不中断派发）
//   - 并发安全（注册表读写锁 + 信号粒度互斥锁）
//
// # 快速开始
//
//	// 创建注册表
//	hub := signal.NewHub()
//
//	// 订阅信号
//	unsub := hub.Subscribe("ui.button.clicked", func(args ...any) {
//	    // 处理事件
//	}, signal.WithPriority(10))
//	defer unsub()
//
//	// 发射信号
//	hub.Emit("ui.button.clicked", buttonID)
//
// # 派发语义
//
// Emit 是同步的阻塞调用链：在锁内取订阅者快照，在锁外按序调用。
// 回调在发射期间做出的订阅/退订只影响之后的发射，本轮快照不变。
// 单个回调 panic 被恢复并记录，剩余订阅者照常调用，
// 发射方永远不会收到订阅者的失败。
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    signal.Module(),
//	    fx.Invoke(func(hub pkgif.SignalHub) {
//	        hub.Subscribe("app.started", onStarted)
//	        // ...
//	    }),
//	)
//
// # 架构定位
//
// Tier: Core Layer Level 1（无依赖）
//
// 依赖关系：
//   - 依赖：pkg/interfaces
//   - 被依赖：根门面包 signalhub
//
// # 并发安全
//
// Hub 使用 sync.RWMutex 保护名称索引，各 Signal 持有自己的
// sync.Mutex 覆盖订阅者列表的变更与快照，不同信号互不串行。
// 本包不提供排队或异步派发：Emit 在调用方的 goroutine 上
// 运行到完成，没有取消或超时概念。
//
// # 相关文档
//
//   - 接口定义：pkg/interfaces/signal.go
package signal

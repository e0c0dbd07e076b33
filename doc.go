// Package signalhub 提供进程内命名信号的同步发布/订阅库
//
// go-signalhub 是一个小而完整的事件通知库：以名称索引的信号注册表
// （SignalHub），每个信号（Signal）持有一条按优先级排序的订阅者列表，
// 发射时在调用方的 goroutine 上同步、按序调用全部订阅者。
//
// # 核心概念
//
// 围绕三个核心概念构建：
//
//   - Signal: 单个命名事件通道，持有自己的订阅者列表
//   - SignalHub: 惰性创建的 name → Signal 注册表，应用代码的主入口
//   - Subscriber: 一次 (回调, 优先级, once) 注册
//
// # 快速开始
//
//	import signalhub "github.com/dep2p/go-signalhub"
//
//	// 1. 创建注册表
//	hub := signalhub.New()
//
//	// 2. 订阅信号
//	unsub := hub.Subscribe("game.fish.spawned", func(args ...any) {
//	    species := args[0].(string)
//	    fmt.Println("spawned:", species)
//	}, signalhub.WithPriority(10))
//	defer unsub()
//
//	// 3. 发射信号
//	hub.Emit("game.fish.spawned", "goldfish")
//
// # 派发语义
//
//   - 优先级高的订阅者先调用，同优先级按注册顺序调用
//   - once 订阅者在首次发射后自动移除（即使回调 panic）
//   - 发射基于快照：回调中的订阅/退订只影响之后的发射
//   - 回调 panic 被恢复并记录，不中断派发，也不传播给发射方
//   - 对未知名称的 Emit 是空操作，不会创建信号
//
// # 类型安全的信号
//
// 需要封装载荷类型时使用 Typed：
//
//	spawned := signalhub.NewTyped[string](hub, "game.fish.spawned")
//	spawned.Listen(func(species string) { ... })
//	spawned.Emit("goldfish")
//
// # Fx 集成
//
// 嵌入 go.uber.org/fx 应用时使用 Module()：
//
//	app := fx.New(
//	    signalhub.Module(),
//	    fx.Invoke(func(hub signalhub.SignalHub) { ... }),
//	)
//
// # 文件组织
//
//   - signalhub.go - 构造函数、版本信息与类型别名
//   - options.go   - 注册表配置选项
//   - typed.go     - 类型安全的信号封装
//   - fx.go        - Fx 模块集成
package signalhub

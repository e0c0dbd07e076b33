package signalhub

import (
	"github.com/dep2p/go-signalhub/internal/core/signal"
	pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-signalhub " + Version
	if GitCommit != "" {
		n := len(GitCommit)
		if n > 8 {
			n = 8
		}
		info += " (" + GitCommit[:n] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// 公共接口类型的别名，调用方通常只需导入本包。
type (
	// Callback 订阅者回调函数类型
	Callback = pkgif.Callback

	// Unsubscribe 取消订阅函数类型
	Unsubscribe = pkgif.Unsubscribe

	// ConnectOpt 订阅选项函数类型
	ConnectOpt = pkgif.ConnectOpt

	// Signal 单个命名信号接口
	Signal = pkgif.Signal

	// SignalHub 信号注册表接口
	SignalHub = pkgif.SignalHub

	// NamedSignal 名称与信号的配对
	NamedSignal = pkgif.NamedSignal

	// HubStats 诊断快照
	HubStats = pkgif.HubStats
)

// WithPriority 设置订阅优先级
//
// 这是一个便利函数，与 pkg/interfaces.WithPriority 等效
func WithPriority(priority int) ConnectOpt {
	return pkgif.WithPriority(priority)
}

// Once 设置订阅为一次性模式
//
// 这是一个便利函数，与 pkg/interfaces.Once 等效
func Once() ConnectOpt {
	return pkgif.Once()
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造入口
// ════════════════════════════════════════════════════════════════════════════

// New 创建新的信号注册表
//
// 注册表为空，信号在首次订阅或显式访问时惰性创建；
// 需要预声明信号名时使用 WithSignals 选项。
//
// 返回的实例是自包含的：没有包级全局注册表，
// 需要共享时由调用方显式传递（依赖注入）。
func New(opts ...Option) SignalHub {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	hub := signal.NewHub()
	for _, name := range o.declared {
		hub.Signal(name)
	}
	return hub
}

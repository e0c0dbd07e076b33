package signalhub

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-signalhub/internal/core/signal"
)

// ════════════════════════════════════════════════════════════════════════════
//                              Fx 集成
// ════════════════════════════════════════════════════════════════════════════

// Module 返回 go-signalhub 的 Fx 模块
//
// 向宿主应用提供一个 SignalHub 实例，并在应用停止时
// 清空全部订阅（回调引用不跨越应用生命周期）。
func Module() fx.Option {
	return signal.Module()
}

// NewFxApp 构建独立运行的 Fx 应用
//
// 预装 go-signalhub 模块并静默 fx 自身的事件日志，
// 适合示例程序与测试；常规嵌入场景直接使用 Module()。
func NewFxApp(opts ...fx.Option) *fx.App {
	base := []fx.Option{
		Module(),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	}
	return fx.New(append(base, opts...)...)
}

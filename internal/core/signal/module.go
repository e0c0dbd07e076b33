// Package signal 实现命名信号
package signal

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	SignalHub pkgif.SignalHub
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("signalhub",
		fx.Provide(ProvideSignalHub),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideSignalHub 提供 SignalHub 实例
func ProvideSignalHub() Result {
	return Result{
		SignalHub: NewHub(),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC        fx.Lifecycle
	SignalHub pkgif.SignalHub
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// SignalHub 启动（当前无需特殊启动逻辑）
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 停止时释放全部订阅，回调引用不跨越应用生命周期
			input.SignalHub.ClearAll()
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "signalhub"
	// Description 模块描述
	Description = "信号注册表模块，提供命名信号的同步发布/订阅机制"
)

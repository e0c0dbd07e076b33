package signal

import (
	"context"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var loadedHub pkgif.SignalHub

	app := fx.New(
		Module(),
		fx.NopLogger,
		fx.Invoke(func(hub pkgif.SignalHub) {
			loadedHub = hub
		}),
	)

	ctx := context.Background()

	// 启动应用
	if err := app.Start(ctx); err != nil {
		t.Fatalf("app.Start() failed: %v", err)
	}

	// 验证 SignalHub 注入成功
	if loadedHub == nil {
		t.Error("SignalHub not injected by Fx")
	}

	// 停止应用
	if err := app.Stop(ctx); err != nil {
		t.Errorf("app.Stop() failed: %v", err)
	}
}

// TestModule_Provides 测试模块提供的类型
func TestModule_Provides(t *testing.T) {
	result := ProvideSignalHub()

	if result.SignalHub == nil {
		t.Error("ProvideSignalHub() did not provide SignalHub")
	}
}

// TestModule_Lifecycle_ClearsOnStop 测试停止时清空注册表
func TestModule_Lifecycle_ClearsOnStop(t *testing.T) {
	var hub pkgif.SignalHub

	app := fxtest.New(t,
		Module(),
		fx.Invoke(func(h pkgif.SignalHub) {
			hub = h
		}),
	)

	app.RequireStart()

	hub.Subscribe("app.event", func(args ...any) {})
	if hub.Stats().SignalCount != 1 {
		t.Fatalf("SignalCount = %d, want 1", hub.Stats().SignalCount)
	}

	app.RequireStop()

	// OnStop 钩子清空全部信号
	if hub.Stats().SignalCount != 0 {
		t.Errorf("SignalCount after stop = %d, want 0", hub.Stats().SignalCount)
	}
}

package signalhub

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/fx"
)

// TestNew 测试创建注册表
func TestNew(t *testing.T) {
	hub := New()
	require.NotNil(t, hub)

	stats := hub.Stats()
	assert.Equal(t, 0, stats.SignalCount)
}

// TestNew_WithSignals 测试预声明信号
func TestNew_WithSignals(t *testing.T) {
	hub := New(WithSignals("app.started", "app.stopped"))

	assert.True(t, hub.HasSignal("app.started"))
	assert.True(t, hub.HasSignal("app.stopped"))

	stats := hub.Stats()
	assert.Equal(t, 2, stats.SignalCount)
	assert.Equal(t, 0, stats.Signals["app.started"])
}

// TestNew_Isolated 测试实例之间互相隔离
func TestNew_Isolated(t *testing.T) {
	hub1 := New()
	hub2 := New()

	called := false
	hub1.Subscribe("shared.name", func(args ...any) {
		called = true
	})
	hub2.Emit("shared.name")

	assert.False(t, called, "emit on hub2 must not reach hub1 subscribers")
}

// TestOptions_PriorityAndOnce 测试根包选项透传
func TestOptions_PriorityAndOnce(t *testing.T) {
	hub := New()

	var order []string
	hub.Subscribe("evt", func(args ...any) {
		order = append(order, "low")
	})
	hub.Subscribe("evt", func(args ...any) {
		order = append(order, "high-once")
	}, WithPriority(10), Once())

	hub.Emit("evt")
	hub.Emit("evt")

	assert.Equal(t, []string{"high-once", "low", "low"}, order)
}

// TestVersionInfo 测试版本信息格式
func TestVersionInfo(t *testing.T) {
	info := VersionInfo()
	assert.True(t, strings.HasPrefix(info, "go-signalhub "))
	assert.Contains(t, info, Version)
}

// TestNewFxApp 测试独立 Fx 应用
func TestNewFxApp(t *testing.T) {
	var hub SignalHub

	app := NewFxApp(
		fx.Invoke(func(h SignalHub) {
			hub = h
		}),
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	require.NotNil(t, hub)

	received := 0
	hub.Subscribe("fx.event", func(args ...any) {
		received++
	})
	hub.Emit("fx.event")
	assert.Equal(t, 1, received)

	require.NoError(t, app.Stop(ctx))
	assert.Equal(t, 0, hub.Stats().SignalCount)
}
